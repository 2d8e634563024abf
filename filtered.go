package sltools

import "fmt"

// Sampler is a source of scalar measurements, such as a depth or confidence
// reading or a sensor register.
type Sampler interface {
	Sample() (float64, error)
}

// Filtered smooths the values of a Sampler with a SmartMean.
type Filtered struct {
	sampler Sampler
	mean    *SmartMean
}

// NewFiltered returns a Filtered sampler that smooths s over a window of
// winSize values.
func NewFiltered(s Sampler, winSize int) (*Filtered, error) {
	m, err := NewSmartMean(winSize)
	if err != nil {
		return nil, err
	}

	return &Filtered{
		sampler: s,
		mean:    m,
	}, nil
}

// Read takes a new sample and returns it along with the updated mean. If the
// sample fails, the mean is left untouched.
func (f *Filtered) Read() (raw, mean float64, err error) {
	raw, err = f.sampler.Sample()
	if err != nil {
		return 0, f.mean.Mean(), fmt.Errorf("sltools: could not get sample: %w", err)
	}

	return raw, f.mean.AddValue(raw), nil
}

// Mean returns the underlying SmartMean.
func (f *Filtered) Mean() *SmartMean {
	return f.mean
}
