package sltools

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned when a SmartMean is created with a window
// size lower than 1 or too large to derive a decay factor below 1.
var ErrInvalidWindow = errors.New("window size must be between 1 and 2^53-1")

// SmartMean estimates the mean of the last values of a sequence using an
// exponentially weighted average with bias correction. Outliers are damped:
// once the bias correction fades out, no single value gets more than
// (1 - gamma) of the weight.
//
// See:
// https://www.myzhar.com/blog/tutorials/tutorial-exponential-weighted-average-good-moving-windows-average/
//
// A SmartMean is not safe for concurrent use.
type SmartMean struct {
	winSize  int
	valCount int

	gamma    float64
	gammaPow float64 // gamma^valCount
	meanCorr float64
	mean     float64
}

// NewSmartMean returns a new SmartMean that targets a window of winSize
// values. It returns an error wrapping ErrInvalidWindow if winSize < 1, or
// if winSize is so large that gamma rounds to 1 (above 2^53-1).
func NewSmartMean(winSize int) (*SmartMean, error) {
	if winSize < 1 {
		return nil, fmt.Errorf("sltools: could not create smart mean with window %d: %w", winSize, ErrInvalidWindow)
	}

	w := float64(winSize)
	gamma := w / (w + 1)
	if gamma >= 1 {
		return nil, fmt.Errorf("sltools: could not create smart mean with window %d: %w", winSize, ErrInvalidWindow)
	}

	return &SmartMean{
		winSize:  winSize,
		gamma:    gamma,
		gammaPow: 1,
	}, nil
}

// AddValue adds a value to the sequence and returns the updated mean.
// Non-finite values are not discarded: they propagate to the mean.
func (m *SmartMean) AddValue(val float64) float64 {
	m.valCount++
	m.gammaPow *= m.gamma

	m.meanCorr = m.gamma*m.meanCorr + (1-m.gamma)*val

	if m.valCount == 1 {
		// meanCorr/(1-gamma) is val, minus the rounding.
		m.mean = val
		return m.mean
	}
	m.mean = m.meanCorr / (1 - m.gammaPow)

	return m.mean
}

// Mean returns the current mean. It is 0 until the first value is added.
func (m *SmartMean) Mean() float64 {
	return m.mean
}

// ValCount returns the number of values added to the sequence.
func (m *SmartMean) ValCount() int {
	return m.valCount
}

// WindowSize returns the size of the window the weights were derived from.
func (m *SmartMean) WindowSize() int {
	return m.winSize
}

// Gamma returns the decay factor of the mean.
func (m *SmartMean) Gamma() float64 {
	return m.gamma
}
