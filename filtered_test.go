package sltools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSampler struct {
	values []float64
	err    error
}

func (f *fakeSampler) Sample() (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	v := f.values[0]
	f.values = f.values[1:]
	return v, nil
}

func TestFiltered(t *testing.T) {
	s := &fakeSampler{values: []float64{3, 3, 3}}
	f, err := NewFiltered(s, 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		raw, mean, err := f.Read()
		require.NoError(t, err)
		assert.Equal(t, 3.0, raw)
		assert.InDelta(t, 3.0, mean, 1e-12)
	}
	assert.Equal(t, 3, f.Mean().ValCount())
}

func TestFilteredSampleError(t *testing.T) {
	errBus := errors.New("bus error")
	s := &fakeSampler{values: []float64{8}}
	f, err := NewFiltered(s, 4)
	require.NoError(t, err)

	_, _, err = f.Read()
	require.NoError(t, err)

	s.err = errBus
	_, mean, err := f.Read()
	assert.ErrorIs(t, err, errBus)
	assert.Equal(t, 8.0, mean)
	assert.Equal(t, 1, f.Mean().ValCount())
}

func TestNewFilteredInvalidWindow(t *testing.T) {
	_, err := NewFiltered(&fakeSampler{}, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
