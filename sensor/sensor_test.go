package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/periph/conn/i2c/i2ctest"
	"periph.io/x/periph/conn/physic"

	"github.com/cgxeiji/sltools"
)

const testAddr = 0x48

func TestSample(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		r    []byte
		want float64
	}{
		{"byte", nil, []byte{0xC8}, 200},
		{"word", []Option{Width(2)}, []byte{0x01, 0x02}, 258},
		{"signed", []Option{Width(2), Signed(true)}, []byte{0xFF, 0x38}, -200},
		{"signed byte", []Option{Signed(true)}, []byte{0x80}, -128},
		{"scaled", []Option{Width(2), Signed(true), Scale(1.0 / 256)}, []byte{0x19, 0x80}, 25.5},
		{"offset", []Option{Scale(0.5), Offset(-10)}, []byte{0x40}, 22},
		{"dword", []Option{Width(4)}, []byte{0x00, 0x01, 0x00, 0x00}, 65536},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &i2ctest.Playback{
				Ops: []i2ctest.IO{{Addr: testAddr, W: []byte{0x05}, R: tt.r}},
			}
			opts := append([]Option{OnAddr(testAddr), Register(0x05)}, tt.opts...)
			d, err := NewOnBus(bus, opts...)
			require.NoError(t, err)

			got, err := d.Sample()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)

			assert.NoError(t, d.Close())
			assert.NoError(t, bus.Close())
		})
	}
}

func TestReadWrite(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: testAddr, W: []byte{0x01, 0x60}},
			{Addr: testAddr, W: []byte{0x01}, R: []byte{0x60}},
			{Addr: testAddr, W: []byte{0x02}, R: []byte{0x4B, 0x00}},
		},
	}
	d, err := NewOnBus(bus, OnAddr(testAddr))
	require.NoError(t, err)

	require.NoError(t, d.Write(0x01, 0x60))

	b, err := d.Read(0x01)
	require.NoError(t, err)
	assert.Equal(t, byte(0x60), b)

	bs, err := d.ReadBytes(0x02, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4B, 0x00}, bs)

	assert.NoError(t, bus.Close())
}

func TestNewOnBusErrors(t *testing.T) {
	_, err := NewOnBus(&i2ctest.Playback{})
	assert.ErrorIs(t, err, ErrNoAddress)

	for _, w := range []int{0, 5, -1} {
		_, err = NewOnBus(&i2ctest.Playback{}, OnAddr(testAddr), Width(w))
		assert.ErrorIs(t, err, ErrInvalidWidth)
	}
}

func TestOptionsReturnPrevious(t *testing.T) {
	d, err := NewOnBus(&i2ctest.Playback{}, OnAddr(testAddr))
	require.NoError(t, err)

	old, err := d.Options(OnAddr(0x49))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x49), d.Addr())

	_, err = d.Options(old)
	require.NoError(t, err)
	assert.Equal(t, uint16(testAddr), d.Addr())

	old, err = d.Options(Width(2), Scale(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.scale)
	_, err = d.Options(old)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.scale)
	assert.Equal(t, 2, d.width)
}

var errBus = errors.New("bus is down")

type failingBus struct{}

func (failingBus) String() string { return "failing" }
func (failingBus) Tx(addr uint16, w, r []byte) error { return errBus }
func (failingBus) SetSpeed(f physic.Frequency) error { return nil }

func TestSampleError(t *testing.T) {
	d, err := NewOnBus(failingBus{}, OnAddr(testAddr))
	require.NoError(t, err)

	_, err = d.Sample()
	assert.ErrorIs(t, err, errBus)

	_, err = d.Read(0x01)
	assert.ErrorIs(t, err, errBus)
	assert.Contains(t, err.Error(), "register 0x1")

	_, err = d.ReadBytes(0x01, 0)
	assert.Error(t, err)

	assert.ErrorIs(t, d.Write(0x00, 0x01), errBus)
}

func TestFilteredSensor(t *testing.T) {
	var ops []i2ctest.IO
	for _, v := range []byte{20, 20, 20, 120, 20} {
		ops = append(ops, i2ctest.IO{Addr: testAddr, W: []byte{0x00}, R: []byte{v}})
	}
	bus := &i2ctest.Playback{Ops: ops}
	d, err := NewOnBus(bus, OnAddr(testAddr))
	require.NoError(t, err)

	f, err := sltools.NewFiltered(d, 8)
	require.NoError(t, err)

	var means []float64
	for range ops {
		_, mean, err := f.Read()
		require.NoError(t, err)
		means = append(means, mean)
	}
	assert.InDelta(t, 20, means[2], 1e-9)
	assert.Greater(t, means[3], 20.0)
	assert.Less(t, means[3], 120.0)
	assert.Less(t, means[4], means[3])
	assert.NoError(t, bus.Close())
}
