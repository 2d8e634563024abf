package sensor

import "fmt"

// An Option configures a device.
type Option func(d *Device) (Option, error)

// Options set different configuration options and returns the previous value
// of the last option passed.
func (d *Device) Options(options ...Option) (Option, error) {
	var old Option
	var err error
	for _, opt := range options {
		old, err = opt(d)
		if err != nil {
			return nil, err
		}
	}

	return old, nil
}

// OnBus can be used to specify I²C bus name
// ("/dev/i2c-2", "I2C2", "2"). By default, the bus name is "", which selects
// the first available bus. It has no effect once the bus is opened.
func OnBus(name string) Option {
	return func(d *Device) (Option, error) {
		old := d.busName
		d.busName = name
		return OnBus(old), nil
	}
}

// OnAddr sets the I²C address of the device.
func OnAddr(addr uint16) Option {
	return func(d *Device) (Option, error) {
		old := d.addr
		d.addr = addr
		if d.dev != nil {
			d.dev.Addr = addr
		}
		return OnAddr(old), nil
	}
}

// Register sets the data register read by Sample.
func Register(reg byte) Option {
	return func(d *Device) (Option, error) {
		old := d.reg
		d.reg = reg
		return Register(old), nil
	}
}

// Width sets the size in bytes of the data register, from 1 to 4.
func Width(n int) Option {
	return func(d *Device) (Option, error) {
		if n < 1 || n > 4 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, n)
		}
		old := d.width
		d.width = n
		return Width(old), nil
	}
}

// Signed sets whether the data register holds a two's complement value.
func Signed(signed bool) Option {
	return func(d *Device) (Option, error) {
		old := d.signed
		d.signed = signed
		return Signed(old), nil
	}
}

// Scale sets the factor applied to the raw register value.
func Scale(f float64) Option {
	return func(d *Device) (Option, error) {
		old := d.scale
		d.scale = f
		return Scale(old), nil
	}
}

// Offset sets the value added to the scaled register value.
func Offset(f float64) Option {
	return func(d *Device) (Option, error) {
		old := d.offset
		d.offset = f
		return Offset(old), nil
	}
}
