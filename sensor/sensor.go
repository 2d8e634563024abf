// Package sensor reads scalar measurements from I²C sensors that expose them
// in a data register, such as temperature, distance or light sensors.
package sensor

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

var (
	// ErrNoAddress is returned when a device is opened without an address.
	ErrNoAddress = errors.New("sensor: no I2C address set")
	// ErrInvalidWidth is returned when the register width is not between 1
	// and 4 bytes.
	ErrInvalidWidth = errors.New("sensor: register width must be between 1 and 4 bytes")
)

// Device defines an I²C sensor sampled from a single data register.
type Device struct {
	dev    *i2c.Dev
	closer io.Closer

	busName string
	addr    uint16

	reg    byte
	width  int
	signed bool
	scale  float64
	offset float64
}

func newDevice() *Device {
	return &Device{
		width: 1,
		scale: 1,
	}
}

// New opens the I²C bus and returns a new Device configured with opts. The
// address must be set with OnAddr. By default, the bus is "", which selects
// the first available bus, and samples are read as 1 unsigned byte from
// register 0x00.
func New(opts ...Option) (*Device, error) {
	d := newDevice()
	if _, err := d.Options(opts...); err != nil {
		return nil, err
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("sensor: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(d.busName)
	if err != nil {
		return nil, fmt.Errorf("sensor: could not open I2C bus: %w", err)
	}

	if err := d.attach(bus); err != nil {
		bus.Close()
		return nil, err
	}
	d.closer = bus

	return d, nil
}

// NewOnBus returns a new Device on an already opened bus. Closing the Device
// does not close the bus.
func NewOnBus(bus i2c.Bus, opts ...Option) (*Device, error) {
	d := newDevice()
	if _, err := d.Options(opts...); err != nil {
		return nil, err
	}

	if err := d.attach(bus); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Device) attach(bus i2c.Bus) error {
	if d.addr == 0 {
		return ErrNoAddress
	}

	d.dev = &i2c.Dev{
		Addr: d.addr,
		Bus:  bus,
	}

	return nil
}

// Close closes the bus if it was opened by New.
func (d *Device) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// Addr returns the I²C address of the device.
func (d *Device) Addr() uint16 {
	return d.addr
}

// Read reads a single byte from a register.
func (d *Device) Read(reg byte) (byte, error) {
	b, err := d.ReadBytes(reg, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBytes reads n bytes starting at register reg. The device is expected
// to auto-increment its register pointer on multi-byte reads.
func (d *Device) ReadBytes(reg byte, n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("sensor: could not read register %#02x: invalid length %d", reg, n)
	}

	b := make([]byte, n)
	if err := d.dev.Tx([]byte{reg}, b); err != nil {
		return nil, fmt.Errorf("sensor: could not read %d bytes from %#x at register %#02x: %w", n, d.addr, reg, err)
	}

	return b, nil
}

// Write writes a byte to a register.
func (d *Device) Write(reg, data byte) error {
	n, err := d.dev.Write([]byte{reg, data})
	if err != nil {
		return fmt.Errorf("sensor: could not write byte: %w", err)
	}
	n-- // remove register write
	if n != 1 {
		return fmt.Errorf("sensor: wrong number of bytes written: want %d, got %d", 1, n)
	}

	return nil
}

// Sample reads the data register and returns its value as raw*scale+offset.
// Multi-byte registers are read MSB first.
func (d *Device) Sample() (float64, error) {
	b, err := d.ReadBytes(d.reg, d.width)
	if err != nil {
		return 0, err
	}

	var raw uint32
	for _, v := range b {
		raw = raw<<8 | uint32(v)
	}

	value := float64(raw)
	if d.signed {
		shift := 32 - 8*uint(d.width)
		value = float64(int32(raw<<shift) >> shift)
	}

	return value*d.scale + d.offset, nil
}
