// Package bq2429x provides a minimal TinyGo driver for the BQ24296/BQ24297
// single-cell USB/adapter charger with power path management.
//
// Design notes (datasheet references):
// • I2C, up to 400kHz, single-byte registers 0x00..0x0A.
// • Fixed 7-bit address = 0b1101011 (0x6B).
// • Every setter is a read-modify-write of one register; sibling bits are
//   written back exactly as read. A failed read aborts before any write.
// • Values are raw register codes. See units.go for mV/mA conversions.
// • No caching, no retries, no locking. Bus errors are returned as-is.
package bq2429x

import "tinygo.org/x/drivers"

// Transport performs raw register transactions against one device.
// Any non-nil error is treated as failure and returned unchanged.
type Transport interface {
	ReadRegister(reg uint8, buf []byte) error
	WriteRegister(reg uint8, data []byte) error
}

// Config controls I2C wiring. All fields are optional.
type Config struct {
	// Address defaults to 0x6B if zero.
	Address uint16
}

// Device represents a BQ2429x instance.
type Device struct {
	t Transport

	// set by Probe after a successful vendor register read
	initialized bool

	// Scratch buffer to avoid per-call heap allocations. Never read back
	// across calls.
	buf [1]byte
}

// New constructs a Device over an arbitrary transport.
// It does not touch the bus.
func New(t Transport) *Device {
	return &Device{t: t}
}

// NewI2C constructs a Device on a tinygo I2C bus. The bus must already be
// configured.
func NewI2C(bus drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = Address
	}
	return New(NewI2CTransport(bus, addr))
}

// Probe reads the vendor/part register and marks the device initialised.
// The part code is returned uninterpreted; unknown codes are not an error.
func (d *Device) Probe() (PartNumber, error) {
	v, err := d.VendorStatus()
	if err != nil {
		return 0, err
	}
	d.initialized = true
	return v.PartNumber, nil
}

// Initialized reports whether Probe has succeeded at least once.
func (d *Device) Initialized() bool { return d.initialized }

// ---------------- Low-level register access ----------------

func (d *Device) readReg(reg uint8) (uint8, error) {
	if err := d.t.ReadRegister(reg, d.buf[:]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

func (d *Device) writeReg(reg, val uint8) error {
	d.buf[0] = val
	return d.t.WriteRegister(reg, d.buf[:])
}

// modify replaces the bits selected by mask with val and writes the
// register back. Bits outside mask keep the value just read.
func (d *Device) modify(reg, mask, val uint8) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, cur&^mask|val&mask)
}

func (d *Device) setField(f field, v uint8) error {
	return d.modify(f.reg, f.mask(), v<<f.shift)
}

func (d *Device) field(f field) (uint8, error) {
	b, err := d.readReg(f.reg)
	if err != nil {
		return 0, err
	}
	return f.get(b), nil
}

func (d *Device) flag(f field) (bool, error) {
	v, err := d.field(f)
	return v != 0, err
}

func bit(on bool) uint8 {
	if on {
		return 1
	}
	return 0
}
