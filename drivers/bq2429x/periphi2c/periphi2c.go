// Package periphi2c exposes a BQ2429x transport over a periph.io I2C bus,
// for Linux hosts (Raspberry Pi, BeagleBone and similar).
package periphi2c

import (
	"periph.io/x/conn/v3/i2c"

	"bq2429x-go/drivers/bq2429x"
)

var _ bq2429x.Transport = (*Bus)(nil)

// Bus binds a periph I2C bus to one device address.
type Bus struct {
	dev i2c.Dev
}

// New binds bus to a 7-bit address; 0 selects bq2429x.Address.
func New(bus i2c.Bus, addr uint16) *Bus {
	if addr == 0 {
		addr = bq2429x.Address
	}
	return &Bus{dev: i2c.Dev{Bus: bus, Addr: addr}}
}

func (b *Bus) ReadRegister(reg uint8, buf []byte) error {
	return b.dev.Tx([]byte{reg}, buf)
}

func (b *Bus) WriteRegister(reg uint8, data []byte) error {
	w := make([]byte, 0, len(data)+1)
	w = append(w, reg)
	w = append(w, data...)
	return b.dev.Tx(w, nil)
}

func (b *Bus) String() string { return b.dev.String() }
