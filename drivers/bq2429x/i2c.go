package bq2429x

import "tinygo.org/x/drivers"

// I2C adapts a tinygo drivers.I2C bus to Transport. Register reads are a
// one-byte write followed by a repeated-start read.
type I2C struct {
	bus  drivers.I2C
	addr uint16

	// Fixed buffer to avoid per-call heap allocations.
	w [2]byte
}

// NewI2CTransport binds bus to a 7-bit device address.
func NewI2CTransport(bus drivers.I2C, addr uint16) *I2C {
	return &I2C{bus: bus, addr: addr}
}

func (i *I2C) ReadRegister(reg uint8, buf []byte) error {
	i.w[0] = reg
	return i.bus.Tx(i.addr, i.w[:1], buf)
}

func (i *I2C) WriteRegister(reg uint8, data []byte) error {
	if len(data) == 1 {
		i.w[0] = reg
		i.w[1] = data[0]
		return i.bus.Tx(i.addr, i.w[:2], nil)
	}
	w := make([]byte, 0, len(data)+1)
	w = append(w, reg)
	w = append(w, data...)
	return i.bus.Tx(i.addr, w, nil)
}
