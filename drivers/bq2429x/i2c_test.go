package bq2429x

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeI2C implements tinygo drivers.I2C over a register bank.
type fakeI2C struct {
	regs  Registers
	addrs []uint16
	txs   [][]byte
	err   error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.addrs = append(f.addrs, addr)
	f.txs = append(f.txs, append([]byte(nil), w...))
	if f.err != nil {
		return f.err
	}
	switch {
	case len(w) == 1 && len(r) > 0:
		copy(r, f.regs[w[0]:])
	case len(w) >= 2 && r == nil:
		copy(f.regs[w[0]:], w[1:])
	}
	return nil
}

func TestI2CTransportFraming(t *testing.T) {
	bus := &fakeI2C{}
	bus.regs[RegChargeVoltage] = 0b1011_0010
	d := NewI2C(bus, Config{})

	require.NoError(t, d.SetRechargeThreshold(1))

	assert.Equal(t, []uint16{Address, Address}, bus.addrs)
	assert.Equal(t, [][]byte{{RegChargeVoltage}, {RegChargeVoltage, 0b1011_0011}}, bus.txs)
	assert.Equal(t, uint8(0b1011_0011), bus.regs[RegChargeVoltage])
}

func TestI2CTransportAddressOverride(t *testing.T) {
	bus := &fakeI2C{}
	_, err := NewI2C(bus, Config{Address: 0x6A}).SystemStatus()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x6A}, bus.addrs)
}

func TestI2CTransportMultiByteWrite(t *testing.T) {
	bus := &fakeI2C{}
	tr := NewI2CTransport(bus, Address)

	require.NoError(t, tr.WriteRegister(RegInputSourceCtrl, []byte{0x11, 0x22, 0x33}))
	assert.Equal(t, [][]byte{{RegInputSourceCtrl, 0x11, 0x22, 0x33}}, bus.txs)

	buf := make([]byte, 3)
	require.NoError(t, tr.ReadRegister(RegInputSourceCtrl, buf))
	assert.Equal(t, []byte{0x11, 0x22, 0x33}, buf)
}

func TestI2CTransportErrorPassThrough(t *testing.T) {
	bus := &fakeI2C{err: errBus}
	err := NewI2C(bus, Config{}).EnableCharging(true)
	assert.Same(t, errBus, err)
	assert.Len(t, bus.txs, 1)
}
