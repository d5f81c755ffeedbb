package periphi2c

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"bq2429x-go/drivers/bq2429x"
)

func TestReadModifyWriteOverPeriph(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: bq2429x.Address, W: []byte{bq2429x.RegPowerOnConfig}, R: []byte{0b0001_1011}},
			{Addr: bq2429x.Address, W: []byte{bq2429x.RegPowerOnConfig, 0b0000_1011}},
		},
	}
	d := bq2429x.New(New(bus, 0))

	require.NoError(t, d.EnableCharging(false))
	require.NoError(t, bus.Close())
}

func TestStatusReadOverPeriph(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x6A, W: []byte{bq2429x.RegVendorStatus}, R: []byte{0b0010_0001}},
		},
	}
	pn, err := bq2429x.New(New(bus, 0x6A)).PartNumber()

	require.NoError(t, err)
	assert.Equal(t, bq2429x.BQ24296, pn)
	require.NoError(t, bus.Close())
}

type failingBus struct {
	i2ctest.Playback
	txs int
}

var errNack = errors.New("i2c: nack")

func (f *failingBus) Tx(addr uint16, w, r []byte) error {
	f.txs++
	return errNack
}

func TestReadErrorStopsBeforeWrite(t *testing.T) {
	bus := &failingBus{}
	err := bq2429x.New(New(bus, 0)).SetChargeVoltage(44)

	assert.Same(t, errNack, err)
	assert.Equal(t, 1, bus.txs)
}
