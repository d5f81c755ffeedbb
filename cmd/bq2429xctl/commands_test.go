package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bq2429x-go/drivers/bq2429x"
)

type bank struct {
	regs bq2429x.Registers
	err  error
}

func (b *bank) ReadRegister(reg uint8, buf []byte) error {
	if b.err != nil {
		return b.err
	}
	buf[0] = b.regs[reg]
	return nil
}

func (b *bank) WriteRegister(reg uint8, data []byte) error {
	b.regs[reg] = data[0]
	return nil
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStatus(t *testing.T) {
	b := &bank{}
	b.regs[bq2429x.RegVendorStatus] = 0b011_00_010
	b.regs[bq2429x.RegSystemStatus] = 0b10_01_0_1_0_0
	b.regs[bq2429x.RegFaultStatus] = 0b0_0_00_0_0_01

	var out bytes.Buffer
	require.NoError(t, execute(bq2429x.New(b), []string{"status"}, &out, quiet))

	s := out.String()
	assert.Contains(t, s, "part:          BQ24297 rev 2")
	assert.Contains(t, s, "vbus:          adapter")
	assert.Contains(t, s, "charge:        pre_charge")
	assert.Contains(t, s, "power_good:    true")
	assert.Contains(t, s, "fault_ntc:     hot")
}

func TestDump(t *testing.T) {
	b := &bank{}
	b.regs[bq2429x.RegChargeVoltage] = 0xB2

	var out bytes.Buffer
	require.NoError(t, execute(bq2429x.New(b), []string{"dump"}, &out, quiet))
	assert.Contains(t, out.String(), "REG04 = 0xB2 (10110010)")
	assert.Equal(t, bq2429x.RegisterCount, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestKickAndCharge(t *testing.T) {
	b := &bank{}
	b.regs[bq2429x.RegPowerOnConfig] = 0b0001_1011
	d := bq2429x.New(b)

	require.NoError(t, execute(d, []string{"kick"}, io.Discard, quiet))
	assert.Equal(t, uint8(0b0101_1011), b.regs[bq2429x.RegPowerOnConfig])

	require.NoError(t, execute(d, []string{"charge", "off"}, io.Discard, quiet))
	assert.Equal(t, uint8(0b0100_1011), b.regs[bq2429x.RegPowerOnConfig])

	assert.ErrorIs(t, execute(d, []string{"charge", "maybe"}, io.Discard, quiet), errUsage)
	assert.ErrorIs(t, execute(d, []string{"frobnicate"}, io.Discard, quiet), errUsage)
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("charge_current_ma: 2048\n"), 0o600))

	b := &bank{}
	require.NoError(t, execute(bq2429x.New(b), []string{"apply", path}, io.Discard, quiet))
	assert.Equal(t, uint8(24), b.regs.ChargeCurrentControl().ICHG)

	assert.ErrorIs(t, execute(bq2429x.New(b), []string{"apply"}, io.Discard, quiet), errUsage)
}

func TestBusErrorsSurface(t *testing.T) {
	errBus := errors.New("i2c: nack")
	d := bq2429x.New(&bank{err: errBus})

	assert.ErrorIs(t, execute(d, []string{"status"}, io.Discard, quiet), errBus)
	assert.ErrorIs(t, execute(d, []string{"kick"}, io.Discard, quiet), errBus)
	assert.ErrorIs(t, execute(d, []string{"dump"}, io.Discard, quiet), errBus)
}
