package bq2429x

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinearScaling(t *testing.T) {
	cases := []struct {
		name   string
		encode func(int32) uint8
		decode func(uint8) int32
		base   int32
		step   int32
		max    uint8
	}{
		{"vindpm", InputVoltageLimitCode, InputVoltageLimit_mV, 3880, 80, 15},
		{"sys_min", MinSystemVoltageCode, MinSystemVoltage_mV, 3000, 100, 7},
		{"ichg", ChargeCurrentCode, ChargeCurrent_mA, 512, 64, 63},
		{"iprechg", PrechargeCurrentCode, PrechargeCurrent_mA, 128, 128, 15},
		{"iterm", TerminationCurrentCode, TerminationCurrent_mA, 128, 128, 15},
		{"vreg", ChargeVoltageCode, ChargeVoltage_mV, 3504, 16, 63},
		{"boostv", BoostVoltageCode, BoostVoltage_mV, 4550, 64, 15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for code := uint8(0); code <= c.max; code++ {
				v := c.decode(code)
				assert.Equal(t, c.base+int32(code)*c.step, v)
				assert.Equal(t, code, c.encode(v))
				// Anything short of the next step floors to this code.
				assert.Equal(t, code, c.encode(v+c.step-1))
			}
			assert.Equal(t, uint8(0), c.encode(c.base-1))
			assert.Equal(t, uint8(0), c.encode(-5))
			assert.Equal(t, c.max, c.encode(c.base+int32(c.max+1)*c.step*4))
			// Decoders ignore bits above the field width.
			assert.Equal(t, c.decode(c.max), c.decode(0xFF))
		})
	}
}

func TestKnownSettings(t *testing.T) {
	assert.Equal(t, int32(4360), InputVoltageLimit_mV(6))
	assert.Equal(t, int32(3500), MinSystemVoltage_mV(5))
	assert.Equal(t, int32(2048), ChargeCurrent_mA(24))
	assert.Equal(t, int32(4208), ChargeVoltage_mV(44))
	assert.Equal(t, int32(4998), BoostVoltage_mV(7))
	assert.Equal(t, uint8(44), ChargeVoltageCode(4208))
	assert.Equal(t, uint8(43), ChargeVoltageCode(4200))
}

func TestInputCurrentLimit(t *testing.T) {
	want := []int32{100, 150, 500, 900, 1000, 1500, 2000, 3000}
	for code, mA := range want {
		assert.Equal(t, mA, InputCurrentLimit_mA(uint8(code)))
		assert.Equal(t, uint8(code), InputCurrentLimitCode(mA))
	}
	assert.Equal(t, uint8(0), InputCurrentLimitCode(50))
	assert.Equal(t, uint8(2), InputCurrentLimitCode(899))
	assert.Equal(t, uint8(7), InputCurrentLimitCode(5000))
	assert.Equal(t, int32(100), InputCurrentLimit_mA(8))
}

func TestTimers(t *testing.T) {
	assert.Equal(t, uint8(0), WatchdogTimerCode(0))
	assert.Equal(t, uint8(1), WatchdogTimerCode(10*time.Second))
	assert.Equal(t, uint8(1), WatchdogTimerCode(79*time.Second))
	assert.Equal(t, uint8(2), WatchdogTimerCode(80*time.Second))
	assert.Equal(t, uint8(3), WatchdogTimerCode(time.Hour))
	assert.Equal(t, time.Duration(0), WatchdogTimeout(0))
	assert.Equal(t, 160*time.Second, WatchdogTimeout(3))

	assert.Equal(t, uint8(0), ChargeTimerCode(time.Hour))
	assert.Equal(t, uint8(1), ChargeTimerCode(8*time.Hour))
	assert.Equal(t, uint8(2), ChargeTimerCode(19*time.Hour))
	assert.Equal(t, uint8(3), ChargeTimerCode(48*time.Hour))
	assert.Equal(t, 12*time.Hour, ChargeTimerDuration(2))
}

func TestRanges(t *testing.T) {
	assert.Equal(t, Range{3880, 5080}, InputVoltageLimitRange)
	assert.Equal(t, Range{100, 3000}, InputCurrentLimitRange)
	assert.Equal(t, Range{3000, 3700}, MinSystemVoltageRange)
	assert.Equal(t, Range{512, 4544}, ChargeCurrentRange)
	assert.Equal(t, Range{128, 2048}, PrechargeCurrentRange)
	assert.Equal(t, Range{3504, 4512}, ChargeVoltageRange)
	assert.Equal(t, Range{4550, 5510}, BoostVoltageRange)
	assert.True(t, ChargeVoltageRange.Contains(4208))
	assert.False(t, ChargeVoltageRange.Contains(4600))
}
