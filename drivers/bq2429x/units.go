package bq2429x

import "time"

// Integer unit conversions for the linear code fields. The accessors never
// apply these; callers convert explicitly.
//
// Encoders pick the largest code whose value does not exceed the request and
// clamp to the field range. Decoders mask the code to the field width.

const (
	vindpmBase_mV  = 3880
	vindpmStep_mV  = 80
	sysMinBase_mV  = 3000
	sysMinStep_mV  = 100
	ichgBase_mA    = 512
	ichgStep_mA    = 64
	iprechgBase_mA = 128
	iprechgStep_mA = 128
	itermBase_mA   = 128
	itermStep_mA   = 128
	vregBase_mV    = 3504
	vregStep_mV    = 16
	boostvBase_mV  = 4550
	boostvStep_mV  = 64
)

var iinlimTable_mA = [8]int32{100, 150, 500, 900, 1000, 1500, 2000, 3000}

var watchdogTable = [4]time.Duration{0, 40 * time.Second, 80 * time.Second, 160 * time.Second}

var chgTimerTable = [4]time.Duration{5 * time.Hour, 8 * time.Hour, 12 * time.Hour, 20 * time.Hour}

// floorCode maps value onto base + code*step.
func floorCode(value, base, step int32, max uint8) uint8 {
	if value <= base {
		return 0
	}
	code := (value - base) / step
	if code > int32(max) {
		return max
	}
	return uint8(code)
}

func linear(code uint8, f field, base, step int32) int32 {
	return base + int32(code&f.max())*step
}

// VINDPM

func InputVoltageLimitCode(mV int32) uint8 {
	return floorCode(mV, vindpmBase_mV, vindpmStep_mV, fVINDPM.max())
}

func InputVoltageLimit_mV(code uint8) int32 {
	return linear(code, fVINDPM, vindpmBase_mV, vindpmStep_mV)
}

// IINLIM

// InputCurrentLimitCode returns the largest limit not above mA; requests
// below 100 mA map to code 0.
func InputCurrentLimitCode(mA int32) uint8 {
	var code uint8
	for i, v := range iinlimTable_mA {
		if v <= mA {
			code = uint8(i)
		}
	}
	return code
}

func InputCurrentLimit_mA(code uint8) int32 { return iinlimTable_mA[code&fIINLIM.max()] }

// SYS_MIN

func MinSystemVoltageCode(mV int32) uint8 {
	return floorCode(mV, sysMinBase_mV, sysMinStep_mV, fSysMin.max())
}

func MinSystemVoltage_mV(code uint8) int32 {
	return linear(code, fSysMin, sysMinBase_mV, sysMinStep_mV)
}

// ICHG

func ChargeCurrentCode(mA int32) uint8 {
	return floorCode(mA, ichgBase_mA, ichgStep_mA, fICHG.max())
}

func ChargeCurrent_mA(code uint8) int32 {
	return linear(code, fICHG, ichgBase_mA, ichgStep_mA)
}

// IPRECHG / ITERM

func PrechargeCurrentCode(mA int32) uint8 {
	return floorCode(mA, iprechgBase_mA, iprechgStep_mA, fIPRECHG.max())
}

func PrechargeCurrent_mA(code uint8) int32 {
	return linear(code, fIPRECHG, iprechgBase_mA, iprechgStep_mA)
}

func TerminationCurrentCode(mA int32) uint8 {
	return floorCode(mA, itermBase_mA, itermStep_mA, fITERM.max())
}

func TerminationCurrent_mA(code uint8) int32 {
	return linear(code, fITERM, itermBase_mA, itermStep_mA)
}

// VREG

func ChargeVoltageCode(mV int32) uint8 {
	return floorCode(mV, vregBase_mV, vregStep_mV, fVREG.max())
}

func ChargeVoltage_mV(code uint8) int32 {
	return linear(code, fVREG, vregBase_mV, vregStep_mV)
}

// BOOSTV

func BoostVoltageCode(mV int32) uint8 {
	return floorCode(mV, boostvBase_mV, boostvStep_mV, fBoostV.max())
}

func BoostVoltage_mV(code uint8) int32 {
	return linear(code, fBoostV, boostvBase_mV, boostvStep_mV)
}

// Timers

// WatchdogTimerCode returns 0 (disabled) for d <= 0, otherwise the longest
// period not above d, with 40 s as the floor.
func WatchdogTimerCode(d time.Duration) uint8 {
	if d <= 0 {
		return 0
	}
	code := uint8(1)
	for i := 2; i < len(watchdogTable); i++ {
		if watchdogTable[i] <= d {
			code = uint8(i)
		}
	}
	return code
}

// WatchdogTimeout returns 0 when the watchdog is disabled.
func WatchdogTimeout(code uint8) time.Duration { return watchdogTable[code&fWatchdog.max()] }

// ChargeTimerCode returns the longest safety timer not above d, with 5 h as
// the floor.
func ChargeTimerCode(d time.Duration) uint8 {
	var code uint8
	for i, v := range chgTimerTable {
		if v <= d {
			code = uint8(i)
		}
	}
	return code
}

func ChargeTimerDuration(code uint8) time.Duration { return chgTimerTable[code&fChgTimer.max()] }

// Ranges reports the encodable span of each linear field, in mV or mA.
type Range struct{ Min, Max int32 }

var (
	InputVoltageLimitRange  = Range{InputVoltageLimit_mV(0), InputVoltageLimit_mV(fVINDPM.max())}
	InputCurrentLimitRange  = Range{iinlimTable_mA[0], iinlimTable_mA[len(iinlimTable_mA)-1]}
	MinSystemVoltageRange   = Range{MinSystemVoltage_mV(0), MinSystemVoltage_mV(fSysMin.max())}
	ChargeCurrentRange      = Range{ChargeCurrent_mA(0), ChargeCurrent_mA(fICHG.max())}
	PrechargeCurrentRange   = Range{PrechargeCurrent_mA(0), PrechargeCurrent_mA(fIPRECHG.max())}
	TerminationCurrentRange = Range{TerminationCurrent_mA(0), TerminationCurrent_mA(fITERM.max())}
	ChargeVoltageRange      = Range{ChargeVoltage_mV(0), ChargeVoltage_mV(fVREG.max())}
	BoostVoltageRange       = Range{BoostVoltage_mV(0), BoostVoltage_mV(fBoostV.max())}
)

// Contains reports whether v lies within r, inclusive.
func (r Range) Contains(v int32) bool { return v >= r.Min && v <= r.Max }
