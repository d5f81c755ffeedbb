package bq2429x

// Field setters take raw codes and truncate them to the field width; there
// is no range validation. Each one is a single read-modify-write.

// ---------------- REG00 Input Source Control ----------------

// SetHiZ enables or disables high-impedance mode on the input.
func (d *Device) SetHiZ(on bool) error { return d.setField(fEnHiZ, bit(on)) }
func (d *Device) HiZ() (bool, error)   { return d.flag(fEnHiZ) }

// SetInputVoltageLimit sets VINDPM: 3880 mV + code*80 mV.
func (d *Device) SetInputVoltageLimit(code uint8) error { return d.setField(fVINDPM, code) }
func (d *Device) InputVoltageLimit() (uint8, error)     { return d.field(fVINDPM) }

// SetInputCurrentLimit sets IINLIM:
// 000 100 mA, 001 150 mA, 010 500 mA, 011 900 mA,
// 100 1 A, 101 1.5 A, 110 2 A, 111 3 A.
func (d *Device) SetInputCurrentLimit(code uint8) error { return d.setField(fIINLIM, code) }
func (d *Device) InputCurrentLimit() (uint8, error)     { return d.field(fIINLIM) }

func (d *Device) ReadInputSourceControl() (InputSourceControl, error) {
	b, err := d.readReg(RegInputSourceCtrl)
	return UnpackInputSourceControl(b), err
}

func (d *Device) WriteInputSourceControl(v InputSourceControl) error {
	return d.modify(RegInputSourceCtrl, 0xFF, v.Pack())
}

// ---------------- REG01 Power-On Configuration ----------------

// ResetRegisters returns all registers to their default values. The bit
// clears itself on the device.
func (d *Device) ResetRegisters() error               { return d.setField(fRegReset, 1) }
func (d *Device) RegisterResetPending() (bool, error) { return d.flag(fRegReset) }

// ResetWatchdog kicks the I2C watchdog. The bit clears itself on the
// device; completion is not polled.
func (d *Device) ResetWatchdog() error                { return d.setField(fWdgReset, 1) }
func (d *Device) WatchdogResetPending() (bool, error) { return d.flag(fWdgReset) }

func (d *Device) EnableOTG(on bool) error   { return d.setField(fOTGConfig, bit(on)) }
func (d *Device) OTGEnabled() (bool, error) { return d.flag(fOTGConfig) }

func (d *Device) EnableCharging(on bool) error   { return d.setField(fCHGConfig, bit(on)) }
func (d *Device) ChargingEnabled() (bool, error) { return d.flag(fCHGConfig) }

// SetMinSystemVoltage sets SYS_MIN: 3000 mV + code*100 mV.
func (d *Device) SetMinSystemVoltage(code uint8) error { return d.setField(fSysMin, code) }
func (d *Device) MinSystemVoltage() (uint8, error)     { return d.field(fSysMin) }

// SetBoostCurrentLimit sets BOOST_LIM: 0 = 1 A, 1 = 1.5 A.
func (d *Device) SetBoostCurrentLimit(code uint8) error { return d.setField(fBoostLim, code) }
func (d *Device) BoostCurrentLimit() (uint8, error)     { return d.field(fBoostLim) }

func (d *Device) ReadPowerOnConfig() (PowerOnConfig, error) {
	b, err := d.readReg(RegPowerOnConfig)
	return UnpackPowerOnConfig(b), err
}

func (d *Device) WritePowerOnConfig(v PowerOnConfig) error {
	return d.modify(RegPowerOnConfig, 0xFF, v.Pack())
}

// ---------------- REG02 Charge Current Control ----------------

// SetChargeCurrent sets ICHG: 512 mA + code*64 mA.
func (d *Device) SetChargeCurrent(code uint8) error { return d.setField(fICHG, code) }
func (d *Device) ChargeCurrent() (uint8, error)     { return d.field(fICHG) }

// SetBoostColdThreshold sets BCOLD: 0 = Vbcold0, 1 = Vbcold1.
func (d *Device) SetBoostColdThreshold(code uint8) error { return d.setField(fBCold, code) }
func (d *Device) BoostColdThreshold() (uint8, error)     { return d.field(fBCold) }

// EnableForce20Pct scales the fast charge current to 20% of ICHG.
func (d *Device) EnableForce20Pct(on bool) error   { return d.setField(fForce20Pct, bit(on)) }
func (d *Device) Force20PctEnabled() (bool, error) { return d.flag(fForce20Pct) }

func (d *Device) ReadChargeCurrentControl() (ChargeCurrentControl, error) {
	b, err := d.readReg(RegChargeCurrent)
	return UnpackChargeCurrentControl(b), err
}

func (d *Device) WriteChargeCurrentControl(v ChargeCurrentControl) error {
	return d.modify(RegChargeCurrent, 0xFF, v.Pack())
}

// ---------------- REG03 Pre-charge/Termination Current ----------------

// SetPrechargeCurrent sets IPRECHG: 128 mA + code*128 mA.
func (d *Device) SetPrechargeCurrent(code uint8) error { return d.setField(fIPRECHG, code) }
func (d *Device) PrechargeCurrent() (uint8, error)     { return d.field(fIPRECHG) }

// SetTerminationCurrent sets ITERM: 128 mA + code*128 mA.
func (d *Device) SetTerminationCurrent(code uint8) error { return d.setField(fITERM, code) }
func (d *Device) TerminationCurrent() (uint8, error)     { return d.field(fITERM) }

func (d *Device) ReadPrechargeTermControl() (PrechargeTermControl, error) {
	b, err := d.readReg(RegPrechgTermCurr)
	return UnpackPrechargeTermControl(b), err
}

func (d *Device) WritePrechargeTermControl(v PrechargeTermControl) error {
	return d.modify(RegPrechgTermCurr, 0xFF, v.Pack())
}

// ---------------- REG04 Charge Voltage Control ----------------

// SetChargeVoltage sets VREG: 3504 mV + code*16 mV.
func (d *Device) SetChargeVoltage(code uint8) error { return d.setField(fVREG, code) }
func (d *Device) ChargeVoltage() (uint8, error)     { return d.field(fVREG) }

// SetBatteryLowThreshold sets BATLOWV: 0 = 2.8 V, 1 = 3.0 V.
func (d *Device) SetBatteryLowThreshold(code uint8) error { return d.setField(fBatLowV, code) }
func (d *Device) BatteryLowThreshold() (uint8, error)     { return d.field(fBatLowV) }

// SetRechargeThreshold sets VRECHG: 0 = 100 mV, 1 = 300 mV below VREG.
func (d *Device) SetRechargeThreshold(code uint8) error { return d.setField(fVRechg, code) }
func (d *Device) RechargeThreshold() (uint8, error)     { return d.field(fVRechg) }

func (d *Device) ReadChargeVoltageControl() (ChargeVoltageControl, error) {
	b, err := d.readReg(RegChargeVoltage)
	return UnpackChargeVoltageControl(b), err
}

func (d *Device) WriteChargeVoltageControl(v ChargeVoltageControl) error {
	return d.modify(RegChargeVoltage, 0xFF, v.Pack())
}

// ---------------- REG05 Termination/Timer Control ----------------

func (d *Device) EnableTermination(on bool) error   { return d.setField(fEnTerm, bit(on)) }
func (d *Device) TerminationEnabled() (bool, error) { return d.flag(fEnTerm) }

// SetWatchdogTimer sets WATCHDOG: 00 disabled, 01 40 s, 10 80 s, 11 160 s.
func (d *Device) SetWatchdogTimer(code uint8) error { return d.setField(fWatchdog, code) }
func (d *Device) WatchdogTimer() (uint8, error)     { return d.field(fWatchdog) }

func (d *Device) EnableSafetyTimer(on bool) error   { return d.setField(fEnTimer, bit(on)) }
func (d *Device) SafetyTimerEnabled() (bool, error) { return d.flag(fEnTimer) }

// SetChargeTimer sets CHG_TIMER: 00 5 h, 01 8 h, 10 12 h, 11 20 h.
func (d *Device) SetChargeTimer(code uint8) error { return d.setField(fChgTimer, code) }
func (d *Device) ChargeTimer() (uint8, error)     { return d.field(fChgTimer) }

func (d *Device) ReadTimerControl() (TimerControl, error) {
	b, err := d.readReg(RegTimerCtrl)
	return UnpackTimerControl(b), err
}

// WriteTimerControl preserves the reserved bits as read.
func (d *Device) WriteTimerControl(v TimerControl) error {
	return d.modify(RegTimerCtrl, maskTimerCtrl, v.Pack())
}

// ---------------- REG06 Boost Voltage/Thermal Control ----------------

// SetBoostVoltage sets BOOSTV: 4550 mV + code*64 mV.
func (d *Device) SetBoostVoltage(code uint8) error { return d.setField(fBoostV, code) }
func (d *Device) BoostVoltage() (uint8, error)     { return d.field(fBoostV) }

// SetBoostHotThreshold sets BHOT:
// 00 Vbhot1 (33% of REGN, ~55°C), 01 Vbhot0 (36%, ~60°C),
// 10 Vbhot2 (30%, ~65°C), 11 boost thermal protection disabled.
func (d *Device) SetBoostHotThreshold(code uint8) error { return d.setField(fBHot, code) }
func (d *Device) BoostHotThreshold() (uint8, error)     { return d.field(fBHot) }

// SetThermalRegulation sets TREG: 00 60°C, 01 80°C, 10 100°C, 11 120°C.
func (d *Device) SetThermalRegulation(code uint8) error { return d.setField(fTReg, code) }
func (d *Device) ThermalRegulation() (uint8, error)     { return d.field(fTReg) }

func (d *Device) ReadBoostThermalControl() (BoostThermalControl, error) {
	b, err := d.readReg(RegBoostThermal)
	return UnpackBoostThermalControl(b), err
}

func (d *Device) WriteBoostThermalControl(v BoostThermalControl) error {
	return d.modify(RegBoostThermal, 0xFF, v.Pack())
}

// ---------------- REG07 Misc Operation Control ----------------

// ForceInputDetection starts DPDM detection; the bit clears when done.
func (d *Device) ForceInputDetection(on bool) error   { return d.setField(fIinDetEn, bit(on)) }
func (d *Device) InputDetectionForced() (bool, error) { return d.flag(fIinDetEn) }

// EnableSafetyTimerSlowdown runs the safety timer at half rate during DPM
// and thermal regulation.
func (d *Device) EnableSafetyTimerSlowdown(on bool) error {
	return d.setField(fTmr2xEn, bit(on))
}
func (d *Device) SafetyTimerSlowdownEnabled() (bool, error) { return d.flag(fTmr2xEn) }

// DisableBATFET turns Q4 off (shipping mode) when off is true.
func (d *Device) DisableBATFET(off bool) error  { return d.setField(fBATFETDisable, bit(off)) }
func (d *Device) BATFETDisabled() (bool, error) { return d.flag(fBATFETDisable) }

// SetChargeFaultInterrupt enables INT on CHRG_FAULT (INT_MASK1).
func (d *Device) SetChargeFaultInterrupt(on bool) error {
	return d.setField(fIntMask1, bit(on))
}
func (d *Device) ChargeFaultInterrupt() (bool, error) { return d.flag(fIntMask1) }

// SetBatteryFaultInterrupt enables INT on BAT_FAULT (INT_MASK0).
func (d *Device) SetBatteryFaultInterrupt(on bool) error {
	return d.setField(fIntMask0, bit(on))
}
func (d *Device) BatteryFaultInterrupt() (bool, error) { return d.flag(fIntMask0) }

func (d *Device) ReadMiscControl() (MiscControl, error) {
	b, err := d.readReg(RegMiscCtrl)
	return UnpackMiscControl(b), err
}

// WriteMiscControl preserves the reserved bits as read.
func (d *Device) WriteMiscControl(v MiscControl) error {
	return d.modify(RegMiscCtrl, maskMiscCtrl, v.Pack())
}

// ---------------- Status / identification (read-only) ----------------

func (d *Device) SystemStatus() (SystemStatus, error) {
	b, err := d.readReg(RegSystemStatus)
	return UnpackSystemStatus(b), err
}

// FaultStatus reads REG09. Reading clears latched faults on the device.
func (d *Device) FaultStatus() (FaultStatus, error) {
	b, err := d.readReg(RegFaultStatus)
	return UnpackFaultStatus(b), err
}

func (d *Device) VendorStatus() (VendorStatus, error) {
	b, err := d.readReg(RegVendorStatus)
	return UnpackVendorStatus(b), err
}

// PartNumber returns the PN code as read; unassigned codes are not rejected.
func (d *Device) PartNumber() (PartNumber, error) {
	v, err := d.field(fPartNumber)
	return PartNumber(v), err
}

func (d *Device) Revision() (uint8, error) { return d.field(fRev) }
