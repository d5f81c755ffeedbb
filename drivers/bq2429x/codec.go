package bq2429x

import "strconv"

// Register images. Each type packs to and unpacks from one 8-bit register
// value. Pack truncates every code to its field width; reserved bits pack
// as zero.

// InputSourceControl is REG00.
type InputSourceControl struct {
	HiZ    bool
	VINDPM uint8 // 4 bits, 3880 mV + code*80 mV
	IINLIM uint8 // 3 bits, see InputCurrentLimit_mA
}

func (r InputSourceControl) Pack() uint8 {
	var b uint8
	b = fEnHiZ.put(b, bit(r.HiZ))
	b = fVINDPM.put(b, r.VINDPM)
	return fIINLIM.put(b, r.IINLIM)
}

func UnpackInputSourceControl(b uint8) InputSourceControl {
	return InputSourceControl{
		HiZ:    fEnHiZ.get(b) != 0,
		VINDPM: fVINDPM.get(b),
		IINLIM: fIINLIM.get(b),
	}
}

// PowerOnConfig is REG01. RegisterReset and WatchdogReset are self-clearing.
type PowerOnConfig struct {
	RegisterReset bool
	WatchdogReset bool
	OTG           bool
	Charge        bool
	SysMin        uint8 // 3 bits, 3000 mV + code*100 mV
	BoostLim      uint8 // 1 bit, 0: 1 A, 1: 1.5 A
}

func (r PowerOnConfig) Pack() uint8 {
	var b uint8
	b = fRegReset.put(b, bit(r.RegisterReset))
	b = fWdgReset.put(b, bit(r.WatchdogReset))
	b = fOTGConfig.put(b, bit(r.OTG))
	b = fCHGConfig.put(b, bit(r.Charge))
	b = fSysMin.put(b, r.SysMin)
	return fBoostLim.put(b, r.BoostLim)
}

func UnpackPowerOnConfig(b uint8) PowerOnConfig {
	return PowerOnConfig{
		RegisterReset: fRegReset.get(b) != 0,
		WatchdogReset: fWdgReset.get(b) != 0,
		OTG:           fOTGConfig.get(b) != 0,
		Charge:        fCHGConfig.get(b) != 0,
		SysMin:        fSysMin.get(b),
		BoostLim:      fBoostLim.get(b),
	}
}

// ChargeCurrentControl is REG02.
type ChargeCurrentControl struct {
	ICHG       uint8 // 6 bits, 512 mA + code*64 mA
	BCold      uint8 // 1 bit, 0: Vbcold0 (-10°C), 1: Vbcold1 (-20°C)
	Force20Pct bool
}

func (r ChargeCurrentControl) Pack() uint8 {
	var b uint8
	b = fICHG.put(b, r.ICHG)
	b = fBCold.put(b, r.BCold)
	return fForce20Pct.put(b, bit(r.Force20Pct))
}

func UnpackChargeCurrentControl(b uint8) ChargeCurrentControl {
	return ChargeCurrentControl{
		ICHG:       fICHG.get(b),
		BCold:      fBCold.get(b),
		Force20Pct: fForce20Pct.get(b) != 0,
	}
}

// PrechargeTermControl is REG03.
type PrechargeTermControl struct {
	IPRECHG uint8 // 4 bits, 128 mA + code*128 mA
	ITERM   uint8 // 4 bits, 128 mA + code*128 mA
}

func (r PrechargeTermControl) Pack() uint8 {
	return fITERM.put(fIPRECHG.put(0, r.IPRECHG), r.ITERM)
}

func UnpackPrechargeTermControl(b uint8) PrechargeTermControl {
	return PrechargeTermControl{IPRECHG: fIPRECHG.get(b), ITERM: fITERM.get(b)}
}

// ChargeVoltageControl is REG04.
type ChargeVoltageControl struct {
	VREG    uint8 // 6 bits, 3504 mV + code*16 mV
	BatLowV uint8 // 1 bit, 0: 2.8 V, 1: 3.0 V
	VRechg  uint8 // 1 bit, 0: 100 mV, 1: 300 mV
}

func (r ChargeVoltageControl) Pack() uint8 {
	var b uint8
	b = fVREG.put(b, r.VREG)
	b = fBatLowV.put(b, r.BatLowV)
	return fVRechg.put(b, r.VRechg)
}

func UnpackChargeVoltageControl(b uint8) ChargeVoltageControl {
	return ChargeVoltageControl{
		VREG:    fVREG.get(b),
		BatLowV: fBatLowV.get(b),
		VRechg:  fVRechg.get(b),
	}
}

// TimerControl is REG05.
type TimerControl struct {
	Termination bool
	Watchdog    uint8 // 2 bits, 00 off, 01 40 s, 10 80 s, 11 160 s
	SafetyTimer bool
	ChgTimer    uint8 // 2 bits, 00 5 h, 01 8 h, 10 12 h, 11 20 h
}

func (r TimerControl) Pack() uint8 {
	var b uint8
	b = fEnTerm.put(b, bit(r.Termination))
	b = fWatchdog.put(b, r.Watchdog)
	b = fEnTimer.put(b, bit(r.SafetyTimer))
	return fChgTimer.put(b, r.ChgTimer)
}

func UnpackTimerControl(b uint8) TimerControl {
	return TimerControl{
		Termination: fEnTerm.get(b) != 0,
		Watchdog:    fWatchdog.get(b),
		SafetyTimer: fEnTimer.get(b) != 0,
		ChgTimer:    fChgTimer.get(b),
	}
}

// BoostThermalControl is REG06.
type BoostThermalControl struct {
	BoostV uint8 // 4 bits, 4550 mV + code*64 mV
	BHot   uint8 // 2 bits, 00 Vbhot1, 01 Vbhot0, 10 Vbhot2, 11 disabled
	TReg   uint8 // 2 bits, 00 60°C, 01 80°C, 10 100°C, 11 120°C
}

func (r BoostThermalControl) Pack() uint8 {
	var b uint8
	b = fBoostV.put(b, r.BoostV)
	b = fBHot.put(b, r.BHot)
	return fTReg.put(b, r.TReg)
}

func UnpackBoostThermalControl(b uint8) BoostThermalControl {
	return BoostThermalControl{
		BoostV: fBoostV.get(b),
		BHot:   fBHot.get(b),
		TReg:   fTReg.get(b),
	}
}

// MiscControl is REG07.
type MiscControl struct {
	ForceInputDetect    bool
	SafetyTimerSlowdown bool // TMR2X_EN
	BATFETDisabled      bool
	ChargeFaultINT      bool // INT_MASK1
	BatteryFaultINT     bool // INT_MASK0
}

func (r MiscControl) Pack() uint8 {
	var b uint8
	b = fIinDetEn.put(b, bit(r.ForceInputDetect))
	b = fTmr2xEn.put(b, bit(r.SafetyTimerSlowdown))
	b = fBATFETDisable.put(b, bit(r.BATFETDisabled))
	b = fIntMask1.put(b, bit(r.ChargeFaultINT))
	return fIntMask0.put(b, bit(r.BatteryFaultINT))
}

func UnpackMiscControl(b uint8) MiscControl {
	return MiscControl{
		ForceInputDetect:    fIinDetEn.get(b) != 0,
		SafetyTimerSlowdown: fTmr2xEn.get(b) != 0,
		BATFETDisabled:      fBATFETDisable.get(b) != 0,
		ChargeFaultINT:      fIntMask1.get(b) != 0,
		BatteryFaultINT:     fIntMask0.get(b) != 0,
	}
}

// ---------------- Status registers ----------------

// VBUSStatus is VBUS_STAT.
type VBUSStatus uint8

const (
	VBUSUnknown VBUSStatus = iota
	VBUSUSBHost
	VBUSAdapter
	VBUSOTG
)

var vbusNames = [4]string{"unknown", "usb_host", "adapter", "otg"}

func (s VBUSStatus) String() string { return vbusNames[s&3] }

// ChargeState is CHRG_STAT.
type ChargeState uint8

const (
	ChargeNotCharging ChargeState = iota
	ChargePreCharge
	ChargeFastCharging
	ChargeDone
)

var chargeStateNames = [4]string{"not_charging", "pre_charge", "fast_charging", "charge_done"}

func (s ChargeState) String() string { return chargeStateNames[s&3] }

// SystemStatus is REG08.
type SystemStatus struct {
	VBUS      VBUSStatus
	Charge    ChargeState
	DPM       bool // input VINDPM/IINDPM active
	PowerGood bool
	Thermal   bool // in thermal regulation
	VSYSMin   bool // BAT < VSYSMIN, system held at minimum
}

func (s SystemStatus) Pack() uint8 {
	var b uint8
	b = fVBUSStat.put(b, uint8(s.VBUS))
	b = fCHRGStat.put(b, uint8(s.Charge))
	b = fDPMStat.put(b, bit(s.DPM))
	b = fPGStat.put(b, bit(s.PowerGood))
	b = fThermStat.put(b, bit(s.Thermal))
	return fVSYSStat.put(b, bit(s.VSYSMin))
}

func UnpackSystemStatus(b uint8) SystemStatus {
	return SystemStatus{
		VBUS:      VBUSStatus(fVBUSStat.get(b)),
		Charge:    ChargeState(fCHRGStat.get(b)),
		DPM:       fDPMStat.get(b) != 0,
		PowerGood: fPGStat.get(b) != 0,
		Thermal:   fThermStat.get(b) != 0,
		VSYSMin:   fVSYSStat.get(b) != 0,
	}
}

// ChargeFault is CHRG_FAULT.
type ChargeFault uint8

const (
	ChargeFaultNone ChargeFault = iota
	ChargeFaultInput
	ChargeFaultThermal
	ChargeFaultSafetyTimer
)

var chargeFaultNames = [4]string{"normal", "input", "thermal_shutdown", "safety_timer"}

func (f ChargeFault) String() string { return chargeFaultNames[f&3] }

// NTCFault is NTC_FAULT.
type NTCFault uint8

const (
	NTCNormal NTCFault = iota
	NTCHot
	NTCCold
	NTCColdHot
)

var ntcFaultNames = [4]string{"normal", "hot", "cold", "cold_hot"}

func (f NTCFault) String() string { return ntcFaultNames[f&3] }

// FaultStatus is REG09. The device latches faults until the register is read.
type FaultStatus struct {
	Watchdog bool
	OTG      bool
	Charge   ChargeFault
	Battery  bool // BATOVP
	NTC      NTCFault
}

// Any reports whether any fault is flagged.
func (f FaultStatus) Any() bool { return f != FaultStatus{} }

func (f FaultStatus) Pack() uint8 {
	var b uint8
	b = fWdgFault.put(b, bit(f.Watchdog))
	b = fOTGFault.put(b, bit(f.OTG))
	b = fCHRGFault.put(b, uint8(f.Charge))
	b = fBATFault.put(b, bit(f.Battery))
	return fNTCFault.put(b, uint8(f.NTC))
}

func UnpackFaultStatus(b uint8) FaultStatus {
	return FaultStatus{
		Watchdog: fWdgFault.get(b) != 0,
		OTG:      fOTGFault.get(b) != 0,
		Charge:   ChargeFault(fCHRGFault.get(b)),
		Battery:  fBATFault.get(b) != 0,
		NTC:      NTCFault(fNTCFault.get(b)),
	}
}

// PartNumber is the PN field of REG0A. Only 1 and 3 are assigned; other
// codes are passed through as read.
type PartNumber uint8

const (
	BQ24296 PartNumber = 1
	BQ24297 PartNumber = 3
)

func (p PartNumber) String() string {
	switch p {
	case BQ24296:
		return "BQ24296"
	case BQ24297:
		return "BQ24297"
	default:
		return "unknown(" + strconv.Itoa(int(p)) + ")"
	}
}

// Known reports whether p is an assigned part code.
func (p PartNumber) Known() bool { return p == BQ24296 || p == BQ24297 }

// VendorStatus is REG0A.
type VendorStatus struct {
	PartNumber PartNumber
	Revision   uint8
}

func (v VendorStatus) Pack() uint8 {
	return fRev.put(fPartNumber.put(0, uint8(v.PartNumber)), v.Revision)
}

func UnpackVendorStatus(b uint8) VendorStatus {
	return VendorStatus{
		PartNumber: PartNumber(fPartNumber.get(b)),
		Revision:   fRev.get(b),
	}
}
