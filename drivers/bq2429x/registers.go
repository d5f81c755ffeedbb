package bq2429x

const (
	// 7-bit I2C address (1101_011b).
	Address = 0x6B

	// --- Register addresses (8-bit registers) ---

	// Config / control
	RegInputSourceCtrl = 0x00 // R/W: EN_HIZ, VINDPM, IINLIM
	RegPowerOnConfig   = 0x01 // R/W: REG_RESET, WDG_RESET, OTG_CONFIG, CHG_CONFIG, SYS_MIN, BOOST_LIM
	RegChargeCurrent   = 0x02 // R/W: ICHG, BCOLD, FORCE_20PCT
	RegPrechgTermCurr  = 0x03 // R/W: IPRECHG, ITERM
	RegChargeVoltage   = 0x04 // R/W: VREG, BATLOWV, VRECHG
	RegTimerCtrl       = 0x05 // R/W: EN_TERM, WATCHDOG, EN_TIMER, CHG_TIMER
	RegBoostThermal    = 0x06 // R/W: BOOSTV, BHOT, TREG
	RegMiscCtrl        = 0x07 // R/W: IINDET_EN, TMR2X_EN, BATFET_DISABLE, INT_MASK

	// Readouts / status
	RegSystemStatus = 0x08 // R
	RegFaultStatus  = 0x09 // R
	RegVendorStatus = 0x0A // R

	// RegisterCount is the number of addressable registers.
	RegisterCount = 11
)

// field locates a bit-field inside one register.
type field struct {
	reg   uint8
	shift uint8
	width uint8
}

func (f field) max() uint8  { return uint8(1)<<f.width - 1 }
func (f field) mask() uint8 { return f.max() << f.shift }

func (f field) get(b uint8) uint8 { return (b & f.mask()) >> f.shift }

// put overwrites f's bits in b with v truncated to f.width.
func (f field) put(b, v uint8) uint8 { return b&^f.mask() | (v<<f.shift)&f.mask() }

// REG00 Input Source Control
var (
	fEnHiZ  = field{RegInputSourceCtrl, 7, 1}
	fVINDPM = field{RegInputSourceCtrl, 3, 4}
	fIINLIM = field{RegInputSourceCtrl, 0, 3}
)

// REG01 Power-On Configuration
var (
	fRegReset  = field{RegPowerOnConfig, 7, 1}
	fWdgReset  = field{RegPowerOnConfig, 6, 1}
	fOTGConfig = field{RegPowerOnConfig, 5, 1}
	fCHGConfig = field{RegPowerOnConfig, 4, 1}
	fSysMin    = field{RegPowerOnConfig, 1, 3}
	fBoostLim  = field{RegPowerOnConfig, 0, 1}
)

// REG02 Charge Current Control
var (
	fICHG       = field{RegChargeCurrent, 2, 6}
	fBCold      = field{RegChargeCurrent, 1, 1}
	fForce20Pct = field{RegChargeCurrent, 0, 1}
)

// REG03 Pre-charge/Termination Current Control
var (
	fIPRECHG = field{RegPrechgTermCurr, 4, 4}
	fITERM   = field{RegPrechgTermCurr, 0, 4}
)

// REG04 Charge Voltage Control
var (
	fVREG    = field{RegChargeVoltage, 2, 6}
	fBatLowV = field{RegChargeVoltage, 1, 1}
	fVRechg  = field{RegChargeVoltage, 0, 1}
)

// REG05 Charge Termination/Timer Control. Bits 6 and 0 are reserved.
var (
	fEnTerm   = field{RegTimerCtrl, 7, 1}
	fWatchdog = field{RegTimerCtrl, 4, 2}
	fEnTimer  = field{RegTimerCtrl, 3, 1}
	fChgTimer = field{RegTimerCtrl, 1, 2}
)

// REG06 Boost Voltage/Thermal Regulation Control
var (
	fBoostV = field{RegBoostThermal, 4, 4}
	fBHot   = field{RegBoostThermal, 2, 2}
	fTReg   = field{RegBoostThermal, 0, 2}
)

// REG07 Misc Operation Control. Bits 4:2 are reserved.
var (
	fIinDetEn      = field{RegMiscCtrl, 7, 1}
	fTmr2xEn       = field{RegMiscCtrl, 6, 1}
	fBATFETDisable = field{RegMiscCtrl, 5, 1}
	fIntMask1      = field{RegMiscCtrl, 1, 1}
	fIntMask0      = field{RegMiscCtrl, 0, 1}
)

// REG08 System Status
var (
	fVBUSStat  = field{RegSystemStatus, 6, 2}
	fCHRGStat  = field{RegSystemStatus, 4, 2}
	fDPMStat   = field{RegSystemStatus, 3, 1}
	fPGStat    = field{RegSystemStatus, 2, 1}
	fThermStat = field{RegSystemStatus, 1, 1}
	fVSYSStat  = field{RegSystemStatus, 0, 1}
)

// REG09 Fault Status. Bit 2 is reserved.
var (
	fWdgFault  = field{RegFaultStatus, 7, 1}
	fOTGFault  = field{RegFaultStatus, 6, 1}
	fCHRGFault = field{RegFaultStatus, 4, 2}
	fBATFault  = field{RegFaultStatus, 3, 1}
	fNTCFault  = field{RegFaultStatus, 0, 2}
)

// REG0A Vendor/Part/Revision Status. Bits 4:3 are reserved.
var (
	fPartNumber = field{RegVendorStatus, 5, 3}
	fRev        = field{RegVendorStatus, 0, 3}
)

// Masks of the named fields per register; the complement is reserved.
const (
	maskTimerCtrl = 0b1011_1110
	maskMiscCtrl  = 0b1110_0011
)
