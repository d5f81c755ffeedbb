package bq2429x

// Registers holds raw values of REG00..REG0A indexed by address.
type Registers [RegisterCount]uint8

// Dump reads every register once, in address order. It stops at the first
// failed read and returns the values read so far.
//
// Reading REG09 clears latched faults on the device.
func (d *Device) Dump() (Registers, error) {
	var r Registers
	for reg := range r {
		b, err := d.readReg(uint8(reg))
		if err != nil {
			return r, err
		}
		r[reg] = b
	}
	return r, nil
}

// Decoded views over a dump.

func (r Registers) InputSourceControl() InputSourceControl {
	return UnpackInputSourceControl(r[RegInputSourceCtrl])
}
func (r Registers) PowerOnConfig() PowerOnConfig { return UnpackPowerOnConfig(r[RegPowerOnConfig]) }
func (r Registers) ChargeCurrentControl() ChargeCurrentControl {
	return UnpackChargeCurrentControl(r[RegChargeCurrent])
}
func (r Registers) PrechargeTermControl() PrechargeTermControl {
	return UnpackPrechargeTermControl(r[RegPrechgTermCurr])
}
func (r Registers) ChargeVoltageControl() ChargeVoltageControl {
	return UnpackChargeVoltageControl(r[RegChargeVoltage])
}
func (r Registers) TimerControl() TimerControl { return UnpackTimerControl(r[RegTimerCtrl]) }
func (r Registers) BoostThermalControl() BoostThermalControl {
	return UnpackBoostThermalControl(r[RegBoostThermal])
}
func (r Registers) MiscControl() MiscControl   { return UnpackMiscControl(r[RegMiscCtrl]) }
func (r Registers) SystemStatus() SystemStatus { return UnpackSystemStatus(r[RegSystemStatus]) }
func (r Registers) FaultStatus() FaultStatus   { return UnpackFaultStatus(r[RegFaultStatus]) }
func (r Registers) VendorStatus() VendorStatus { return UnpackVendorStatus(r[RegVendorStatus]) }
