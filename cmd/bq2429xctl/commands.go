package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bq2429x-go/drivers/bq2429x"
	"bq2429x-go/internal/profile"
)

var errUsage = errors.New("usage: bq2429xctl [flags] status|dump|apply <file>|kick|charge on|off")

func execute(d *bq2429x.Device, args []string, out io.Writer, log *slog.Logger) error {
	switch args[0] {
	case "status":
		return status(d, out)
	case "dump":
		return dump(d, out)
	case "apply":
		if len(args) != 2 {
			return errUsage
		}
		p, err := profile.Load(args[1])
		if err != nil {
			return err
		}
		if err := profile.Apply(d, p, log); err != nil {
			return err
		}
		log.Info("profile applied", "file", args[1])
		return nil
	case "kick":
		if err := d.ResetWatchdog(); err != nil {
			return fmt.Errorf("watchdog reset: %w", err)
		}
		log.Info("watchdog reset")
		return nil
	case "charge":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return errUsage
		}
		if err := d.EnableCharging(args[1] == "on"); err != nil {
			return fmt.Errorf("charge %s: %w", args[1], err)
		}
		log.Info("charging", "enabled", args[1] == "on")
		return nil
	default:
		return errUsage
	}
}

func status(d *bq2429x.Device, out io.Writer) error {
	vs, err := d.VendorStatus()
	if err != nil {
		return fmt.Errorf("read vendor status: %w", err)
	}
	ss, err := d.SystemStatus()
	if err != nil {
		return fmt.Errorf("read system status: %w", err)
	}
	fs, err := d.FaultStatus()
	if err != nil {
		return fmt.Errorf("read fault status: %w", err)
	}
	fmt.Fprintf(out, "part:          %s rev %d\n", vs.PartNumber, vs.Revision)
	fmt.Fprintf(out, "vbus:          %s\n", ss.VBUS)
	fmt.Fprintf(out, "charge:        %s\n", ss.Charge)
	fmt.Fprintf(out, "power_good:    %t\n", ss.PowerGood)
	fmt.Fprintf(out, "dpm:           %t\n", ss.DPM)
	fmt.Fprintf(out, "thermal_reg:   %t\n", ss.Thermal)
	fmt.Fprintf(out, "vsys_min:      %t\n", ss.VSYSMin)
	fmt.Fprintf(out, "fault_wdg:     %t\n", fs.Watchdog)
	fmt.Fprintf(out, "fault_otg:     %t\n", fs.OTG)
	fmt.Fprintf(out, "fault_charge:  %s\n", fs.Charge)
	fmt.Fprintf(out, "fault_battery: %t\n", fs.Battery)
	fmt.Fprintf(out, "fault_ntc:     %s\n", fs.NTC)
	return nil
}

func dump(d *bq2429x.Device, out io.Writer) error {
	regs, err := d.Dump()
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	for reg, v := range regs {
		fmt.Fprintf(out, "REG%02X = 0x%02X (%08b)\n", reg, v, v)
	}
	return nil
}
