// cmd/pico-bq2429x/main.go
//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"bq2429x-go/drivers/bq2429x"
)

const (
	// Must stay well inside the 40 s watchdog period.
	kickInterval = 1 * time.Second
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[bq2429x] boot")

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		println("[bq2429x] i2c configure:", err.Error())
		return
	}

	chg := bq2429x.NewI2C(i2c, bq2429x.Config{})
	for {
		pn, err := chg.Probe()
		if err == nil {
			println("[bq2429x] found", pn.String())
			break
		}
		println("[bq2429x] probe:", err.Error())
		time.Sleep(time.Second)
	}

	// 40 s host watchdog; the loop below kicks it every second.
	if err := chg.SetWatchdogTimer(bq2429x.WatchdogTimerCode(40 * time.Second)); err != nil {
		println("[bq2429x] watchdog:", err.Error())
	}

	tick := time.NewTicker(kickInterval)
	defer tick.Stop()

	for t := range tick.C {
		if err := chg.ResetWatchdog(); err != nil {
			println(t.Format("15:04:05"), "kick failed:", err.Error())
			continue
		}
		ss, err := chg.SystemStatus()
		if err != nil {
			println(t.Format("15:04:05"), "status failed:", err.Error())
			continue
		}
		fs, err := chg.FaultStatus()
		if err != nil {
			println(t.Format("15:04:05"), "fault failed:", err.Error())
			continue
		}
		println(t.Format("15:04:05"),
			"vbus="+ss.VBUS.String(),
			"chg="+ss.Charge.String(),
			"pg=", ss.PowerGood,
			"fault=", fs.Any(),
			"chg_fault="+fs.Charge.String(),
			"ntc="+fs.NTC.String())
	}
}
