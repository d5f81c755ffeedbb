// cmd/bq2429xctl/main.go
//
// bq2429xctl inspects and configures a BQ24296/BQ24297 charger from a Linux
// host through periph.io.
//
//	bq2429xctl [-bus name] [-addr 0x6b] [-log-level info] <command> [args]
//
// Commands:
//
//	status               decoded status, fault and part registers
//	dump                 all registers in hex
//	apply <profile.yaml> apply a charge profile
//	kick                 reset the I2C watchdog
//	charge on|off        enable or disable charging
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"bq2429x-go/drivers/bq2429x"
	"bq2429x-go/drivers/bq2429x/periphi2c"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bq2429xctl:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bq2429xctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	busName := fs.String("bus", "", "I2C bus name (default: first available)")
	addr := fs.Uint("addr", bq2429x.Address, "7-bit device address")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return fmt.Errorf("open i2c bus %q: %w", *busName, err)
	}
	defer bus.Close()
	log.Debug("bus opened", "bus", bus.String(), "addr", fmt.Sprintf("%#02x", *addr))

	d := bq2429x.New(periphi2c.New(bus, uint16(*addr)))
	return execute(d, fs.Args(), stdout, log)
}
