// Package profile loads charge profiles from YAML and applies them to a
// BQ2429x charger. Profiles are written in physical units; absent keys leave
// the device untouched.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"bq2429x-go/drivers/bq2429x"
)

var (
	ErrOutOfRange = errors.New("profile: value out of range")
)

// Profile is one charge configuration. Nil fields are not applied.
type Profile struct {
	InputVoltageLimit_mV  *int32 `yaml:"input_voltage_limit_mv"`
	InputCurrentLimit_mA  *int32 `yaml:"input_current_limit_ma"`
	MinSystemVoltage_mV   *int32 `yaml:"min_system_voltage_mv"`
	ChargeCurrent_mA      *int32 `yaml:"charge_current_ma"`
	PrechargeCurrent_mA   *int32 `yaml:"precharge_current_ma"`
	TerminationCurrent_mA *int32 `yaml:"termination_current_ma"`
	ChargeVoltage_mV      *int32 `yaml:"charge_voltage_mv"`
	BoostVoltage_mV       *int32 `yaml:"boost_voltage_mv"`

	// Watchdog of 0 disables the I2C watchdog.
	Watchdog    *time.Duration `yaml:"watchdog"`
	ChargeTimer *time.Duration `yaml:"charge_timer"`

	HiZ         *bool `yaml:"hiz"`
	Charging    *bool `yaml:"charging"`
	Termination *bool `yaml:"termination"`
	SafetyTimer *bool `yaml:"safety_timer"`
}

// Charger is the subset of *bq2429x.Device a profile drives.
type Charger interface {
	SetHiZ(on bool) error
	SetInputVoltageLimit(code uint8) error
	SetInputCurrentLimit(code uint8) error
	SetMinSystemVoltage(code uint8) error
	SetChargeCurrent(code uint8) error
	SetPrechargeCurrent(code uint8) error
	SetTerminationCurrent(code uint8) error
	SetChargeVoltage(code uint8) error
	SetBoostVoltage(code uint8) error
	SetWatchdogTimer(code uint8) error
	SetChargeTimer(code uint8) error
	EnableTermination(on bool) error
	EnableSafetyTimer(on bool) error
	EnableCharging(on bool) error
}

var _ Charger = (*bq2429x.Device)(nil)

// Load reads and validates a profile file.
func Load(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a YAML profile. Unknown keys are rejected.
func Parse(b []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("profile: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func checkRange(key string, v *int32, r bq2429x.Range) error {
	if v == nil || r.Contains(*v) {
		return nil
	}
	return fmt.Errorf("%w: %s=%d (want %d..%d)", ErrOutOfRange, key, *v, r.Min, r.Max)
}

// Validate checks every set value against the device's encodable range.
// Values inside a range but between steps are floored by Apply.
func (p Profile) Validate() error {
	checks := []struct {
		key string
		v   *int32
		r   bq2429x.Range
	}{
		{"input_voltage_limit_mv", p.InputVoltageLimit_mV, bq2429x.InputVoltageLimitRange},
		{"input_current_limit_ma", p.InputCurrentLimit_mA, bq2429x.InputCurrentLimitRange},
		{"min_system_voltage_mv", p.MinSystemVoltage_mV, bq2429x.MinSystemVoltageRange},
		{"charge_current_ma", p.ChargeCurrent_mA, bq2429x.ChargeCurrentRange},
		{"precharge_current_ma", p.PrechargeCurrent_mA, bq2429x.PrechargeCurrentRange},
		{"termination_current_ma", p.TerminationCurrent_mA, bq2429x.TerminationCurrentRange},
		{"charge_voltage_mv", p.ChargeVoltage_mV, bq2429x.ChargeVoltageRange},
		{"boost_voltage_mv", p.BoostVoltage_mV, bq2429x.BoostVoltageRange},
	}
	for _, c := range checks {
		if err := checkRange(c.key, c.v, c.r); err != nil {
			return err
		}
	}
	if w := p.Watchdog; w != nil && *w != 0 && (*w < bq2429x.WatchdogTimeout(1) || *w > bq2429x.WatchdogTimeout(3)) {
		return fmt.Errorf("%w: watchdog=%s (want 0 or %s..%s)", ErrOutOfRange, *w,
			bq2429x.WatchdogTimeout(1), bq2429x.WatchdogTimeout(3))
	}
	if ct := p.ChargeTimer; ct != nil && (*ct < bq2429x.ChargeTimerDuration(0) || *ct > bq2429x.ChargeTimerDuration(3)) {
		return fmt.Errorf("%w: charge_timer=%s (want %s..%s)", ErrOutOfRange, *ct,
			bq2429x.ChargeTimerDuration(0), bq2429x.ChargeTimerDuration(3))
	}
	return nil
}

type step struct {
	key  string
	code uint8
	set  func(code uint8) error
}

func flagStep(key string, on *bool, set func(bool) error) step {
	var code uint8
	if *on {
		code = 1
	}
	return step{key, code, func(c uint8) error { return set(c != 0) }}
}

// steps lists the writes for p in application order: watchdog first so a
// timeout cannot reset the registers mid-way, charge enable last.
func (p Profile) steps(c Charger) []step {
	var s []step
	if p.Watchdog != nil {
		s = append(s, step{"watchdog", bq2429x.WatchdogTimerCode(*p.Watchdog), c.SetWatchdogTimer})
	}
	if p.HiZ != nil {
		s = append(s, flagStep("hiz", p.HiZ, c.SetHiZ))
	}
	if v := p.InputVoltageLimit_mV; v != nil {
		s = append(s, step{"input_voltage_limit_mv", bq2429x.InputVoltageLimitCode(*v), c.SetInputVoltageLimit})
	}
	if v := p.InputCurrentLimit_mA; v != nil {
		s = append(s, step{"input_current_limit_ma", bq2429x.InputCurrentLimitCode(*v), c.SetInputCurrentLimit})
	}
	if v := p.MinSystemVoltage_mV; v != nil {
		s = append(s, step{"min_system_voltage_mv", bq2429x.MinSystemVoltageCode(*v), c.SetMinSystemVoltage})
	}
	if v := p.ChargeCurrent_mA; v != nil {
		s = append(s, step{"charge_current_ma", bq2429x.ChargeCurrentCode(*v), c.SetChargeCurrent})
	}
	if v := p.PrechargeCurrent_mA; v != nil {
		s = append(s, step{"precharge_current_ma", bq2429x.PrechargeCurrentCode(*v), c.SetPrechargeCurrent})
	}
	if v := p.TerminationCurrent_mA; v != nil {
		s = append(s, step{"termination_current_ma", bq2429x.TerminationCurrentCode(*v), c.SetTerminationCurrent})
	}
	if v := p.ChargeVoltage_mV; v != nil {
		s = append(s, step{"charge_voltage_mv", bq2429x.ChargeVoltageCode(*v), c.SetChargeVoltage})
	}
	if v := p.BoostVoltage_mV; v != nil {
		s = append(s, step{"boost_voltage_mv", bq2429x.BoostVoltageCode(*v), c.SetBoostVoltage})
	}
	if p.ChargeTimer != nil {
		s = append(s, step{"charge_timer", bq2429x.ChargeTimerCode(*p.ChargeTimer), c.SetChargeTimer})
	}
	if p.Termination != nil {
		s = append(s, flagStep("termination", p.Termination, c.EnableTermination))
	}
	if p.SafetyTimer != nil {
		s = append(s, flagStep("safety_timer", p.SafetyTimer, c.EnableSafetyTimer))
	}
	if p.Charging != nil {
		s = append(s, flagStep("charging", p.Charging, c.EnableCharging))
	}
	return s
}

// Apply validates p and writes each set field to c. It stops at the first
// failed write; earlier writes stay in effect.
func Apply(c Charger, p Profile, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	if err := p.Validate(); err != nil {
		return err
	}
	for _, s := range p.steps(c) {
		if err := s.set(s.code); err != nil {
			log.Error("profile write failed", "key", s.key, "code", s.code, "err", err)
			return fmt.Errorf("profile: %s: %w", s.key, err)
		}
		log.Debug("profile write", "key", s.key, "code", s.code)
	}
	return nil
}
