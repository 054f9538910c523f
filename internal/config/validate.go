// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// ValidationError accumulates config validation errors.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(v.Errors, "\n  - ")
}

// HasErrors reports whether any validation errors have been recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add records a formatted validation error.
func (v *ValidationError) Add(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural correctness. It returns a *ValidationError
// listing every problem found.
func Validate(cfg *Config) error {
	ve := &ValidationError{}
	validateBackend(cfg, ve)
	validateRegister(cfg, ve)
	validateSensor(cfg, ve)
	validatePoll(cfg, ve)
	validateOutput(cfg, ve)
	validateLogger(cfg, ve)
	if cfg.Database == "" {
		ve.Add("database is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateBackend(cfg *Config, ve *ValidationError) {
	switch cfg.Backend {
	case "pigpio", "local":
	default:
		ve.Add("backend must be pigpio or local, got %q", cfg.Backend)
	}
}

func validateRegister(cfg *Config, ve *ValidationError) {
	r := cfg.Register
	pins := map[string]int{"data_pin": r.DataPin, "shift_pin": r.ShiftPin, "latch_pin": r.LatchPin}
	for _, name := range []string{"data_pin", "shift_pin", "latch_pin"} {
		if p := pins[name]; p < 0 || p > 53 {
			ve.Add("register.%s must be 0-53, got %d", name, p)
		}
	}
	if r.DataPin == r.ShiftPin || r.DataPin == r.LatchPin || r.ShiftPin == r.LatchPin {
		ve.Add("register pins must be distinct")
	}
	if r.Digits < 1 || r.Digits > 8 {
		ve.Add("register.digits must be 1-8, got %d", r.Digits)
	}
}

func validateSensor(cfg *Config, ve *ValidationError) {
	if cfg.Sensor.Device == "" {
		ve.Add("sensor.device is required")
	}
	if strings.ContainsAny(cfg.Sensor.Device, "/\\") {
		ve.Add("sensor.device must be a device id, got %q", cfg.Sensor.Device)
	}
}

func validatePoll(cfg *Config, ve *ValidationError) {
	if cfg.Poll.Count < 0 {
		ve.Add("poll.count must be >= 0")
	}
	if cfg.Poll.Backoff < 0 {
		ve.Add("poll.backoff must be >= 0")
	}
	if _, err := cron.ParseStandard(cfg.Poll.Schedule); err != nil {
		ve.Add("poll.schedule %q: %v", cfg.Poll.Schedule, err)
	}
}

func validateOutput(cfg *Config, ve *ValidationError) {
	switch cfg.Output.Format {
	case "txt", "csv":
	default:
		ve.Add("output.format must be txt or csv, got %q", cfg.Output.Format)
	}
	switch cfg.Output.Display {
	case "register", "terminal":
	default:
		ve.Add("output.display must be register or terminal, got %q", cfg.Output.Display)
	}
}

func validateLogger(cfg *Config, ve *ValidationError) {
	switch strings.ToLower(cfg.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		ve.Add("logger.level must be debug, info, warn or error, got %q", cfg.Logger.Level)
	}
	switch strings.ToLower(cfg.Logger.Format) {
	case "text", "json", "":
	default:
		ve.Add("logger.format must be text or json, got %q", cfg.Logger.Format)
	}
	switch cfg.Tracer.Exporter {
	case "noop", "stdout", "":
	default:
		ve.Add("tracer.exporter must be noop or stdout, got %q", cfg.Tracer.Exporter)
	}
}
