// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, 17, cfg.Register.DataPin)
	assert.Equal(t, 21, cfg.Register.ShiftPin)
	assert.Equal(t, 27, cfg.Register.LatchPin)
	assert.Equal(t, 4, cfg.Register.Digits)
	assert.Equal(t, "10-00080253aa82", cfg.Sensor.Device)
	assert.Equal(t, ".sqlite.db", cfg.Database)
	assert.Equal(t, "txt", cfg.Output.Format)
	assert.Equal(t, time.Second, cfg.Poll.Backoff)
	assert.Equal(t, 0, cfg.Poll.Count)
	require.NoError(t, Validate(cfg))
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermoseg.yaml")
	content := `
daemon:
  address: raspberrypi.local
  port: "9999"
register:
  digits: 8
sensor:
  device: 28-0000071b2c3d
poll:
  count: 10
  schedule: "*/5 * * * *"
  backoff: 250ms
output:
  format: csv
  display: terminal
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "raspberrypi.local", cfg.Daemon.Address)
	assert.Equal(t, "9999", cfg.Daemon.Port)
	assert.Equal(t, 8, cfg.Register.Digits)
	assert.Equal(t, 17, cfg.Register.DataPin, "unset keys keep their default")
	assert.Equal(t, "28-0000071b2c3d", cfg.Sensor.Device)
	assert.Equal(t, 10, cfg.Poll.Count)
	assert.Equal(t, 250*time.Millisecond, cfg.Poll.Backoff)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "terminal", cfg.Output.Display)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("register: [1, 2"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("THERMOSEG_ADDRESS", "10.0.0.2")
	t.Setenv("THERMOSEG_DATABASE", "/var/lib/thermoseg.db")
	t.Setenv("THERMOSEG_COUNT", "3")
	t.Setenv("THERMOSEG_FORMAT", "csv")
	t.Setenv("THERMOSEG_TRACER_ENABLED", "true")
	t.Setenv("THERMOSEG_TRACER_EXPORTER", "stdout")

	cfg := Defaults()
	ApplyEnvOverrides(cfg)
	assert.Equal(t, "10.0.0.2", cfg.Daemon.Address)
	assert.Equal(t, "/var/lib/thermoseg.db", cfg.Database)
	assert.Equal(t, 3, cfg.Poll.Count)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Tracer.Enabled)
	assert.Equal(t, "stdout", cfg.Tracer.Exporter)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"pin range", func(c *Config) { c.Register.DataPin = 54 }, "register.data_pin must be 0-53, got 54"},
		{"distinct pins", func(c *Config) { c.Register.LatchPin = 21 }, "register pins must be distinct"},
		{"digits", func(c *Config) { c.Register.Digits = 0 }, "register.digits must be 1-8, got 0"},
		{"format", func(c *Config) { c.Output.Format = "xml" }, `output.format must be txt or csv, got "xml"`},
		{"display", func(c *Config) { c.Output.Display = "lcd" }, `output.display must be register or terminal, got "lcd"`},
		{"backend", func(c *Config) { c.Backend = "firmata" }, `backend must be pigpio or local, got "firmata"`},
		{"device", func(c *Config) { c.Sensor.Device = "" }, "sensor.device is required"},
		{"device path", func(c *Config) { c.Sensor.Device = "../x" }, `sensor.device must be a device id, got "../x"`},
		{"count", func(c *Config) { c.Poll.Count = -1 }, "poll.count must be >= 0"},
		{"database", func(c *Config) { c.Database = "" }, "database is required"},
		{"exporter", func(c *Config) { c.Tracer.Exporter = "otlp" }, `tracer.exporter must be noop or stdout, got "otlp"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := Validate(cfg)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
			assert.Contains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	cfg := Defaults()
	cfg.Poll.Schedule = "every second"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll.schedule")
}

func TestValidateAccumulates(t *testing.T) {
	cfg := Defaults()
	cfg.Register.Digits = 9
	cfg.Output.Format = "xml"
	var ve *ValidationError
	require.ErrorAs(t, Validate(cfg), &ve)
	assert.Len(t, ve.Errors, 2)
}
