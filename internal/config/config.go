// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the thermoseg configuration file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Daemon   DaemonConfig   `yaml:"daemon"`
	Backend  string         `yaml:"backend"` // "pigpio" or "local"
	Register RegisterConfig `yaml:"register"`
	Sensor   SensorConfig   `yaml:"sensor"`
	Database string         `yaml:"database"`
	Poll     PollConfig     `yaml:"poll"`
	Output   OutputConfig   `yaml:"output"`
	Logger   LoggerConfig   `yaml:"logger"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// DaemonConfig locates pigpiod. Empty values fall back to PIGPIO_ADDR and
// PIGPIO_PORT, then to localhost:8888.
type DaemonConfig struct {
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

// RegisterConfig describes the 74HC595 chain wiring.
type RegisterConfig struct {
	DataPin  int `yaml:"data_pin"`
	ShiftPin int `yaml:"shift_pin"`
	LatchPin int `yaml:"latch_pin"`
	Digits   int `yaml:"digits"`
}

// SensorConfig identifies the one-wire probe.
type SensorConfig struct {
	Device string `yaml:"device"`
	Dir    string `yaml:"dir"`
	// Slave reads the raw w1_slave file, for kernels without the
	// temperature attribute.
	Slave bool `yaml:"w1_slave"`
}

// PollConfig paces the monitor loop.
type PollConfig struct {
	Count     int           `yaml:"count"`    // 0 = forever
	Schedule  string        `yaml:"schedule"` // cron expression or "@every 1s"
	Backoff   time.Duration `yaml:"backoff"`
	KeepGoing bool          `yaml:"keep_going"`
}

// OutputConfig selects how readings are shown.
type OutputConfig struct {
	Format   string `yaml:"format"`   // "txt" or "csv"
	Display  string `yaml:"display"`  // "register" or "terminal"
	Snapshot string `yaml:"snapshot"` // PNG path, empty to disable
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// TracerConfig holds OpenTelemetry settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// Defaults returns a Config matching the reference wiring: DS on GPIO17,
// SH_CP on GPIO21, ST_CP on GPIO27 and a 4 digits display.
func Defaults() *Config {
	return &Config{
		Backend: "pigpio",
		Register: RegisterConfig{
			DataPin:  17,
			ShiftPin: 21,
			LatchPin: 27,
			Digits:   4,
		},
		Sensor: SensorConfig{
			Device: "10-00080253aa82",
			Dir:    "/sys/bus/w1/devices",
		},
		Database: ".sqlite.db",
		Poll: PollConfig{
			Schedule: "@every 1s",
			Backoff:  time.Second,
		},
		Output: OutputConfig{
			Format:  "txt",
			Display: "register",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Exporter: "noop",
		},
	}
}

// Load reads the YAML file at path over Defaults, then applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	ApplyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides overrides cfg with the THERMOSEG_* environment variables.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("THERMOSEG_ADDRESS"); v != "" {
		cfg.Daemon.Address = v
	}
	if v := os.Getenv("THERMOSEG_PORT"); v != "" {
		cfg.Daemon.Port = v
	}
	if v := os.Getenv("THERMOSEG_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("THERMOSEG_DEVICE"); v != "" {
		cfg.Sensor.Device = v
	}
	if v := os.Getenv("THERMOSEG_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("THERMOSEG_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.Count = n
		}
	}
	if v := os.Getenv("THERMOSEG_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("THERMOSEG_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("THERMOSEG_TRACER_ENABLED"); v == "true" {
		cfg.Tracer.Enabled = true
	}
	if v := os.Getenv("THERMOSEG_TRACER_EXPORTER"); v != "" {
		cfg.Tracer.Exporter = v
	}
}
