// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// thermoseg reads a one-wire thermometer through pigpiod, shows the
// temperature on a 74HC595 driven seven-segment display and records every
// reading in a SQLite database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GermanBionicSystems/thermoseg/hc595"
	"github.com/GermanBionicSystems/thermoseg/internal/config"
	"github.com/GermanBionicSystems/thermoseg/internal/logger"
	"github.com/GermanBionicSystems/thermoseg/internal/tracer"
	"github.com/GermanBionicSystems/thermoseg/localgpio"
	"github.com/GermanBionicSystems/thermoseg/monitor"
	"github.com/GermanBionicSystems/thermoseg/pigpio"
	"github.com/GermanBionicSystems/thermoseg/segimage"
	"github.com/GermanBionicSystems/thermoseg/segterm"
	"github.com/GermanBionicSystems/thermoseg/tempdb"
	"github.com/GermanBionicSystems/thermoseg/w1therm"
	"github.com/robfig/cron/v3"
)

// backend drives the register pins and reads the sensor file.
type backend interface {
	hc595.Controller
	w1therm.FileReader
}

func main() {
	if err := mainImpl(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "thermoseg: %s\n", err)
		os.Exit(1)
	}
}

func mainImpl(args []string, stdout io.Writer) error {
	o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	o.apply(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := tracer.Setup(ctx, cfg.Tracer, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("tracer shutdown", "err", err)
		}
	}()

	store, err := tempdb.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if o.history > 0 {
		return printHistory(ctx, store, o.history, cfg.Output.Format, stdout)
	}
	return run(ctx, cfg, store, log, stdout)
}

func run(ctx context.Context, cfg *config.Config, store *tempdb.Store, log *slog.Logger, stdout io.Writer) error {
	b, closeBackend, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeBackend()

	var displays monitor.Displays
	switch cfg.Output.Display {
	case "register":
		r := cfg.Register
		dev, err := hc595.Configure(r.Digits).
			Conn(b).
			Data(pigpio.MustGPIO(r.DataPin)).
			ShiftClock(pigpio.MustGPIO(r.ShiftPin)).
			LatchClock(pigpio.MustGPIO(r.LatchPin)).
			Build()
		if err != nil {
			return err
		}
		defer halt(log, dev)
		displays = append(displays, dev)
		log.Info("display", "dev", dev, "data", r.DataPin, "shift", r.ShiftPin, "latch", r.LatchPin)
	case "terminal":
		dev := segterm.New(&segterm.Opts{Digits: cfg.Register.Digits})
		defer halt(log, dev)
		displays = append(displays, dev)
	}
	if cfg.Output.Snapshot != "" {
		dev, err := segimage.New(cfg.Output.Snapshot, &segimage.Opts{Digits: cfg.Register.Digits})
		if err != nil {
			return err
		}
		displays = append(displays, dev)
		log.Info("snapshot", "dev", dev)
	}

	sensor, err := w1therm.New(b, cfg.Sensor.Device, &w1therm.Opts{Dir: cfg.Sensor.Dir, Slave: cfg.Sensor.Slave})
	if err != nil {
		return err
	}
	defer sensor.Halt()
	log.Info("sensor", "dev", sensor, "family", sensor.Family(), "path", sensor.Path())

	schedule, err := cron.ParseStandard(cfg.Poll.Schedule)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", cfg.Poll.Schedule, err)
	}
	format, err := monitor.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	mcfg := &monitor.Config{
		Sensor:   sensor,
		Display:  displays,
		Recorder: store,
		Out:      stdout,
		Format:   format,
		Digits:   cfg.Register.Digits,
		Count:    cfg.Poll.Count,
		Schedule: schedule,
		Backoff:  cfg.Poll.Backoff,
		Logger:   log,
	}
	if cfg.Poll.KeepGoing {
		mcfg.OnError = func(err error) error {
			log.Error("reading failed", "err", err)
			return nil
		}
	}
	m, err := monitor.New(mcfg)
	if err != nil {
		return err
	}
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (backend, func(), error) {
	if cfg.Backend == "local" {
		h, err := localgpio.New()
		if err != nil {
			return nil, nil, err
		}
		return h, func() { halt(log, h) }, nil
	}
	c, err := pigpio.DialContext(ctx, cfg.Daemon.Address, cfg.Daemon.Port)
	if err != nil {
		return nil, nil, err
	}
	if v, err := c.Version(); err == nil {
		hw, _ := c.HardwareRevision()
		log.Info("connected", "daemon", c, "version", v, "hardware", fmt.Sprintf("%x", hw))
	}
	return c, func() {
		if err := c.Close(); err != nil {
			log.Warn("close", "daemon", c, "err", err)
		}
	}, nil
}

func printHistory(ctx context.Context, store *tempdb.Store, n int, format string, w io.Writer) error {
	f, err := monitor.ParseFormat(format)
	if err != nil {
		return err
	}
	readings, err := store.Latest(ctx, n)
	if err != nil {
		return err
	}
	for _, r := range readings {
		if _, err := fmt.Fprintln(w, f.Render(r)); err != nil {
			return err
		}
	}
	return nil
}

func halt(log *slog.Logger, h interface {
	Halt() error
	String() string
}) {
	if err := h.Halt(); err != nil {
		log.Warn("halt", "dev", h, "err", err)
	}
}
