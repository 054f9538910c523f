// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/GermanBionicSystems/thermoseg/internal/config"
)

// options are the command line flags. Flags explicitly set override the
// configuration file.
type options struct {
	config  string
	history int

	address   string
	port      string
	backend   string
	data      int
	shift     int
	latch     int
	digits    int
	device    string
	dir       string
	slave     bool
	database  string
	count     int
	schedule  string
	backoff   time.Duration
	keepGoing bool
	format    string
	display   string
	snapshot  string
	verbose   bool

	set map[string]bool
}

func parseFlags(args []string, w io.Writer) (*options, error) {
	o := &options{}
	d := config.Defaults()
	fs := flag.NewFlagSet("thermoseg", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "usage: thermoseg [flags] [address]\n\n")
		fmt.Fprintf(w, "Shows a one-wire thermometer on a 74HC595 seven-segment display driven through pigpiod\nand records every reading in SQLite.\n\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.config, "config", "thermoseg.yaml", "configuration file; missing is fine")
	fs.IntVar(&o.history, "history", 0, "print the last N readings and exit")

	fs.StringVar(&o.address, "address", "", "pigpiod host, defaults to $PIGPIO_ADDR or localhost")
	fs.StringVar(&o.port, "port", "", "pigpiod port, defaults to $PIGPIO_PORT or 8888")
	fs.StringVar(&o.backend, "backend", d.Backend, "GPIO backend: pigpio or local")
	fs.IntVar(&o.data, "data", d.Register.DataPin, "GPIO wired to DS (serial data)")
	fs.IntVar(&o.data, "input", d.Register.DataPin, "alias for -data")
	fs.IntVar(&o.shift, "shift", d.Register.ShiftPin, "GPIO wired to SH_CP (shift clock)")
	fs.IntVar(&o.latch, "latch", d.Register.LatchPin, "GPIO wired to ST_CP (latch clock)")
	fs.IntVar(&o.digits, "digits", d.Register.Digits, "number of display digits")
	fs.StringVar(&o.device, "device", d.Sensor.Device, "one-wire sensor id")
	fs.StringVar(&o.dir, "dir", d.Sensor.Dir, "one-wire devices directory")
	fs.BoolVar(&o.slave, "w1-slave", false, "read the w1_slave file instead of temperature")
	fs.StringVar(&o.database, "database", d.Database, "SQLite database file")
	fs.StringVar(&o.database, "url", d.Database, "alias for -database")
	fs.IntVar(&o.count, "count", d.Poll.Count, "number of readings, 0 for no limit")
	fs.StringVar(&o.schedule, "schedule", d.Poll.Schedule, "cron schedule between readings")
	fs.DurationVar(&o.backoff, "backoff", d.Poll.Backoff, "wait before retrying a reading stored in the same second")
	fs.BoolVar(&o.keepGoing, "keep-going", false, "log failed readings and continue")
	fs.StringVar(&o.format, "format", d.Output.Format, "output format: txt or csv")
	fs.StringVar(&o.display, "display", d.Output.Display, "display: register or terminal")
	fs.StringVar(&o.snapshot, "snapshot", "", "also render the display to this PNG file")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		if o.address != "" {
			return nil, fmt.Errorf("address given both as -address and argument")
		}
		o.address = fs.Arg(0)
	default:
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args()[1:])
	}
	if o.history < 0 {
		return nil, fmt.Errorf("-history must be >= 0")
	}
	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	if o.address != "" {
		o.set["address"] = true
	}
	return o, nil
}

// apply copies the flags that were set onto cfg.
func (o *options) apply(cfg *config.Config) {
	if o.set["address"] {
		cfg.Daemon.Address = o.address
	}
	if o.set["port"] {
		cfg.Daemon.Port = o.port
	}
	if o.set["backend"] {
		cfg.Backend = o.backend
	}
	if o.set["data"] || o.set["input"] {
		cfg.Register.DataPin = o.data
	}
	if o.set["shift"] {
		cfg.Register.ShiftPin = o.shift
	}
	if o.set["latch"] {
		cfg.Register.LatchPin = o.latch
	}
	if o.set["digits"] {
		cfg.Register.Digits = o.digits
	}
	if o.set["device"] {
		cfg.Sensor.Device = o.device
	}
	if o.set["dir"] {
		cfg.Sensor.Dir = o.dir
	}
	if o.set["w1-slave"] {
		cfg.Sensor.Slave = o.slave
	}
	if o.set["database"] || o.set["url"] {
		cfg.Database = o.database
	}
	if o.set["count"] {
		cfg.Poll.Count = o.count
	}
	if o.set["schedule"] {
		cfg.Poll.Schedule = o.schedule
	}
	if o.set["backoff"] {
		cfg.Poll.Backoff = o.backoff
	}
	if o.set["keep-going"] {
		cfg.Poll.KeepGoing = o.keepGoing
	}
	if o.set["format"] {
		cfg.Output.Format = o.format
	}
	if o.set["display"] {
		cfg.Output.Display = o.display
	}
	if o.set["snapshot"] {
		cfg.Output.Snapshot = o.snapshot
	}
	if o.verbose {
		cfg.Logger.Level = "debug"
	}
}
