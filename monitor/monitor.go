// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/GermanBionicSystems/thermoseg/internal/logger"
	"github.com/GermanBionicSystems/thermoseg/internal/tracer"
	"github.com/GermanBionicSystems/thermoseg/segment"
	"github.com/GermanBionicSystems/thermoseg/tempdb"
	"github.com/robfig/cron/v3"
)

// DefaultBackoff is the wait before the single retry of a conflicting insert.
const DefaultBackoff = time.Second

// attempts is the number of inserts tried per reading.
const attempts = 2

// Sensor returns the current temperature in degrees Celsius.
//
// *w1therm.Dev implements it.
type Sensor interface {
	Celsius() (float64, error)
}

// Display shows a value.
//
// *hc595.Dev, *segterm.Dev and *segimage.Dev implement it.
type Display interface {
	Display(v any) error
}

// Displays shows a value on every display in order, stopping at the first
// failure.
type Displays []Display

// Display implements Display.
func (d Displays) Display(v any) error {
	for _, x := range d {
		if err := x.Display(v); err != nil {
			return err
		}
	}
	return nil
}

// Recorder persists a reading.
//
// *tempdb.Store implements it.
type Recorder interface {
	Insert(ctx context.Context, celsius float64) (tempdb.Reading, error)
}

// Config is the monitor configuration.
type Config struct {
	Sensor   Sensor
	Display  Display
	Recorder Recorder

	// Out receives one rendered line per persisted reading. nil disables
	// output.
	Out    io.Writer
	Format Format
	// Digits is the display width used to format readings. Defaults to 4.
	Digits int
	// Count is the number of cycles to run, 0 to run until the context is
	// done.
	Count int
	// Schedule paces cycles. Defaults to every second.
	Schedule cron.Schedule
	// Backoff is the wait before retrying a conflicting insert. Defaults to
	// DefaultBackoff.
	Backoff time.Duration
	Logger  *slog.Logger
	// OnError is called with every failed cycle. Returning nil keeps the
	// loop going; by default the error ends Run.
	OnError func(error) error
}

// Monitor runs the poll and persist loop.
type Monitor struct {
	sensor   Sensor
	display  Display
	recorder Recorder
	out      io.Writer
	format   Format
	digits   int
	count    int
	schedule cron.Schedule
	backoff  time.Duration
	log      *slog.Logger
	onError  func(error) error

	state State
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New returns a Monitor.
func New(cfg *Config) (*Monitor, error) {
	if cfg.Sensor == nil {
		return nil, errors.New("monitor: sensor is required")
	}
	if cfg.Display == nil {
		return nil, errors.New("monitor: display is required")
	}
	if cfg.Recorder == nil {
		return nil, errors.New("monitor: recorder is required")
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("monitor: invalid count %d", cfg.Count)
	}
	m := &Monitor{
		sensor:   cfg.Sensor,
		display:  cfg.Display,
		recorder: cfg.Recorder,
		out:      cfg.Out,
		format:   cfg.Format,
		digits:   cfg.Digits,
		count:    cfg.Count,
		schedule: cfg.Schedule,
		backoff:  cfg.Backoff,
		log:      cfg.Logger,
		onError:  cfg.OnError,
		now:      time.Now,
		sleep:    sleep,
	}
	if m.format == "" {
		m.format = TXT
	}
	if _, err := ParseFormat(string(m.format)); err != nil {
		return nil, err
	}
	if m.digits == 0 {
		m.digits = 4
	}
	if m.digits < 0 {
		return nil, fmt.Errorf("monitor: invalid digits %d", m.digits)
	}
	if m.schedule == nil {
		m.schedule = cron.Every(time.Second)
	}
	if m.backoff == 0 {
		m.backoff = DefaultBackoff
	}
	if m.log == nil {
		m.log = logger.Discard()
	}
	return m, nil
}

// State returns the current loop state.
func (m *Monitor) State() State {
	return m.state
}

// Run runs cycles until Count cycles ran or ctx is done.
//
// A failed cycle ends Run unless OnError swallows it. When ctx is done Run
// returns ctx.Err().
func (m *Monitor) Run(ctx context.Context) error {
	defer m.setState(Done)
	for i := 0; m.count == 0 || i < m.count; i++ {
		if i > 0 {
			if err := m.wait(ctx); err != nil {
				return err
			}
		}
		if _, err := m.Cycle(ctx); err != nil {
			if m.onError != nil {
				err = m.onError(err)
			}
			if err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Cycle reads the sensor once, shows the reading, persists it and writes the
// persisted row to Out.
//
// The first failure aborts the cycle: a reading that could not be shown is
// not persisted.
func (m *Monitor) Cycle(ctx context.Context) (tempdb.Reading, error) {
	ctx, span := tracer.StartSpan(ctx, "monitor.cycle")
	defer span.End()
	defer m.setState(Idle)

	r, err := m.cycle(ctx)
	if err != nil {
		tracer.RecordError(span, err)
		return tempdb.Reading{}, err
	}
	span.SetAttributes(tracer.Float64Attr("celsius", r.Temperature), tracer.IntAttr("id", int(r.ID)))
	tracer.SetOK(span)
	return r, nil
}

func (m *Monitor) cycle(ctx context.Context) (tempdb.Reading, error) {
	m.setState(Reading)
	celsius, err := m.sensor.Celsius()
	if err != nil {
		return tempdb.Reading{}, fmt.Errorf("monitor: read: %w", err)
	}

	m.setState(Formatting)
	text := segment.FormatFloat(celsius, m.digits)
	m.log.Debug("reading", "celsius", celsius, "text", text)

	m.setState(Displaying)
	if err := m.display.Display(text); err != nil {
		return tempdb.Reading{}, fmt.Errorf("monitor: display %q: %w", text, err)
	}

	m.setState(Persisting)
	r, err := m.persist(ctx, celsius)
	if err != nil {
		return tempdb.Reading{}, fmt.Errorf("monitor: persist: %w", err)
	}
	if m.out != nil {
		if _, err := fmt.Fprintln(m.out, m.format.Render(r)); err != nil {
			return r, fmt.Errorf("monitor: output: %w", err)
		}
	}
	return r, nil
}

// persist inserts celsius, retrying once after the backoff when the store
// already holds a reading for the current second.
func (m *Monitor) persist(ctx context.Context, celsius float64) (tempdb.Reading, error) {
	for i := 1; ; i++ {
		r, err := m.recorder.Insert(ctx, celsius)
		if err == nil || !errors.Is(err, tempdb.ErrConflict) || i == attempts {
			return r, err
		}
		m.log.Warn("insert conflict, retrying", "backoff", m.backoff, "err", err)
		if err := m.sleep(ctx, m.backoff); err != nil {
			return tempdb.Reading{}, err
		}
	}
}

func (m *Monitor) wait(ctx context.Context) error {
	now := m.now()
	return m.sleep(ctx, m.schedule.Next(now).Sub(now))
}

func (m *Monitor) setState(s State) {
	if m.state == s {
		return
	}
	m.log.Debug("state", "from", m.state, "to", s)
	m.state = s
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
