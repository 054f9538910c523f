// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package localgpio drives the GPIOs and reads the files of the board the
// program runs on, without a pigpio daemon.
//
// Host implements the same contracts as *pigpio.Conn for the hc595 and
// w1therm packages, so the same program can run on the Raspberry Pi itself.
package localgpio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/GermanBionicSystems/thermoseg/pigpio"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Host is the local board.
type Host struct {
	byName func(string) gpio.PinIO
	all    func() []gpio.PinIO

	mu   sync.Mutex
	pins map[int]gpio.PinIO
}

// New initializes the periph host drivers and returns the local board.
func New() (*Host, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("localgpio: %w", err)
	}
	return newHost(gpioreg.ByName, gpioreg.All), nil
}

func newHost(byName func(string) gpio.PinIO, all func() []gpio.PinIO) *Host {
	return &Host{byName: byName, all: all, pins: map[int]gpio.PinIO{}}
}

func (h *Host) String() string {
	return "localgpio"
}

// Ping fails when no GPIO driver registered any pin, e.g. when not running
// on a supported board.
func (h *Host) Ping() error {
	if len(h.all()) == 0 {
		return errors.New("localgpio: no GPIO driver loaded")
	}
	return nil
}

// SetMode configures g as an input or an output. Outputs start low.
func (h *Host) SetMode(g pigpio.GPIO, m pigpio.Mode) error {
	p, err := h.pin(g)
	if err != nil {
		return err
	}
	switch m {
	case pigpio.Input:
		err = p.In(gpio.PullNoChange, gpio.NoEdge)
	case pigpio.Output:
		err = p.Out(gpio.Low)
	default:
		return fmt.Errorf("localgpio: %s: unsupported mode %s", g, m)
	}
	if err != nil {
		return fmt.Errorf("localgpio: %s: %w", g, err)
	}
	return nil
}

// Write drives g to l.
func (h *Host) Write(g pigpio.GPIO, l gpio.Level) error {
	p, err := h.pin(g)
	if err != nil {
		return err
	}
	if err := p.Out(l); err != nil {
		return fmt.Errorf("localgpio: %s: %w", g, err)
	}
	return nil
}

// Read returns the level of g.
func (h *Host) Read(g pigpio.GPIO) (gpio.Level, error) {
	p, err := h.pin(g)
	if err != nil {
		return gpio.Low, err
	}
	return p.Read(), nil
}

// ReadFile reads at most max bytes of the file at path.
func (h *Host) ReadFile(path string, max int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("localgpio: %w", err)
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, int64(max)))
	if err != nil {
		return nil, fmt.Errorf("localgpio: %w", err)
	}
	return b, nil
}

// Halt halts every pin used so far.
func (h *Host) Halt() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var errs []error
	for _, p := range h.pins {
		if err := p.Halt(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Host) pin(g pigpio.GPIO) (gpio.PinIO, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p, ok := h.pins[g.Number()]; ok {
		return p, nil
	}
	p := h.byName(g.String())
	if p == nil {
		return nil, fmt.Errorf("localgpio: %s: no such pin", g)
	}
	h.pins[g.Number()] = p
	return p, nil
}
