// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hc595

import (
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/thermoseg/pigpio"
	"periph.io/x/conn/v3/gpio"
)

// MaxDigits is the longest chain supported.
const MaxDigits = 8

// Controller drives the GPIOs wired to the register. *pigpio.Conn implements
// it.
//
// If the Controller also has a Ping() error method, Build calls it first to
// verify the session is live.
type Controller interface {
	SetMode(g pigpio.GPIO, m pigpio.Mode) error
	Write(g pigpio.GPIO, l gpio.Level) error
}

type pinger interface {
	Ping() error
}

// Configure starts the configuration of a chain of digits registers.
//
// The pins are then given in a fixed order and only a fully configured chain
// can be built:
//
//	dev, err := hc595.Configure(4).
//		Conn(c).
//		Data(pigpio.MustGPIO(17)).
//		ShiftClock(pigpio.MustGPIO(21)).
//		LatchClock(pigpio.MustGPIO(27)).
//		Build()
func Configure(digits int) Unconfigured {
	return Unconfigured{digits: digits}
}

// Unconfigured is a chain with no controller yet.
type Unconfigured struct {
	digits int
}

// Conn sets the controller driving the pins.
func (u Unconfigured) Conn(c Controller) WithConn {
	return WithConn{digits: u.digits, c: c}
}

// WithConn is a chain with a controller but no pins.
type WithConn struct {
	digits int
	c      Controller
}

// Data sets the serial data input pin (DS).
func (w WithConn) Data(g pigpio.GPIO) WithData {
	return WithData{digits: w.digits, c: w.c, data: g}
}

// WithData is a chain missing both clocks.
type WithData struct {
	digits int
	c      Controller
	data   pigpio.GPIO
}

// ShiftClock sets the shift register clock pin (SH_CP).
func (w WithData) ShiftClock(g pigpio.GPIO) WithShiftClock {
	return WithShiftClock{digits: w.digits, c: w.c, data: w.data, shift: g}
}

// WithShiftClock is a chain missing the latch clock.
type WithShiftClock struct {
	digits int
	c      Controller
	data   pigpio.GPIO
	shift  pigpio.GPIO
}

// LatchClock sets the storage register clock pin (ST_CP).
func (w WithShiftClock) LatchClock(g pigpio.GPIO) Config {
	return Config{digits: w.digits, c: w.c, data: w.data, shift: w.shift, latch: g}
}

// Config is a fully configured chain.
type Config struct {
	digits int
	c      Controller
	data   pigpio.GPIO
	shift  pigpio.GPIO
	latch  pigpio.GPIO
}

func (c Config) String() string {
	return fmt.Sprintf("%s{digits:%d DS:%s SH_CP:%s ST_CP:%s}", devName, c.digits, c.data, c.shift, c.latch)
}

// Build verifies the controller and switches DS, SH_CP and ST_CP to output, in
// that order. The first failure is returned and no device is created.
func (c Config) Build() (*Dev, error) {
	if c.digits < 1 || c.digits > MaxDigits {
		return nil, fmt.Errorf("hc595: invalid number of digits %d, expected 1 to %d", c.digits, MaxDigits)
	}
	if c.c == nil {
		return nil, errors.New("hc595: no controller")
	}
	if c.data == c.shift || c.data == c.latch || c.shift == c.latch {
		return nil, fmt.Errorf("hc595: pins must be distinct: %s", c)
	}
	if p, ok := c.c.(pinger); ok {
		if err := p.Ping(); err != nil {
			return nil, fmt.Errorf("hc595: controller not ready: %w", err)
		}
	}
	for _, g := range []pigpio.GPIO{c.data, c.shift, c.latch} {
		if err := c.c.SetMode(g, pigpio.Output); err != nil {
			return nil, fmt.Errorf("hc595: configuring %s: %w", g, err)
		}
	}
	return &Dev{c: c.c, data: c.data, shift: c.shift, latch: c.latch, digits: c.digits}, nil
}
