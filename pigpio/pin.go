// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// ErrNotImplemented is returned by the gpio.PinOut methods the daemon session
// doesn't back.
var ErrNotImplemented = errors.New("pigpio: not implemented")

// Pin is a GPIO of a remote board, usable wherever periph expects a
// gpio.PinOut.
type Pin struct {
	c *Conn
	g GPIO
}

// GPIO returns the pin number.
func (p *Pin) GPIO() GPIO {
	return p.g
}

// Halt implements conn.Resource.
func (p *Pin) Halt() error {
	return nil
}

// Name returns the name of the GPIO pin.
func (p *Pin) Name() string {
	return p.g.String()
}

// Number returns the number of the GPIO pin.
func (p *Pin) Number() int {
	return p.g.Number()
}

// Deprecated: returns the current mode as reported by the daemon.
func (p *Pin) Function() string {
	m, err := p.c.Mode(p.g)
	if err != nil {
		return ""
	}
	return m.String()
}

// Out drives the pin. The daemon switches the pin to output on the first
// write.
func (p *Pin) Out(l gpio.Level) error {
	return p.c.Write(p.g, l)
}

// Not implemented.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrNotImplemented
}

func (p *Pin) String() string {
	return p.c.String() + "/" + p.g.String()
}

var _ gpio.PinOut = &Pin{}
