// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hc595 drives a chain of 74HC595 serial shift registers by bit
// banging three GPIOs, one register per seven-segment digit.
//
// Bits are presented on DS and clocked in on the rising edge of SH_CP, most
// significant bit first. Once every register is loaded, a rising edge on
// ST_CP copies the shift registers to the outputs at once. The first byte
// pushed ends up in the register furthest from the input, i.e. the leftmost
// digit.
//
// # Datasheet
//
// https://www.nexperia.com/product/74HC595D
//
// There's a nice tutorial on the device here:
//
// https://docs.arduino.cc/tutorials/communication/guide-to-shift-out/
package hc595

import (
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/thermoseg/pigpio"
	"github.com/GermanBionicSystems/thermoseg/segment"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const devName = "74HC595"

// Dev is a chain of 74HC595 registers. Create one with Configure.
type Dev struct {
	mu     sync.Mutex
	c      Controller
	data   pigpio.GPIO
	shift  pigpio.GPIO
	latch  pigpio.GPIO
	digits int
}

// Digits returns the number of registers in the chain.
func (d *Dev) Digits() int {
	return d.digits
}

func (d *Dev) String() string {
	return devName
}

// Halt blanks the display.
func (d *Dev) Halt() error {
	return d.Clear()
}

// Shift clocks the level present on DS into the first register.
func (d *Dev) Shift() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.strobe(d.shift)
}

// Save latches the shift registers to the outputs.
func (d *Dev) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.strobe(d.latch)
}

// PushByte shifts b in, most significant bit first. The outputs don't change
// until Save.
func (d *Dev) PushByte(b byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pushByte(b)
}

// PushBytes shifts exactly one byte per register, in order. The outputs
// don't change until Save.
func (d *Dev) PushBytes(b []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pushBytes(b)
}

// Clear blanks every digit and latches.
func (d *Dev) Clear() error {
	b := make([]byte, d.digits)
	for i := range b {
		b[i] = segment.Blank
	}
	return d.Write(b)
}

// Write pushes one segment code per digit and latches them.
func (d *Dev) Write(b []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.pushBytes(b); err != nil {
		return err
	}
	return d.strobe(d.latch)
}

// Display shows v, right aligned. See segment.EncodeValue for how values are
// rendered. Nothing is sent if v doesn't fit.
func (d *Dev) Display(v any) error {
	b, err := segment.EncodeValue(v, d.digits)
	if err != nil {
		return fmt.Errorf("hc595: %w", err)
	}
	return d.Write(b)
}

func (d *Dev) pushBytes(b []byte) error {
	if len(b) != d.digits {
		return fmt.Errorf("hc595: got %d bytes for %d digits", len(b), d.digits)
	}
	for _, v := range b {
		if err := d.pushByte(v); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) pushByte(b byte) error {
	for i := 7; i >= 0; i-- {
		if err := d.write(d.data, b&(1<<i) != 0); err != nil {
			return err
		}
		if err := d.strobe(d.shift); err != nil {
			return err
		}
	}
	return nil
}

// strobe produces a rising edge on g.
func (d *Dev) strobe(g pigpio.GPIO) error {
	if err := d.write(g, gpio.Low); err != nil {
		return err
	}
	return d.write(g, gpio.High)
}

func (d *Dev) write(g pigpio.GPIO, l gpio.Level) error {
	if err := d.c.Write(g, l); err != nil {
		return fmt.Errorf("hc595: %w", err)
	}
	return nil
}

var _ conn.Resource = &Dev{}
