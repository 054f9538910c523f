// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segterm emulates a seven-segment display on the terminal using ANSI
// color codes.
//
// Useful while you are waiting for your 74HC595 and LED modules to come by
// mail, or to watch a remote display from an SSH session.
package segterm

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/GermanBionicSystems/thermoseg/segment"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// Rows is the height of a rendered frame, in lines.
const Rows = 5

// Opts represents the options available for this display.
type Opts struct {
	// Digits is the number of positions. Defaults to 4.
	Digits int
	// On and Off are the colors of lit and unlit segments. Default to red and
	// black.
	On, Off color.NRGBA
	// Palette maps colors to terminal codes. Defaults to ansi256.Default.
	Palette *ansi256.Palette
	// W receives the frames. Defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev is a seven-segment display emulator that outputs to the console.
type Dev struct {
	mu      sync.Mutex
	w       io.Writer
	digits  int
	on, off string
	drawn   bool
	codes   []byte
	buf     bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Digits <= 0 {
		o.Digits = 4
	}
	if o.On == (color.NRGBA{}) {
		o.On = color.NRGBA{R: 255, A: 255}
	}
	if o.Off == (color.NRGBA{}) {
		o.Off = color.NRGBA{A: 255}
	}
	p := o.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := o.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:      w,
		digits: o.Digits,
		on:     p.Block(o.On),
		off:    p.Block(o.Off),
		codes:  make([]byte, o.Digits),
	}
	for i := range d.codes {
		d.codes[i] = segment.Blank
	}
	return d
}

func (d *Dev) String() string {
	return "SegTerm"
}

// Digits returns the number of positions.
func (d *Dev) Digits() int {
	return d.digits
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell is not corrupted.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Display renders v the same way hc595.Dev does.
func (d *Dev) Display(v any) error {
	b, err := segment.EncodeValue(v, d.digits)
	if err != nil {
		return fmt.Errorf("segterm: %w", err)
	}
	return d.Write(b)
}

// Write draws one segment code per position.
func (d *Dev) Write(codes []byte) error {
	if len(codes) != d.digits {
		return fmt.Errorf("segterm: got %d codes for %d digits", len(codes), d.digits)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.codes, codes)
	return d.refresh()
}

// Codes returns a copy of the codes last drawn.
func (d *Dev) Codes() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.codes...)
}

// cells lists, per row, the segment lighting each of the 5 columns of a
// position. 0 is never lit.
var cells = [Rows][5]byte{
	{0, segment.SegA, segment.SegA, 0, 0},
	{segment.SegF, 0, 0, segment.SegB, 0},
	{0, segment.SegG, segment.SegG, 0, 0},
	{segment.SegE, 0, 0, segment.SegC, 0},
	{0, segment.SegD, segment.SegD, 0, segment.SegDP},
}

func (d *Dev) refresh() error {
	d.buf.Reset()
	if d.drawn {
		// Redraw in place.
		fmt.Fprintf(&d.buf, "\033[%dA", Rows)
	}
	for _, row := range cells {
		_, _ = d.buf.WriteString("\r")
		for _, c := range d.codes {
			for _, s := range row {
				// Active low.
				if s != 0 && c&s == 0 {
					_, _ = d.buf.WriteString(d.on)
				} else {
					_, _ = d.buf.WriteString(d.off)
				}
			}
			_, _ = d.buf.WriteString(d.off)
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
