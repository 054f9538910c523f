// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segimage renders seven-segment codes to an image and keeps a PNG
// snapshot of the last value displayed.
//
// It is handy to publish what a remote display shows, e.g. on a web page.
package segimage

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/GermanBionicSystems/thermoseg/segment"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Opts represents the options available for the snapshot.
type Opts struct {
	// Digits is the number of positions. Defaults to 4.
	Digits int
	// Unit is the segment thickness in pixels. Defaults to 8.
	Unit int
	// On, Off and Background default to red, dark red and black.
	On, Off, Background color.Color
	// Now timestamps the caption. Defaults to time.Now.
	Now func() time.Time
}

// Dev writes a PNG file each time it is updated.
type Dev struct {
	mu     sync.Mutex
	path   string
	digits int
	unit   float64
	on     color.Color
	off    color.Color
	bg     color.Color
	now    func() time.Time
	face   font.Face
}

// New returns a Dev writing to path. The file is created on the first update.
func New(path string, opts *Opts) (*Dev, error) {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Digits <= 0 {
		o.Digits = 4
	}
	if o.Unit <= 0 {
		o.Unit = 8
	}
	if o.On == nil {
		o.On = color.NRGBA{R: 255, A: 255}
	}
	if o.Off == nil {
		o.Off = color.NRGBA{R: 48, A: 255}
	}
	if o.Background == nil {
		o.Background = color.Black
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("segimage: %w", err)
	}
	d := &Dev{
		path:   path,
		digits: o.Digits,
		unit:   float64(o.Unit),
		on:     o.On,
		off:    o.Off,
		bg:     o.Background,
		now:    o.Now,
		face:   truetype.NewFace(f, &truetype.Options{Size: 1.8 * float64(o.Unit)}),
	}
	return d, nil
}

func (d *Dev) String() string {
	return "SegImage{" + d.path + "}"
}

// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return nil
}

// Display renders v and saves the snapshot, captioned with v and the time.
func (d *Dev) Display(v any) error {
	b, err := segment.EncodeValue(v, d.digits)
	if err != nil {
		return fmt.Errorf("segimage: %w", err)
	}
	return d.save(b, fmt.Sprint(v))
}

// Write saves a snapshot of raw codes.
func (d *Dev) Write(codes []byte) error {
	if len(codes) != d.digits {
		return fmt.Errorf("segimage: got %d codes for %d digits", len(codes), d.digits)
	}
	return d.save(codes, "")
}

func (d *Dev) save(codes []byte, caption string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	dc := d.draw(codes, caption)
	if err := dc.SavePNG(d.path); err != nil {
		return fmt.Errorf("segimage: %w", err)
	}
	return nil
}

// Render returns the image for codes.
func (d *Dev) Render(codes []byte, caption string) image.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draw(codes, caption).Image()
}

// Geometry, in units: a position is 6 wide and 11 high, with a decimal point
// column and a gap after it.
const (
	margin      = 2
	pitch       = 8
	digitHeight = 11
	captionH    = 4
)

// rect is a segment, in units relative to the position's origin.
type rect struct {
	seg        byte
	x, y, w, h float64
}

var rects = []rect{
	{segment.SegA, 1, 0, 4, 1},
	{segment.SegB, 5, 1, 1, 4},
	{segment.SegC, 5, 6, 1, 4},
	{segment.SegD, 1, 10, 4, 1},
	{segment.SegE, 0, 6, 1, 4},
	{segment.SegF, 0, 1, 1, 4},
	{segment.SegG, 1, 5, 4, 1},
	{segment.SegDP, 6.5, 10, 1, 1},
}

// Size returns the image size in pixels.
func (d *Dev) Size() image.Point {
	u := d.unit
	return image.Point{
		X: int(u * float64(2*margin+pitch*d.digits)),
		Y: int(u * float64(2*margin+digitHeight+captionH)),
	}
}

// Center returns the pixel at the middle of segment seg of position i.
func (d *Dev) Center(i int, seg byte) image.Point {
	u := d.unit
	for _, r := range rects {
		if r.seg == seg {
			x := u * (margin + float64(pitch*i) + r.x + r.w/2)
			y := u * (margin + r.y + r.h/2)
			return image.Point{X: int(x), Y: int(y)}
		}
	}
	return image.Point{}
}

func (d *Dev) draw(codes []byte, caption string) *gg.Context {
	size := d.Size()
	u := d.unit
	dc := gg.NewContext(size.X, size.Y)
	dc.SetColor(d.bg)
	dc.Clear()
	for i, c := range codes {
		ox := u * float64(margin+pitch*i)
		oy := u * margin
		for _, r := range rects {
			// Active low.
			if c&r.seg == 0 {
				dc.SetColor(d.on)
			} else {
				dc.SetColor(d.off)
			}
			dc.DrawRectangle(ox+u*r.x, oy+u*r.y, u*r.w, u*r.h)
			dc.Fill()
		}
	}
	text := d.now().Format("2006-01-02 15:04:05")
	if caption != "" {
		text = caption + "  " + text
	}
	dc.SetFontFace(d.face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(text, float64(size.X)/2, u*(margin+digitHeight+captionH/2), 0.5, 0.5)
	return dc
}
