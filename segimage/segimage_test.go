// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segimage

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GermanBionicSystems/thermoseg/segment"
)

var (
	on  = color.NRGBA{R: 255, A: 255}
	off = color.NRGBA{R: 48, A: 255}
)

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func newDev(t *testing.T, digits int) *Dev {
	t.Helper()
	d, err := New(filepath.Join(t.TempDir(), "display.png"), &Opts{
		Digits: digits,
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRender(t *testing.T) {
	d := newDev(t, 2)
	codes, err := segment.Encode("1.", 2)
	if err != nil {
		t.Fatal(err)
	}
	img := d.Render(codes, "1.")
	if img.Bounds().Size() != d.Size() {
		t.Fatalf("size = %v, expected %v", img.Bounds().Size(), d.Size())
	}
	tests := []struct {
		pos  int
		seg  byte
		want color.Color
	}{
		{0, segment.SegA, off},
		{0, segment.SegB, off},
		{1, segment.SegA, off},
		{1, segment.SegB, on},
		{1, segment.SegC, on},
		{1, segment.SegG, off},
		{1, segment.SegDP, on},
	}
	for _, tt := range tests {
		p := d.Center(tt.pos, tt.seg)
		if got := img.At(p.X, p.Y); !sameColor(got, tt.want) {
			t.Errorf("position %d segment %#x at %v = %v", tt.pos, tt.seg, p, got)
		}
	}
}

func TestDisplayWritesPNG(t *testing.T) {
	d := newDev(t, 4)
	if err := d.Display(23.5); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(d.path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Size() != d.Size() {
		t.Errorf("size = %v", img.Bounds().Size())
	}
	// '2' lights A, not F.
	if p := d.Center(1, segment.SegA); !sameColor(img.At(p.X, p.Y), on) {
		t.Error("segment A of '2' not lit")
	}
	if p := d.Center(1, segment.SegF); !sameColor(img.At(p.X, p.Y), off) {
		t.Error("segment F of '2' lit")
	}
}

func TestDisplayOverflow(t *testing.T) {
	d := newDev(t, 2)
	if err := d.Display(123); !errors.Is(err, segment.ErrOverflow) {
		t.Errorf("Display() = %v", err)
	}
	if _, err := os.Stat(d.path); !errors.Is(err, os.ErrNotExist) {
		t.Error("snapshot written on overflow")
	}
}

func TestWrite(t *testing.T) {
	d := newDev(t, 2)
	if err := d.Write([]byte{segment.Blank}); err == nil {
		t.Error("Write() accepted a short buffer")
	}
	if err := d.Write([]byte{segment.Blank, segment.Dot}); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	d, err := New("x.png", nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Size() != (image.Point{X: 8 * (4 + 32), Y: 8 * 19}) {
		t.Errorf("Size() = %v", d.Size())
	}
	if d.String() != "SegImage{x.png}" {
		t.Errorf("String() = %q", d.String())
	}
}
