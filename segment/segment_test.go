// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import (
	"bytes"
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'0', 0xc0},
		{'1', 0xf9},
		{'8', 0x80},
		{'9', 0x98},
		{'A', 0x88},
		{'a', 0x88},
		{'h', 0x89},
		{'Z', 0xa4},
		{' ', Blank},
		{'-', 0xbf},
		{'_', 0xf7},
		{'.', Blank},
		{'#', Blank},
		{'é', Blank},
	}
	for _, tt := range tests {
		if got := Lookup(tt.r); got != tt.want {
			t.Errorf("Lookup(%q) = 0x%02x, expected 0x%02x", tt.r, got, tt.want)
		}
	}
}

func TestLettersCaseInsensitive(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		if Lookup(r) != Lookup(r-'a'+'A') {
			t.Errorf("%q and its upper case differ", r)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		digits int
		want   []byte
	}{
		{"empty", "", 4, []byte{Blank, Blank, Blank, Blank}},
		{"padded", "42", 4, []byte{Blank, Blank, 0x99, 0xa4}},
		{"exact", "1234", 4, []byte{0xf9, 0xa4, 0xb0, 0x99}},
		{"dot merges", "23.6", 4, []byte{Blank, 0xa4, 0x30, 0x82}},
		{"trailing dot", "8.", 1, []byte{0x00}},
		{"leading dot dropped", ".5", 2, []byte{Blank, 0x92}},
		{"double dot", "1..2", 4, []byte{Blank, 0x79, Dot, 0xa4}},
		{"only dots", "..", 2, []byte{Blank, Dot}},
		{"negative", "-3.5", 4, []byte{Blank, Minus, 0x30, 0x92}},
		{"letters", "Err", 4, []byte{Blank, 0x86, 0xcc, 0xcc}},
		{"unsupported", "a#b", 3, []byte{0x88, Blank, 0x83}},
		{"space", "1 2", 3, []byte{0xf9, Blank, 0xa4}},
		{"underscore", "__", 2, []byte{0xf7, 0xf7}},
		{"unsupported with dot", "#.", 1, []byte{Blank &^ DecimalPoint}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.text, tt.digits)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q, %d) = % x, expected % x", tt.text, tt.digits, got, tt.want)
			}
		})
	}
}

func TestEncodeAlwaysFillsDisplay(t *testing.T) {
	for digits := 1; digits <= 8; digits++ {
		for _, text := range []string{"", "1", "1.", "-1.5", "abc"} {
			got, err := Encode(text, digits)
			if errors.Is(err, ErrOverflow) {
				continue
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != digits {
				t.Errorf("Encode(%q, %d) returned %d codes", text, digits, len(got))
			}
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	for _, text := range []string{"12345", "1.2.3.4.5", "hello", "......"} {
		got, err := Encode(text, 4)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Encode(%q) = %v, expected ErrOverflow", text, err)
		}
		if got != nil {
			t.Errorf("Encode(%q) returned partial output % x", text, got)
		}
	}
	// Dots don't take positions.
	if _, err := Encode("1.2.3.4.", 4); err != nil {
		t.Errorf("Encode(1.2.3.4.) = %v", err)
	}
}

func TestEncodeInvalidDigits(t *testing.T) {
	if _, err := Encode("1", 0); err == nil {
		t.Error("expected error")
	}
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		v      any
		digits int
		want   []byte
	}{
		{7, 2, []byte{Blank, 0xf8}},
		{-12, 3, []byte{Minus, 0xf9, 0xa4}},
		{23.5, 4, []byte{Blank, 0xa4, 0x30, 0x92}},
		{float32(0.5), 2, []byte{0x40, 0x92}},
		{"Hi", 2, []byte{0x89, 0xcf}},
		{uint8(3), 1, []byte{0xb0}},
	}
	for _, tt := range tests {
		got, err := EncodeValue(tt.v, tt.digits)
		if err != nil {
			t.Errorf("EncodeValue(%v) = %v", tt.v, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeValue(%v, %d) = % x, expected % x", tt.v, tt.digits, got, tt.want)
		}
	}
	if _, err := EncodeValue(123456789, 8); !errors.Is(err, ErrOverflow) {
		t.Errorf("EncodeValue(123456789, 8) = %v", err)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   string
	}{
		{23.625, 4, "23.6"},
		{7.25, 4, "7.25"},
		{-3.5, 4, "-3.5"},
		{0.126, 4, "0.13"},
		{9.96, 3, "10"},
		{123.4, 3, "123"},
		{23.625, 8, "23.62500"},
		{100, 4, "100"},
		{1234.5, 3, "1234"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v, tt.digits); got != tt.want {
			t.Errorf("FormatFloat(%v, %d) = %q, expected %q", tt.v, tt.digits, got, tt.want)
		}
	}
}

func TestFormatFloatFits(t *testing.T) {
	for _, v := range []float64{0, 1.5, 23.625, 85, -10.0625, 99.99} {
		s := FormatFloat(v, 4)
		if _, err := Encode(s, 4); err != nil {
			t.Errorf("FormatFloat(%v, 4) = %q doesn't fit: %v", v, s, err)
		}
	}
}
