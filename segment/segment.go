// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segment converts text and numbers into raw seven-segment codes.
//
// A code holds one display position. Bits 0 to 6 drive segments A to G and
// bit 7 drives the decimal point:
//
//	 AAA
//	F   B
//	 GGG
//	E   C
//	 DDD  .
//
// Codes are active low, as wired on common anode modules: a cleared bit lights
// its segment and 0xFF is a blank position.
//
// Supported characters are digits, letters A to Z (case insensitive), space,
// '-', '_' and '.'. Everything else renders blank.
package segment

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// Blank turns every segment of a position off.
	Blank byte = 0xff
	// Dot is a position showing only the decimal point.
	Dot byte = 0x7f
	// DecimalPoint is the bit that lights the decimal point. Clear it from a
	// code to add the point to that position.
	DecimalPoint byte = 0x80
	// Minus is '-'.
	Minus byte = 0xbf
	// Underscore is '_'.
	Underscore byte = 0xf7
)

// Segment bits.
const (
	SegA byte = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// ErrOverflow is returned when a value needs more positions than the display
// has.
var ErrOverflow = errors.New("value too long for display")

// numerals holds '0' to '9'.
var numerals = [10]byte{
	//.GFEDCBA
	0b1100_0000, // 0
	0b1111_1001, // 1
	0b1010_0100, // 2
	0b1011_0000, // 3
	0b1001_1001, // 4
	0b1001_0010, // 5
	0b1000_0010, // 6
	0b1111_1000, // 7
	0b1000_0000, // 8
	0b1001_1000, // 9
}

// letters holds 'A' to 'Z'. Some letters can't be told apart on seven
// segments (O and 0, S and 5, U and V, H and X).
var letters = [26]byte{
	0b1000_1000, // A
	0b1000_0011, // b
	0b1100_0110, // C
	0b1010_0001, // d
	0b1000_0110, // E
	0b1000_1110, // F
	0b1100_0010, // G
	0b1000_1001, // H
	0b1100_1111, // I
	0b1110_0001, // J
	0b1000_1010, // K
	0b1100_0111, // L
	0b1110_1010, // M
	0b1100_1000, // N
	0b1100_0000, // O
	0b1000_1100, // P
	0b1001_0100, // Q
	0b1100_1100, // r
	0b1001_0010, // S
	0b1000_0111, // t
	0b1100_0001, // U
	0b1100_0001, // V
	0b1101_0101, // W
	0b1000_1001, // X
	0b1001_0001, // Y
	0b1010_0100, // Z
}

// Lookup returns the code of a single character, without decimal point.
//
// A lone '.' has no code of its own and is Blank here; see Encode for how
// dots are placed.
func Lookup(r rune) byte {
	switch {
	case r >= '0' && r <= '9':
		return numerals[r-'0']
	case r >= 'A' && r <= 'Z':
		return letters[r-'A']
	case r >= 'a' && r <= 'z':
		return letters[r-'a']
	case r == '-':
		return Minus
	case r == '_':
		return Underscore
	default:
		return Blank
	}
}

// Encode returns exactly digits codes for text, right aligned.
//
// A '.' following a character shares that character's position by clearing
// its DecimalPoint bit. Two consecutive dots take one position showing Dot.
// Any other dot is dropped. Shorter results are left padded with Blank; longer
// ones fail with ErrOverflow and nothing is returned.
func Encode(text string, digits int) ([]byte, error) {
	if digits <= 0 {
		return nil, fmt.Errorf("segment: invalid number of digits %d", digits)
	}
	runes := []rune(text)
	codes := make([]byte, 0, len(runes))
	for i, c := range runes {
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		switch {
		case c == '.' && next == '.':
			codes = append(codes, Dot)
		case c == '.':
		case next == '.':
			codes = append(codes, Lookup(c)&^DecimalPoint)
		default:
			codes = append(codes, Lookup(c))
		}
	}
	if len(codes) > digits {
		return nil, fmt.Errorf("segment: %q needs %d positions, display has %d: %w", text, len(codes), digits, ErrOverflow)
	}
	out := make([]byte, digits)
	pad := digits - len(codes)
	for i := range pad {
		out[i] = Blank
	}
	copy(out[pad:], codes)
	return out, nil
}

// EncodeValue encodes the canonical text form of v.
//
// Floating point values use the shortest representation that round trips
// ('f' format, no exponent); pass a string built with FormatFloat to control
// the precision. Everything else is formatted with fmt.Sprint.
func EncodeValue(v any, digits int) ([]byte, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		s = fmt.Sprint(v)
	}
	return Encode(s, digits)
}

// FormatFloat renders v in digits positions, using the positions left after
// the integer part for decimals. The decimal point doesn't use a position.
//
// For example 23.625 on 4 digits is "23.6" and 7.25 on 4 digits is "7.25".
// An integer part wider than the display is returned as is and fails once
// encoded.
func FormatFloat(v float64, digits int) string {
	// The integer part is rounded the same way as the result so a carry
	// (9.96 -> "10") is accounted for.
	intPart := strconv.FormatFloat(v, 'f', 0, 64)
	prec := digits - 1 - len(intPart)
	if prec < 0 {
		prec = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
