// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import (
	"fmt"
	"strconv"
)

// MaxGPIO is the highest GPIO number the daemon accepts.
const MaxGPIO = 53

// GPIO identifies a Broadcom GPIO number in the range 0-53.
//
// A GPIO can only be obtained through NewGPIO or ParseGPIO, so an out of range
// number is rejected when the GPIO is created and never when it's used.
type GPIO struct {
	n uint8
}

// NewGPIO returns the GPIO numbered n.
func NewGPIO(n int) (GPIO, error) {
	if n < 0 || n > MaxGPIO {
		return GPIO{}, &Error{Op: "gpio " + strconv.Itoa(n), Code: int(BadGPIO)}
	}
	return GPIO{n: uint8(n)}, nil
}

// MustGPIO is like NewGPIO but panics on an invalid number. It is meant for
// package level variables and tests.
func MustGPIO(n int) GPIO {
	g, err := NewGPIO(n)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGPIO parses a decimal GPIO number, as found on a command line.
func ParseGPIO(s string) (GPIO, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return GPIO{}, wrapError("gpio "+strconv.Quote(s), BadGPIO, err)
	}
	return NewGPIO(n)
}

// Number returns the Broadcom number.
func (g GPIO) Number() int {
	return int(g.n)
}

func (g GPIO) String() string {
	return "GPIO" + strconv.Itoa(int(g.n))
}

// Mode is a GPIO function as understood by the daemon.
type Mode uint8

// Modes, in the daemon's numbering.
const (
	Input  Mode = 0
	Output Mode = 1
	Alt5   Mode = 2
	Alt4   Mode = 3
	Alt0   Mode = 4
	Alt1   Mode = 5
	Alt2   Mode = 6
	Alt3   Mode = 7
)

func (m Mode) String() string {
	switch m {
	case Input:
		return "In"
	case Output:
		return "Out"
	case Alt0, Alt1, Alt2, Alt3:
		return fmt.Sprintf("ALT%d", m-Alt0)
	case Alt4:
		return "ALT4"
	case Alt5:
		return "ALT5"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// FileMode selects how a remote file is opened. FileRead, FileWrite and
// FileRW are exclusive; the remaining values are flags OR'ed onto them.
type FileMode uint32

const (
	FileRead   FileMode = 1
	FileWrite  FileMode = 2
	FileRW     FileMode = 3
	FileAppend FileMode = 4
	FileCreate FileMode = 8
	FileTrunc  FileMode = 16
)
