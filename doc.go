// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermoseg is a container for the packages of a remote thermometer
// display.
//
// A Raspberry Pi running pigpiod exposes its GPIOs and files over TCP. Package
// pigpio is the client. Package hc595 bit-bangs a chain of 74HC595 shift
// registers driving a seven-segment display through it, using the codes of
// package segment. Package w1therm reads a one-wire thermometer through the
// same connection and package tempdb stores every reading in SQLite. Package
// monitor ties them together and cmd/thermoseg is the executable.
//
// Packages segterm and segimage render the display on a terminal and in a PNG
// file. Package localgpio runs everything on the board itself, without
// pigpiod.
package thermoseg
