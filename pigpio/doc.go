// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pigpio is a client for the pigpio daemon socket interface.
//
// It covers what's needed to drive output pins and read files on a remote
// Raspberry Pi: pin modes, digital reads and writes, and remote file
// open/read/close. Every negative status returned by the daemon is surfaced
// as an *Error carrying both the raw code and its Kind.
//
// # Protocol
//
// https://abyz.me.uk/rpi/pigpio/sif.html
//
// A request is four little endian uint32 (cmd, p1, p2, p3), optionally
// followed by p3 bytes of extension. The response repeats cmd, p1 and p2 and
// carries the signed result in the fourth word.
package pigpio
