// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pigpiotest is meant to be used to test drivers over a fake pigpio
// daemon.
//
// The Daemon answers the subset of the socket interface used by package
// pigpio and records every request it receives.
package pigpiotest

import (
	"errors"
	"io"
	"net"
	"sync"

	"github.com/GermanBionicSystems/thermoseg/pigpio"
	"periph.io/x/conn/v3/gpio"
)

// Daemon is an in-memory pigpio daemon.
//
// The zero value is ready to use.
type Daemon struct {
	// Version and Revision are returned by PIGPV and HWVER.
	Version  uint32
	Revision uint32

	mu      sync.Mutex
	ops     []pigpio.Request
	files   map[string][]byte
	fail    map[pigpio.Cmd]pigpio.Kind
	modes   map[uint32]uint32
	levels  map[uint32]uint32
	handles map[uint32]*handle
	next    uint32
}

type handle struct {
	path string
	data []byte
	off  int
}

// AddFile makes path readable through FO/FR with the given content.
func (d *Daemon) AddFile(path string, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.files == nil {
		d.files = map[string][]byte{}
	}
	d.files[path] = append([]byte(nil), data...)
}

// SetFail makes every following cmd fail with status k. Use pigpio.Unknown
// to clear it.
func (d *Daemon) SetFail(cmd pigpio.Cmd, k pigpio.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail == nil {
		d.fail = map[pigpio.Cmd]pigpio.Kind{}
	}
	if k == pigpio.Unknown {
		delete(d.fail, cmd)
		return
	}
	d.fail[cmd] = k
}

// Dial starts a session with the daemon over an in-memory pipe.
func (d *Daemon) Dial() (*pigpio.Conn, error) {
	client, server := net.Pipe()
	go func() {
		_ = d.Serve(server)
	}()
	return pigpio.New(client)
}

// Listen accepts connections on l until it is closed.
func (d *Daemon) Listen(l net.Listener) error {
	for {
		c, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go func() {
			_ = d.Serve(c)
		}()
	}
}

// Serve answers requests on c until the peer closes it.
func (d *Daemon) Serve(c net.Conn) error {
	defer c.Close()
	var hdr [16]byte
	for {
		if _, err := io.ReadFull(c, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return err
		}
		r := pigpio.UnmarshalRequest(hdr[:])
		if r.Cmd == pigpio.CmdFO && r.P3 != 0 {
			r.Ext = make([]byte, r.P3)
			if _, err := io.ReadFull(c, r.Ext); err != nil {
				return err
			}
		}
		res, data := d.handle(r)
		if _, err := c.Write(append(pigpio.MarshalResponse(r, res), data...)); err != nil {
			return err
		}
	}
}

func (d *Daemon) handle(r pigpio.Request) (int32, []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, r)
	if k, ok := d.fail[r.Cmd]; ok {
		return int32(k), nil
	}
	switch r.Cmd {
	case pigpio.CmdPiGPV:
		return int32(d.Version), nil
	case pigpio.CmdHWVer:
		return int32(d.Revision), nil
	case pigpio.CmdModes:
		if r.P1 > pigpio.MaxGPIO {
			return int32(pigpio.BadGPIO), nil
		}
		if r.P2 > 7 {
			return int32(pigpio.BadMode), nil
		}
		if d.modes == nil {
			d.modes = map[uint32]uint32{}
		}
		d.modes[r.P1] = r.P2
		return 0, nil
	case pigpio.CmdModeg:
		if r.P1 > pigpio.MaxGPIO {
			return int32(pigpio.BadGPIO), nil
		}
		return int32(d.modes[r.P1]), nil
	case pigpio.CmdWrite:
		if r.P1 > pigpio.MaxGPIO {
			return int32(pigpio.BadGPIO), nil
		}
		if r.P2 > 1 {
			return int32(pigpio.BadLevel), nil
		}
		if d.levels == nil {
			d.levels = map[uint32]uint32{}
		}
		d.levels[r.P1] = r.P2
		return 0, nil
	case pigpio.CmdRead:
		if r.P1 > pigpio.MaxGPIO {
			return int32(pigpio.BadGPIO), nil
		}
		return int32(d.levels[r.P1]), nil
	case pigpio.CmdFO:
		if pigpio.FileMode(r.P1)&pigpio.FileRW == 0 {
			return int32(pigpio.BadFileMode), nil
		}
		data, ok := d.files[string(r.Ext)]
		if !ok {
			return int32(pigpio.FileOpenFailed), nil
		}
		if d.handles == nil {
			d.handles = map[uint32]*handle{}
		}
		h := d.next
		d.next++
		d.handles[h] = &handle{path: string(r.Ext), data: data}
		return int32(h), nil
	case pigpio.CmdFR:
		h, ok := d.handles[r.P1]
		if !ok {
			return int32(pigpio.BadHandle), nil
		}
		n := min(int(r.P2), len(h.data)-h.off)
		data := h.data[h.off : h.off+n]
		h.off += n
		return int32(n), data
	case pigpio.CmdFC:
		if _, ok := d.handles[r.P1]; !ok {
			return int32(pigpio.BadHandle), nil
		}
		delete(d.handles, r.P1)
		return 0, nil
	default:
		return int32(pigpio.UnknownCommand), nil
	}
}

// Ops returns the requests received so far, optionally only those of the
// listed commands.
func (d *Daemon) Ops(cmds ...pigpio.Cmd) []pigpio.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []pigpio.Request
	for _, op := range d.ops {
		if len(cmds) == 0 {
			out = append(out, op)
			continue
		}
		for _, c := range cmds {
			if op.Cmd == c {
				out = append(out, op)
				break
			}
		}
	}
	return out
}

// Mode returns the last mode set on GPIO n.
func (d *Daemon) Mode(n int) pigpio.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return pigpio.Mode(d.modes[uint32(n)])
}

// Level returns the last level written to GPIO n.
func (d *Daemon) Level(n int) gpio.Level {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.levels[uint32(n)] != 0
}

// OpenFiles returns the number of handles not closed yet.
func (d *Daemon) OpenFiles() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handles)
}
