// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Defaults used by Dial when the address or port is empty and the matching
// environment variable isn't set either.
const (
	DefaultAddr = "localhost"
	DefaultPort = "8888"
)

// Conn is a session with a pigpio daemon.
//
// Every method is a synchronous round trip. Calls are serialized, but the
// daemon is not designed to be driven by more than one goroutine through the
// same session; confine a Conn to the goroutine that owns it.
//
// The first transport failure ends the session: the socket is closed and all
// subsequent calls fail with UnconnectedPi.
type Conn struct {
	mu   sync.Mutex
	rw   io.ReadWriteCloser
	name string
	hdr  [headerLen]byte
}

// Dial connects to the daemon at addr:port.
//
// An empty addr or port falls back to the PIGPIO_ADDR and PIGPIO_PORT
// environment variables, then to DefaultAddr and DefaultPort, the same way
// pigpio's C client does.
func Dial(addr, port string) (*Conn, error) {
	return DialContext(context.Background(), addr, port)
}

// DialContext is Dial with a context bounding the connection attempt.
func DialContext(ctx context.Context, addr, port string) (*Conn, error) {
	if addr == "" {
		addr = envOr("PIGPIO_ADDR", DefaultAddr)
	}
	if port == "" {
		port = envOr("PIGPIO_PORT", DefaultPort)
	}
	hostport := net.JoinHostPort(addr, port)
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", hostport)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return nil, wrapError("connect "+hostport, BadGetAddrInfo, err)
		}
		return nil, wrapError("connect "+hostport, BadConnect, err)
	}
	if tcp, ok := nc.(*net.TCPConn); ok {
		// Requests are tiny; don't let Nagle batch the strobes.
		_ = tcp.SetNoDelay(true)
	}
	c, err := New(nc)
	if err != nil {
		return nil, err
	}
	c.name = hostport
	return c, nil
}

// New starts a session over an already established stream. The daemon version
// is queried to verify the peer speaks the socket protocol; on failure rw is
// closed.
func New(rw io.ReadWriteCloser) (*Conn, error) {
	c := &Conn{rw: rw, name: "pigpio"}
	if _, err := c.Version(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Conn) String() string {
	return "pigpio{" + c.name + "}"
}

// Close ends the session. It is safe to call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rw == nil {
		return nil
	}
	err := c.rw.Close()
	c.rw = nil
	return err
}

// Ping verifies the session is still usable.
func (c *Conn) Ping() error {
	_, err := c.Version()
	return err
}

// Version returns the daemon's pigpio version.
func (c *Conn) Version() (uint32, error) {
	res, err := c.do("version", &Request{Cmd: CmdPiGPV}, nil)
	return uint32(res), err
}

// HardwareRevision returns the board revision reported by the daemon.
func (c *Conn) HardwareRevision() (uint32, error) {
	res, err := c.do("hardware revision", &Request{Cmd: CmdHWVer}, nil)
	return uint32(res), err
}

// SetMode sets the function of g.
func (c *Conn) SetMode(g GPIO, m Mode) error {
	_, err := c.do("set mode "+g.String(), &Request{Cmd: CmdModes, P1: uint32(g.n), P2: uint32(m)}, nil)
	return err
}

// Mode returns the current function of g.
func (c *Conn) Mode(g GPIO) (Mode, error) {
	res, err := c.do("get mode "+g.String(), &Request{Cmd: CmdModeg, P1: uint32(g.n)}, nil)
	return Mode(res), err
}

// Write drives g to level l.
func (c *Conn) Write(g GPIO, l gpio.Level) error {
	var v uint32
	if l {
		v = 1
	}
	_, err := c.do("write "+g.String(), &Request{Cmd: CmdWrite, P1: uint32(g.n), P2: v}, nil)
	return err
}

// Read returns the level of g.
func (c *Conn) Read(g GPIO) (gpio.Level, error) {
	res, err := c.do("read "+g.String(), &Request{Cmd: CmdRead, P1: uint32(g.n)}, nil)
	return res != 0, err
}

// Pin returns a gpio.PinOut view of g on this session.
func (c *Conn) Pin(g GPIO) *Pin {
	return &Pin{c: c, g: g}
}

// do sends one request and waits for its response. When data is not nil, the
// positive result is the number of payload bytes that follow the response
// header; they are read into data.
func (c *Conn) do(op string, r *Request, data []byte) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rw == nil {
		return 0, newError(op, int32(UnconnectedPi))
	}
	if _, err := c.rw.Write(r.Marshal()); err != nil {
		return 0, c.fail(op, BadSend, err)
	}
	if _, err := io.ReadFull(c.rw, c.hdr[:]); err != nil {
		return 0, c.fail(op, BadRecv, err)
	}
	if got := Cmd(binary.LittleEndian.Uint32(c.hdr[0:])); got != r.Cmd {
		return 0, c.fail(op, BadRecv, fmt.Errorf("response to command %d, expected %d", got, r.Cmd))
	}
	res := int32(binary.LittleEndian.Uint32(c.hdr[12:]))
	if res < 0 {
		return res, newError(op, res)
	}
	if data != nil && res > 0 {
		n := int(res)
		if n > len(data) {
			return 0, c.fail(op, BadRecv, fmt.Errorf("%d bytes returned for a %d bytes request", n, len(data)))
		}
		if _, err := io.ReadFull(c.rw, data[:n]); err != nil {
			return 0, c.fail(op, BadRecv, err)
		}
	}
	return res, nil
}

// fail tears the session down after a transport error. c.mu must be held.
func (c *Conn) fail(op string, k Kind, err error) error {
	_ = c.rw.Close()
	c.rw = nil
	return wrapError(op, k, err)
}
