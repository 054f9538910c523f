// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import (
	"errors"
	"io"
)

// File is a file opened on the daemon's host.
//
// The daemon only opens files matching a pattern listed in
// /opt/pigpio/access; others fail with NoFileAccess.
type File struct {
	c      *Conn
	path   string
	handle uint32
	closed bool
}

// OpenFile opens path on the daemon's host.
func (c *Conn) OpenFile(path string, mode FileMode) (*File, error) {
	res, err := c.do("open "+path, &Request{Cmd: CmdFO, P1: uint32(mode), Ext: []byte(path)}, nil)
	if err != nil {
		return nil, err
	}
	return &File{c: c, path: path, handle: uint32(res)}, nil
}

// ReadFile returns at most max bytes from the start of path.
//
// The remote handle is released before ReadFile returns, including when the
// read fails.
func (c *Conn) ReadFile(path string, max int) (b []byte, err error) {
	f, err := c.OpenFile(path, FileRead)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return io.ReadAll(io.LimitReader(f, int64(max)))
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.path
}

// Read implements io.Reader. It returns io.EOF once the daemon reports no
// more data.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errFileClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	res, err := f.c.do("read "+f.path, &Request{Cmd: CmdFR, P1: f.handle, P2: uint32(len(p))}, p)
	if err != nil {
		return 0, err
	}
	if res == 0 {
		return 0, io.EOF
	}
	return int(res), nil
}

// Close releases the remote handle. Only the first call reaches the daemon.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	_, err := f.c.do("close "+f.path, &Request{Cmd: CmdFC, P1: f.handle}, nil)
	return err
}

var errFileClosed = errors.New("pigpio: file already closed")

var _ io.ReadCloser = &File{}
