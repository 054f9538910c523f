// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import "encoding/binary"

// Cmd is a socket interface command number.
type Cmd uint32

// Commands used by this package. The full list is in pigpio's command.h.
const (
	CmdModes Cmd = 0
	CmdModeg Cmd = 1
	CmdRead  Cmd = 3
	CmdWrite Cmd = 4
	CmdHWVer Cmd = 17
	CmdPiGPV Cmd = 26
	CmdFO    Cmd = 83
	CmdFC    Cmd = 84
	CmdFR    Cmd = 85
)

// headerLen is the size of both a request and a response header: four little
// endian 32 bits words.
const headerLen = 16

// Request is a decoded request header plus its extension bytes.
type Request struct {
	Cmd        Cmd
	P1, P2, P3 uint32
	Ext        []byte
}

// Marshal encodes the request. P3 is replaced by the extension length when
// an extension is present.
func (r *Request) Marshal() []byte {
	b := make([]byte, headerLen+len(r.Ext))
	p3 := r.P3
	if len(r.Ext) != 0 {
		p3 = uint32(len(r.Ext))
	}
	binary.LittleEndian.PutUint32(b[0:], uint32(r.Cmd))
	binary.LittleEndian.PutUint32(b[4:], r.P1)
	binary.LittleEndian.PutUint32(b[8:], r.P2)
	binary.LittleEndian.PutUint32(b[12:], p3)
	copy(b[headerLen:], r.Ext)
	return b
}

// UnmarshalRequest decodes a request header. The extension, if any, follows
// the header on the wire and is not part of b.
func UnmarshalRequest(b []byte) Request {
	return Request{
		Cmd: Cmd(binary.LittleEndian.Uint32(b[0:])),
		P1:  binary.LittleEndian.Uint32(b[4:]),
		P2:  binary.LittleEndian.Uint32(b[8:]),
		P3:  binary.LittleEndian.Uint32(b[12:]),
	}
}

// MarshalResponse encodes the response header the daemon sends for r.
func MarshalResponse(r Request, res int32) []byte {
	b := make([]byte, headerLen)
	binary.LittleEndian.PutUint32(b[0:], uint32(r.Cmd))
	binary.LittleEndian.PutUint32(b[4:], r.P1)
	binary.LittleEndian.PutUint32(b[8:], r.P2)
	binary.LittleEndian.PutUint32(b[12:], uint32(res))
	return b
}
