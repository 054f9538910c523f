// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		code int
		want Kind
		msg  string
	}{
		{-1, InitFailed, "pigpio initialisation failed"},
		{-3, BadGPIO, "GPIO not 0-53"},
		{-4, BadMode, "mode not 0-7"},
		{-23, BadPathname, "can't open pathname"},
		{-24, NoHandle, "no handle available"},
		{-128, FileOpenFailed, "file open failed"},
		{-146, OnlyOnBCM2711, "only available on BCM2711"},
		{-2003, BadConnect, "failed to connect to pigpiod"},
		{-2011, UnconnectedPi, "not connected to Pi"},
		{-147, Unknown, "unknown error"},
		{-1999, Unknown, "unknown error"},
		{5, Unknown, "unknown error"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			k := KindOf(tt.code)
			if k != tt.want {
				t.Errorf("KindOf(%d) = %d", tt.code, k)
			}
			if k.String() != tt.msg {
				t.Errorf("String() = %q, expected %q", k.String(), tt.msg)
			}
		})
	}
}

func TestEveryDaemonCodeHasAKind(t *testing.T) {
	for code := -1; code >= -146; code-- {
		if KindOf(code) == Unknown {
			t.Errorf("code %d has no kind", code)
		}
	}
	for code := -2000; code >= -2012; code-- {
		if KindOf(code) == Unknown {
			t.Errorf("code %d has no kind", code)
		}
	}
}

func TestErrorUnknownCodeKeepsCode(t *testing.T) {
	err := newError("write GPIO3", -500)
	if s := err.Error(); s != "pigpio: write GPIO3: unknown error (-500)" {
		t.Errorf("Error() = %q", s)
	}
	var e *Error
	if !errors.As(err, &e) || e.Code != -500 {
		t.Errorf("code lost: %#v", err)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("broken pipe")
	err := wrapError("write GPIO3", BadSend, inner)
	if !errors.Is(err, inner) {
		t.Error("underlying error not reachable")
	}
	if !errors.Is(err, BadSend) {
		t.Error("kind not matched")
	}
	if errors.Is(err, BadRecv) {
		t.Error("wrong kind matched")
	}
}

func TestGPIO(t *testing.T) {
	for _, n := range []int{0, 17, 53} {
		g, err := NewGPIO(n)
		if err != nil || g.Number() != n {
			t.Errorf("NewGPIO(%d) = %v, %v", n, g, err)
		}
	}
	for _, n := range []int{-1, 54, 255} {
		if _, err := NewGPIO(n); !errors.Is(err, BadGPIO) {
			t.Errorf("NewGPIO(%d) = %v", n, err)
		}
	}
	if g, err := ParseGPIO("21"); err != nil || g.String() != "GPIO21" {
		t.Errorf("ParseGPIO(21) = %v, %v", g, err)
	}
	if _, err := ParseGPIO("x"); !errors.Is(err, BadGPIO) {
		t.Errorf("ParseGPIO(x) = %v", err)
	}
}

func TestRequestMarshal(t *testing.T) {
	r := Request{Cmd: CmdFO, P1: uint32(FileRead), Ext: []byte("/a")}
	b := r.Marshal()
	expected := []byte{83, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, '/', 'a'}
	if string(b) != string(expected) {
		t.Errorf("Marshal() = %v", b)
	}
	got := UnmarshalRequest(b)
	if got.Cmd != CmdFO || got.P1 != 1 || got.P3 != 2 {
		t.Errorf("UnmarshalRequest() = %+v", got)
	}
	resp := MarshalResponse(got, -23)
	if resp[12] != 0xe9 || resp[15] != 0xff {
		t.Errorf("MarshalResponse() = %v", resp)
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{Input: "In", Output: "Out", Alt0: "ALT0", Alt3: "ALT3", Alt4: "ALT4", Alt5: "ALT5", Mode(9): "Mode(9)"}
	for m, s := range tests {
		if m.String() != s {
			t.Errorf("%d.String() = %q, expected %q", m, m.String(), s)
		}
	}
}
