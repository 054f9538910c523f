// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

import (
	"fmt"
	"strconv"
)

// Kind is the semantic meaning of a pigpio status code. The value of each
// Kind is the status code the daemon uses for it.
//
// Kind implements error so it can be used as a target for errors.Is:
//
//	if errors.Is(err, pigpio.FileOpenFailed) {
//		...
//	}
type Kind int

// KindOf maps a raw status code to its Kind. Codes that are not part of the
// daemon's enumeration map to Unknown.
func KindOf(code int) Kind {
	if _, ok := kindMessages[Kind(code)]; ok {
		return Kind(code)
	}
	return Unknown
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "unknown error"
}

func (k Kind) Error() string {
	return k.String()
}

// Error is returned by every operation that failed with a negative status,
// whether reported by the daemon or produced locally by the socket layer.
type Error struct {
	// Op is the operation that failed, e.g. "set mode".
	Op string
	// Code is the status code as received. It is kept even when it does not
	// map to a known Kind.
	Code int
	// Err is the underlying transport error, if any.
	Err error
}

// Kind returns the semantic kind of e.Code.
func (e *Error) Kind() Kind {
	return KindOf(e.Code)
}

func (e *Error) Error() string {
	s := "pigpio: " + e.Op + ": " + e.Kind().String()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s + " (" + strconv.Itoa(e.Code) + ")"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind()
}

func newError(op string, code int32) error {
	return &Error{Op: op, Code: int(code)}
}

func wrapError(op string, k Kind, err error) error {
	return &Error{Op: op, Code: int(k), Err: err}
}

var _ error = Unknown
var _ fmt.Stringer = Unknown
