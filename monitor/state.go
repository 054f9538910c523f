// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package monitor

import (
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/thermoseg/tempdb"
)

// State is a step of the poll and persist loop.
type State uint8

// Loop states, in cycle order.
const (
	Idle State = iota
	Reading
	Formatting
	Displaying
	Persisting
	Done
)

const stateName = "IdleReadingFormattingDisplayingPersistingDone"

var stateIndex = [...]uint8{0, 4, 11, 21, 31, 41, 45}

func (s State) String() string {
	if s >= State(len(stateIndex)-1) {
		return fmt.Sprintf("State(%d)", s)
	}
	return stateName[stateIndex[s]:stateIndex[s+1]]
}

// Format selects how persisted readings are written out.
type Format string

// Output formats.
const (
	// TXT renders "|2006-01-02 15:04:05|23.625|".
	TXT Format = "txt"
	// CSV renders "<unix seconds>,<temperature>".
	CSV Format = "csv"
)

// ParseFormat returns the Format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case TXT, CSV:
		return f, nil
	}
	return "", fmt.Errorf("monitor: unknown format %q", s)
}

// Render returns r in format f.
func (f Format) Render(r tempdb.Reading) string {
	if f == CSV {
		return r.CSV()
	}
	return r.String()
}
