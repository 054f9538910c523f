// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package w1therm reads Dallas Semi / Maxim one-wire thermometers through the
// Linux w1_therm kernel driver.
//
// The kernel exposes each probe as a directory named after its ROM id under
// /sys/bus/w1/devices. The temperature file holds the last conversion in
// milli-degrees Celsius followed by a newline; reading it triggers a new
// conversion and the kernel already checked the CRC.
//
// Older kernels only expose the w1_slave file, holding the raw scratchpad and
// the kernel's CRC verdict. Set Opts.Slave to read it instead; the CRC is then
// checked again here.
//
// Files are read through a FileReader so the sensor can sit on a remote board
// (see package pigpio) or on the local host (see package localgpio).
package w1therm

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GermanBionicSystems/thermoseg/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// DefaultDir is where the w1 bus master lists its devices.
const DefaultDir = "/sys/bus/w1/devices"

// maxRead bounds a read of the temperature file.
const maxRead = 32

// maxSlaveRead bounds a read of the w1_slave file, two lines of about 40
// characters.
const maxSlaveRead = 128

// scratchpadSize is the DS18x20 scratchpad length, CRC included.
const scratchpadSize = 9

// minSampleDuration is roughly a 12 bits conversion.
const minSampleDuration = 750 * time.Millisecond

// ErrParse is returned when the temperature file doesn't hold an integer.
var ErrParse = errors.New("w1therm: invalid temperature")

// ErrCRC is returned when a w1_slave file reports a corrupted scratchpad.
var ErrCRC = errors.New("w1therm: scratchpad CRC mismatch")

// FileReader reads at most max bytes from the start of a file.
type FileReader interface {
	ReadFile(path string, max int) ([]byte, error)
}

// Family code of the specific device type, the first byte of the ROM id.
type Family byte

const (
	DS18S20 Family = 0x10
	DS1822  Family = 0x22
	DS18B20 Family = 0x28
)

func (f Family) String() string {
	switch f {
	case DS18S20:
		return "DS18S20"
	case DS1822:
		return "DS1822"
	case DS18B20:
		return "DS18B20"
	default:
		return "unknown"
	}
}

// Opts holds the configuration options.
type Opts struct {
	// Dir is the sysfs directory listing the probes. Defaults to DefaultDir.
	Dir string
	// Slave reads the w1_slave file instead of temperature.
	Slave bool
}

// Dev is a handle to a one-wire thermometer.
type Dev struct {
	r      FileReader
	id     string
	path   string
	family Family
	max    int
	parse  func([]byte) (int64, error)

	mu       sync.Mutex
	shutdown chan struct{}
}

// New returns a sensor for the probe with the given id, e.g.
// "28-00000a1b2c3d". Nothing is read until Sense or Celsius is called.
func New(r FileReader, id string, opts *Opts) (*Dev, error) {
	if id == "" || strings.ContainsAny(id, "/\\") || id == "." || id == ".." {
		return nil, fmt.Errorf("w1therm: invalid device id %q", id)
	}
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	d := &Dev{r: r, id: id, path: path.Join(o.Dir, id, "temperature"), max: maxRead, parse: ParseMilli}
	if o.Slave {
		d.path = path.Join(o.Dir, id, "w1_slave")
		d.max = maxSlaveRead
		d.parse = ParseSlave
	}
	if prefix, _, ok := strings.Cut(id, "-"); ok {
		if f, err := strconv.ParseUint(prefix, 16, 8); err == nil {
			d.family = Family(f)
		}
	}
	return d, nil
}

// ID returns the ROM id the device was opened with.
func (d *Dev) ID() string {
	return d.id
}

// Path returns the file the temperature is read from.
func (d *Dev) Path() string {
	return d.path
}

func (d *Dev) Family() Family {
	return d.family
}

func (d *Dev) String() string {
	return d.family.String() + "{" + d.id + "}"
}

// Halt stops a SenseContinuous loop, if any.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return nil
}

// Milli returns the temperature in milli-degrees Celsius, as the kernel
// reports it.
//
// A DS18B20 returns 85000 when it had no power to convert. It is returned as
// is: the kernel driver only exposes readings with a valid CRC and 85°C is a
// legitimate temperature.
func (d *Dev) Milli() (int64, error) {
	b, err := d.r.ReadFile(d.path, d.max)
	if err != nil {
		return 0, fmt.Errorf("w1therm: reading %s: %w", d.path, err)
	}
	return d.parse(b)
}

// Celsius returns the temperature in degrees Celsius.
func (d *Dev) Celsius() (float64, error) {
	m, err := d.Milli()
	if err != nil {
		return 0, err
	}
	return float64(m) / 1000, nil
}

// Sense implements physic.SenseEnv.
func (d *Dev) Sense(e *physic.Env) error {
	m, err := d.Milli()
	if err != nil {
		return err
	}
	e.Temperature = physic.Temperature(m)*physic.MilliKelvin + physic.ZeroCelsius
	return nil
}

// SenseContinuous reads the sensor every interval and sends the output to the
// returned channel. Failed reads are skipped. To terminate the read, call
// Halt.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSampleDuration {
		return nil, errors.New("w1therm: sample interval is < device conversion time")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		return nil, errors.New("w1therm: SenseContinuous already running")
	}
	shutdown := make(chan struct{})
	d.shutdown = shutdown
	ch := make(chan physic.Env, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				var e physic.Env
				if err := d.Sense(&e); err != nil {
					continue
				}
				select {
				case ch <- e:
				case <-shutdown:
					return
				}
			}
		}
	}()
	return ch, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.MilliKelvin
	if d.family == DS18S20 {
		e.Temperature = physic.Kelvin / 2
	}
}

// ParseMilli parses the content of a temperature file.
func ParseMilli(b []byte) (int64, error) {
	s := string(bytes.TrimSpace(b))
	m, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrParse, s)
	}
	return m, nil
}

// ParseSlave parses the content of a w1_slave file:
//
//	72 01 4b 46 7f ff 0e 10 57 : crc=57 YES
//	72 01 4b 46 7f ff 0e 10 57 t=23125
//
// The temperature is only returned when both the kernel and the scratchpad
// CRC agree.
func ParseSlave(b []byte) (int64, error) {
	status, data, ok := strings.Cut(string(bytes.TrimSpace(b)), "\n")
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrParse, b)
	}
	if !strings.HasSuffix(strings.TrimSpace(status), "YES") {
		return 0, fmt.Errorf("%w: %q", ErrCRC, status)
	}
	raw, t, ok := strings.Cut(data, "t=")
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrParse, data)
	}
	pad, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if err != nil || len(pad) != scratchpadSize {
		return 0, fmt.Errorf("%w: scratchpad %q", ErrParse, raw)
	}
	if common.CRC8(pad) != 0 {
		return 0, fmt.Errorf("%w: % x", ErrCRC, pad)
	}
	return ParseMilli([]byte(t))
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
