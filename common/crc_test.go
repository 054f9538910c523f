// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC8(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result byte
	}{
		{bytes: nil, result: 0x00},
		{bytes: []byte{0x00}, result: 0x00},
		// ROM id of family 0x02, serial 0x000001b81c.
		{bytes: []byte{0x02, 0x1c, 0xb8, 0x01, 0x00, 0x00, 0x00}, result: 0xa2},
	}
	for _, test := range tests {
		res := CRC8(test.bytes)
		if res != test.result {
			t.Errorf("CRC8(%#v)!=0x%02x received 0x%02x", test.bytes, test.result, res)
		}
	}
}

func TestCRC8Residue(t *testing.T) {
	for _, b := range [][]byte{
		{0x72, 0x01, 0x4b, 0x46, 0x7f, 0xff, 0x0e, 0x10},
		{0x28, 0xff, 0x64, 0x1e, 0x0f, 0x00, 0x00},
		{0xbe, 0xef},
	} {
		full := append(append([]byte{}, b...), CRC8(b))
		if res := CRC8(full); res != 0 {
			t.Errorf("CRC8(% x) = 0x%02x, expected 0", full, res)
		}
	}
}
