// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the 1-Wire CRC8 calculation.
package common

// CRC8 calculates the Dallas/Maxim 1-Wire CRC of the byte slice parameter and
// returns the calculated value. The polynomial is X^8+X^5+X^4+1, bits are
// processed LSB first and the initial value is 0.
//
// The CRC of a ROM id or a scratchpad including its trailing CRC byte is 0.
func CRC8(bytes []byte) byte {
	var crc byte
	for _, val := range bytes {
		crc ^= val
		for range 8 {
			if (crc & 0x01) == 0 {
				crc >>= 1
			} else {
				crc = (crc >> 1) ^ 0x8c
			}
		}
	}
	return crc
}
