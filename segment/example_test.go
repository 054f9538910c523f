// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/thermoseg/segment"
)

func Example() {
	codes, err := segment.Encode(segment.FormatFloat(23.625, 4), 4)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("% x\n", codes)
	// Output: ff a4 30 82
}

func ExampleEncode_overflow() {
	_, err := segment.Encode("12345", 4)
	fmt.Println(err)
	// Output: segment: "12345" needs 5 positions, display has 4: value too long for display
}
