// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package w1therm_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/thermoseg/pigpio"
	"github.com/GermanBionicSystems/thermoseg/w1therm"
	"periph.io/x/conn/v3/physic"
)

func Example() {
	// Read a probe attached to a Raspberry Pi running pigpiod.
	c, err := pigpio.Dial("raspberrypi.local", "")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	d, err := w1therm.New(c, "28-0000071b2c3d", nil)
	if err != nil {
		log.Fatal(err)
	}
	var e physic.Env
	if err := d.Sense(&e); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %s\n", d, e.Temperature)
}
