// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package monitor polls a thermometer, shows each reading on a seven-segment
// display and persists it.
//
// Every cycle walks the states Reading, Formatting, Displaying and Persisting
// before going back to Idle. A reading is formatted to fill the display, e.g.
// 23.625°C on 4 digits shows "23.6", and the full value is stored.
//
// The store keys readings by second. When an insert conflicts with the
// previous reading the monitor waits the backoff and retries once.
package monitor
