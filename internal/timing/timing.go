// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package timing reports per-stage wall-clock duration to stderr when
// diagnostics are requested, entirely outside the stdout wire contract.
package timing

import (
	"fmt"
	"os"
	"time"
)

// enabled is read once; CRUXLINES_TIMING is a diagnostic toggle, not a
// runtime setting the pipeline itself needs to see.
var enabled = os.Getenv("CRUXLINES_TIMING") != ""

// Start returns a function that, when called, logs the elapsed time since
// Start was called under label. Typical use:
//
//	defer timing.Start("discover")()
func Start(label string) func() {
	if !enabled {
		return func() {}
	}
	begin := time.Now()
	return func() {
		fmt.Fprintf(os.Stderr, "[TIMING] %s: %s\n", label, time.Since(begin))
	}
}

// Count logs elapsed time alongside a processed-item count, for stages
// whose cost scales with an input size worth reporting per-item.
func Count(label string, begin time.Time, n int) {
	if !enabled {
		return
	}
	elapsed := time.Since(begin)
	if n <= 0 {
		fmt.Fprintf(os.Stderr, "[TIMING] %s: %s\n", label, elapsed)
		return
	}
	fmt.Fprintf(os.Stderr, "[TIMING] %s: %s (%d items, %s/item)\n", label, elapsed, n, elapsed/time.Duration(n))
}
