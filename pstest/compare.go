// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pstest provides utility functions for testing circuits.
//
package pstest

import (
	"testing"
	"time"

	"github.com/db47h/pulsesim"
)

// CompareCycle builds the given circuit twice and checks that the number of
// presses before sink receives a Low pulse is the same when computed with
// pulsesim.MinPressesToLow and with pulsesim.PressesUntilLow. The brute force
// search gives up after max presses.
//
// It returns the agreed upon press count.
//
func CompareCycle(t testing.TB, edges []pulsesim.Edge, sink string, max int) int {
	t.Helper()

	n1, err := pulsesim.Build(edges)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := pulsesim.Build(edges)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	lens, err := pulsesim.FindCycleLengths(n1, sink, pulsesim.MaxPresses(max))
	if err != nil {
		t.Fatal(err)
	}
	lcm, err := pulsesim.LCM(lens...)
	if err != nil {
		t.Fatalf("cycle lengths %v: %v", lens, err)
	}
	solved := time.Since(start)

	start = time.Now()
	brute, err := pulsesim.PressesUntilLow(n2, sink, max)
	if err != nil {
		t.Fatalf("cycle lengths %v (lcm %d), brute force: %v", lens, lcm, err)
	}
	elapsed := time.Since(start)

	if lcm != brute {
		t.Fatalf("cycle lengths %v give %d presses, brute force gives %d", lens, lcm, brute)
	}
	t.Logf("%d modules. %d presses. cycle lengths %v in %v, brute force in %v", n1.Len(), brute, lens, solved, elapsed)
	return brute
}
