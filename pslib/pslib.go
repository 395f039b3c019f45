// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pslib provides generators for reusable sub-circuits.
//
// Generators return edge lists that can be appended together and passed to
// pulsesim.Build. Module names are derived from the name argument, so using
// distinct names for each generated part avoids collisions.
//
package pslib

import (
	"math/bits"
	"strconv"

	"github.com/db47h/pulsesim"
)

// Inverter returns a one input Conjunction: it emits High when it receives Low
// and Low when it receives High.
//
func Inverter(name string, outs ...string) pulsesim.Edge {
	return pulsesim.Edge{ID: name, Kind: pulsesim.Conjunction, Outputs: outs}
}

// Chain returns a delay line of stages inverters name0 ... nameN-1 where the
// last one feeds out. Pulses are delayed by one step per stage and inverted
// when stages is odd. Chain panics if stages < 1.
//
func Chain(name string, stages int, out string) []pulsesim.Edge {
	if stages < 1 {
		panic("pslib: chain " + name + " needs at least one stage")
	}
	es := make([]pulsesim.Edge, stages)
	for i := range es {
		next := out
		if i < stages-1 {
			next = name + strconv.Itoa(i+1)
		}
		es[i] = Inverter(name+strconv.Itoa(i), next)
	}
	return es
}

// Counter returns a binary counter that resets itself every period Low pulses.
//
// The counter is made of k FlipFlops name0 ... namek-1 where k is the number of
// bits needed to represent period, a Conjunction name+"c" that detects the
// count reaching period, and an inverter name+"i" wired to out. Low pulses
// must be sent to name+"0".
//
// Each FlipFlop adds 2^i to the count on a Low pulse. When the count reaches
// period, the gate sends a Low pulse to the FlipFlops of the bits set in
// 2^k-period, which brings the count back to 0, and the inverter sends a
// single High pulse to out, followed by a Low pulse within the same press.
// Any other change seen by the gate makes the inverter send a Low pulse to out.
//
//	Inputs: name0
//	Outputs: out
//	Function: High to out at every period'th Low input
//
// Counter panics if period < 1.
//
func Counter(name string, period int, out string) []pulsesim.Edge {
	if period < 1 {
		panic("pslib: counter " + name + " needs a positive period")
	}
	k := bits.Len(uint(period))
	reset := 1<<uint(k) - period
	gate, inv := name+"c", name+"i"

	es := make([]pulsesim.Edge, 0, k+2)
	var gateOuts []string
	for i := 0; i < k; i++ {
		var outs []string
		if i < k-1 {
			outs = append(outs, bitName(name, i+1))
		}
		if period&(1<<uint(i)) != 0 {
			outs = append(outs, gate)
		}
		if reset&(1<<uint(i)) != 0 {
			gateOuts = append(gateOuts, bitName(name, i))
		}
		es = append(es, pulsesim.Edge{ID: bitName(name, i), Kind: pulsesim.FlipFlop, Outputs: outs})
	}
	gateOuts = append(gateOuts, inv)
	es = append(es,
		pulsesim.Edge{ID: gate, Kind: pulsesim.Conjunction, Outputs: gateOuts},
		Inverter(inv, out))
	return es
}

func bitName(name string, i int) string { return name + strconv.Itoa(i) }
