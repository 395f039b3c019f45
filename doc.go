// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package pulsesim simulates networks of modules exchanging Low and High pulses.

A network is made of three kinds of modules:

	Broadcaster  forwards every pulse to all of its outputs.
	FlipFlop     ignores High pulses. A Low pulse toggles it and makes it
	             emit High if it is now on, Low if it is now off.
	Conjunction  remembers the last pulse received from each input and emits
	             Low if all of them are High, High otherwise.

Networks are built from an edge list, usually parsed from a wiring
description:

	edges, err := pulsesim.ParseWiringString(`
		broadcaster -> a, b, c
		%a -> b
		%b -> c
		%c -> inv
		&inv -> a`)
	n, err := pulsesim.Build(edges)

Pressing the button sends a Low pulse to the broadcaster. Pulses are then
processed in the order they were sent until the network settles. A Simulator
runs presses one at a time and notifies Watchers of every transmission.

RunPresses counts the pulses sent during a number of presses. For circuits
made of independent counters feeding a shared gate, MinPressesToLow computes
the number of presses before a sink receives a Low pulse without simulating
them all. PressesUntilLow does the same by brute force.
*/
package pulsesim
