// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "strconv"

// A Pulse is the level of a signal sent along a wire.
//
type Pulse bool

// Pulse levels.
//
const (
	Low  Pulse = false
	High Pulse = true
)

func (p Pulse) String() string {
	if p {
		return "high"
	}
	return "low"
}

// Kind identifies the behavior of a module.
//
type Kind int

// Module kinds.
//
const (
	// Broadcaster forwards every pulse unchanged to all its outputs.
	Broadcaster Kind = iota
	// FlipFlop ignores High pulses and toggles on Low pulses, emitting
	// High when turned on and Low when turned off.
	FlipFlop
	// Conjunction remembers the last pulse received from each input and
	// emits Low if all of them are High, High otherwise.
	Conjunction
	kindCount
)

var kindNames = [...]string{
	Broadcaster: "broadcaster",
	FlipFlop:    "flip-flop",
	Conjunction: "conjunction",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Special module names.
//
const (
	// BroadcasterID is the name of the only Broadcaster in a network.
	BroadcasterID = "broadcaster"
	// ButtonID is the source name of the synthetic pulse sent to the
	// broadcaster on every button press.
	ButtonID = "button"
)
