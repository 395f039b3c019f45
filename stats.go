// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// RunPresses resets n, presses the button the given number of times and
// returns the total number of Low and High pulses transmitted, button pulses
// included.
//
func RunPresses(n *Network, presses int) (low, high uint64) {
	s := NewSimulator(n)
	s.Reset()
	for i := 0; i < presses; i++ {
		s.Press()
	}
	return s.Counts()
}

// Product returns low * high.
//
func Product(low, high uint64) uint64 { return low * high }
