// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"math"
	"sort"
	"strconv"

	"github.com/voodooEntity/archivist"
)

// DefaultMaxPresses is the default press ceiling for FindCycleLengths.
//
const DefaultMaxPresses = 1 << 20

type solverConfig struct {
	max int
}

// A SolverOption configures FindCycleLengths and MinPressesToLow.
//
type SolverOption func(*solverConfig)

// MaxPresses sets the maximum number of presses before giving up with
// ErrCycleNotFound. Values <= 0 select DefaultMaxPresses.
//
func MaxPresses(max int) SolverOption {
	return func(c *solverConfig) {
		if max <= 0 {
			max = DefaultMaxPresses
		}
		c.max = max
	}
}

// FindCycleLengths finds the cycle lengths of the modules driving the
// Conjunctions that feed module sink.
//
// For each Conjunction wired to sink, each of its inputs is watched for the
// first press at which it sends a High pulse to that Conjunction. The network
// is reset once, then the button is pressed until every watched input has
// been seen. The returned lengths are these press indexes, ordered by
// Conjunction then input id.
//
// This is a heuristic: the High emission of each watched input is assumed to
// be perfectly periodic from its first occurrence. This holds for circuits
// made of independent binary counters feeding a shared gate (see
// pslib.Counter), not for arbitrary circuits.
//
// ErrNoSuchSink is returned if sink has no predecessor or if none of them is a
// Conjunction. ErrCycleNotFound is returned if the press ceiling is reached
// before all watched inputs have been seen; the error lists the unseen
// inputs.
//
func FindCycleLengths(n *Network, sink string, opts ...SolverOption) ([]int, error) {
	cfg := solverConfig{max: DefaultMaxPresses}
	for _, o := range opts {
		o(&cfg)
	}

	preds := n.Predecessors(sink)
	if len(preds) == 0 {
		return nil, newError("cycle", ErrNoSuchSink, sink)
	}

	type key struct{ src, gate string }
	var keys []key
	first := make(map[key]int)
	for _, gate := range preds {
		if k, _ := n.Kind(gate); k != Conjunction {
			continue
		}
		for _, src := range n.Predecessors(gate) {
			k := key{src, gate}
			keys = append(keys, k)
			first[k] = 0
		}
	}
	if len(keys) == 0 {
		return nil, newError("cycle: no conjunction feeds the sink", ErrNoSuchSink, sink)
	}

	archivist.Debug("cycle: watching inputs of "+sink+" gates", len(keys))

	missing := len(keys)
	s := NewSimulator(n)
	s.Watch(WatcherFunc(func(t Transmission) {
		if t.Pulse != High {
			return
		}
		k := key{t.Src, t.Dst}
		if p, ok := first[k]; ok && p == 0 {
			first[k] = t.Press
			missing--
			archivist.Debug("cycle: first high "+t.Src+" -> "+t.Dst+" at press "+strconv.Itoa(t.Press))
		}
	}))

	s.Reset()
	for missing > 0 && s.Presses() < cfg.max {
		s.Press()
	}

	if missing > 0 {
		var ids []string
		for _, k := range keys {
			if first[k] == 0 {
				ids = append(ids, k.src)
			}
		}
		archivist.Debug("cycle: press ceiling "+strconv.Itoa(cfg.max)+" reached", ids)
		return nil, newError("cycle after "+strconv.Itoa(cfg.max)+" presses", ErrCycleNotFound, ids...)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].gate != keys[j].gate {
			return keys[i].gate < keys[j].gate
		}
		return keys[i].src < keys[j].src
	})
	lens := make([]int, len(keys))
	for i, k := range keys {
		lens[i] = first[k]
	}
	archivist.Info("cycle: found cycle lengths for "+sink, lens)
	return lens, nil
}

// MinPressesToLow returns the minimum number of presses before module sink
// receives a Low pulse, computed as the least common multiple of the cycle
// lengths returned by FindCycleLengths. The same assumptions apply.
//
// ErrOverflow is returned if the press count does not fit in an int.
//
func MinPressesToLow(n *Network, sink string, opts ...SolverOption) (int, error) {
	lens, err := FindCycleLengths(n, sink, opts...)
	if err != nil {
		return 0, err
	}
	return LCM(lens...)
}

// PressesUntilLow resets n and presses the button until module sink receives a
// Low pulse or the given number of presses has been reached. It returns the
// number of presses or ErrCycleNotFound.
//
// This is the brute force counterpart of MinPressesToLow. It works for any
// circuit but only for small press counts.
//
func PressesUntilLow(n *Network, sink string, max int) (int, error) {
	found := false
	s := NewSimulator(n)
	s.Watch(WatcherFunc(func(t Transmission) {
		if t.Dst == sink && t.Pulse == Low {
			found = true
		}
	}))
	s.Reset()
	for !found && s.Presses() < max {
		s.Press()
	}
	if !found {
		return 0, newError("brute force after "+strconv.Itoa(max)+" presses", ErrCycleNotFound, sink)
	}
	return s.Presses(), nil
}

// GCD returns the greatest common divisor of a and b.
//
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of the given values. It returns 0 if
// no value is given or if any value is 0, and ErrOverflow if the result does
// not fit in an int.
//
func LCM(vs ...int) (int, error) {
	if len(vs) == 0 {
		return 0, nil
	}
	l := 1
	for _, v := range vs {
		if v == 0 {
			return 0, nil
		}
		if v < 0 {
			if v == math.MinInt {
				return 0, newError("lcm", ErrOverflow)
			}
			v = -v
		}
		q := l / GCD(l, v)
		if q > math.MaxInt/v {
			return 0, newError("lcm", ErrOverflow)
		}
		l = q * v
	}
	return l, nil
}
