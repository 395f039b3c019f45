// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// A Transmission is a pulse sent from one module to another.
//
type Transmission struct {
	Press int    // press index, starting at 1
	Src   string // sending module, ButtonID for the button pulse
	Dst   string // receiving module
	Pulse Pulse
}

// A Watcher is notified of every pulse transmission during a press.
//
type Watcher interface {
	Transmit(t Transmission)
}

// WatcherFunc adapts a function to the Watcher interface.
//
type WatcherFunc func(t Transmission)

// Transmit implements Watcher.
//
func (f WatcherFunc) Transmit(t Transmission) { f(t) }

// State is the state of a Simulator.
//
type State int

// Simulator states.
//
const (
	Idle State = iota
	Propagating
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Propagating:
		return "propagating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

type queued struct {
	p        Pulse
	dst, src string
}

// Simulator runs button presses on a Network.
//
// All pulses caused by one press are processed in strict FIFO order, and the
// press completes before the next one can start.
//
type Simulator struct {
	n     *Network
	q     []queued
	ws    []Watcher
	press int
	state State
	lo    uint64
	hi    uint64
}

// NewSimulator returns a new simulator for n. The state of n is left as is;
// call Reset to start from the initial state.
//
func NewSimulator(n *Network) *Simulator {
	return &Simulator{n: n, q: make([]queued, 0, 64)}
}

// Network returns the network driven by s.
//
func (s *Simulator) Network() *Network { return s.n }

// Watch registers w to be notified of every transmission.
//
func (s *Simulator) Watch(w Watcher) {
	s.ws = append(s.ws, w)
}

// Reset resets the network, the pulse counters and the press counter.
//
func (s *Simulator) Reset() {
	s.n.Reset()
	s.q = s.q[:0]
	s.press = 0
	s.state = Idle
	s.lo, s.hi = 0, 0
}

// Presses returns the number of completed presses since the last Reset.
//
func (s *Simulator) Presses() int { return s.press }

// State returns the current simulator state: Idle before the first press,
// Settled after.
//
func (s *Simulator) State() State { return s.state }

// Counts returns the number of Low and High pulses transmitted since the last
// Reset, including button pulses.
//
func (s *Simulator) Counts() (low, high uint64) { return s.lo, s.hi }

func (s *Simulator) send(p Pulse, dst, src string) {
	s.q = append(s.q, queued{p, dst, src})
	if p == High {
		s.hi++
	} else {
		s.lo++
	}
	for _, w := range s.ws {
		w.Transmit(Transmission{Press: s.press, Src: src, Dst: dst, Pulse: p})
	}
}

// Press presses the button once: a Low pulse is sent to the broadcaster and
// the resulting pulses are propagated until the network settles.
//
func (s *Simulator) Press() {
	s.press++
	s.state = Propagating
	s.send(Low, BroadcasterID, ButtonID)

	for head := 0; head < len(s.q); head++ {
		e := s.q[head]
		m := s.n.mods[e.dst]
		if m == nil {
			// sink
			continue
		}
		p, ok := m.receive(e.src, e.p)
		if !ok {
			continue
		}
		for _, d := range s.n.outs[e.dst] {
			s.send(p, d, e.dst)
		}
	}

	s.q = s.q[:0]
	s.state = Settled
}
