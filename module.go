// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// module holds the state of a single module. Only the fields relevant to its
// kind are used.
//
type module struct {
	kind Kind
	on   bool // FlipFlop

	// Conjunction memory. ins is sorted and never changes after Build.
	// mem[i] is the last pulse received from ins[i]. high counts the High
	// entries in mem.
	ins  []string
	idx  map[string]int
	mem  []Pulse
	high int
}

func (m *module) reset() {
	switch m.kind {
	case Broadcaster:
	case FlipFlop:
		m.on = false
	case Conjunction:
		for i := range m.mem {
			m.mem[i] = Low
		}
		m.high = 0
	default:
		panic("reset: unknown module kind " + m.kind.String())
	}
}

// receive applies pulse p coming from src to the module and returns the
// emitted pulse. ok is false if no pulse is emitted.
//
func (m *module) receive(src string, p Pulse) (out Pulse, ok bool) {
	switch m.kind {
	case Broadcaster:
		return p, true
	case FlipFlop:
		if p == High {
			return Low, false
		}
		m.on = !m.on
		return Pulse(m.on), true
	case Conjunction:
		i, known := m.idx[src]
		if !known {
			// not wired to us. Build makes this unreachable from a Press.
			panic("receive: " + src + " is not an input of this conjunction")
		}
		if m.mem[i] != p {
			if p == High {
				m.high++
			} else {
				m.high--
			}
			m.mem[i] = p
		}
		return Pulse(m.high != len(m.mem)), true
	default:
		panic("receive: unknown module kind " + m.kind.String())
	}
}

func (m *module) clone() *module {
	c := *m
	if m.mem != nil {
		c.mem = make([]Pulse, len(m.mem))
		copy(c.mem, m.mem)
	}
	return &c
}
