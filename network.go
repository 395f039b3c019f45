// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"sort"
)

// An Edge declares a module and wires its output to the named destination
// modules. Outputs are kept in order: when a module emits a pulse, it is
// queued for each destination in that order.
//
// Destinations need not be declared as modules. Such undeclared modules are
// sinks: they receive pulses but never react to them.
//
type Edge struct {
	ID      string
	Kind    Kind
	Outputs []string
}

// Network is a set of wired modules.
//
// A Network is not safe for concurrent use. Use Clone to run independent
// simulations of the same wiring on separate goroutines.
//
type Network struct {
	mods map[string]*module
	outs map[string][]string // forward adjacency, in declaration order
	ins  map[string][]string // reverse adjacency, sorted
}

// Build builds a new network from the given edge list. All modules start in
// their initial state.
//
// The edge list is validated: module ids must be non-empty and unique, kinds
// must be one of Broadcaster, FlipFlop or Conjunction, and the only
// Broadcaster must be named BroadcasterID.
//
func Build(edges []Edge) (*Network, error) {
	n := &Network{
		mods: make(map[string]*module, len(edges)),
		outs: make(map[string][]string, len(edges)),
		ins:  make(map[string][]string),
	}

	for _, e := range edges {
		switch {
		case e.ID == "":
			return nil, newError("build", ErrInvalidModule)
		case e.Kind < 0 || e.Kind >= kindCount:
			return nil, newError("build "+e.Kind.String(), ErrInvalidModule, e.ID)
		case e.Kind == Broadcaster && e.ID != BroadcasterID:
			return nil, newError("build broadcaster not named "+BroadcasterID, ErrInvalidModule, e.ID)
		case e.Kind != Broadcaster && e.ID == BroadcasterID:
			return nil, newError("build "+e.Kind.String()+" named "+BroadcasterID, ErrInvalidModule, e.ID)
		}
		if _, ok := n.mods[e.ID]; ok {
			return nil, newError("build", ErrDuplicateModule, e.ID)
		}
		n.mods[e.ID] = &module{kind: e.Kind}
		outs := make([]string, len(e.Outputs))
		copy(outs, e.Outputs)
		n.outs[e.ID] = outs
	}

	// reverse map. A destination listed twice by the same source counts as
	// one input.
	for src, outs := range n.outs {
		for _, dst := range outs {
			if !contains(n.ins[dst], src) {
				n.ins[dst] = append(n.ins[dst], src)
			}
		}
	}
	for _, srcs := range n.ins {
		sort.Strings(srcs)
	}

	for id, m := range n.mods {
		if m.kind != Conjunction {
			continue
		}
		m.ins = n.ins[id]
		m.idx = make(map[string]int, len(m.ins))
		for i, src := range m.ins {
			m.idx[src] = i
		}
		m.mem = make([]Pulse, len(m.ins))
	}

	return n, nil
}

func contains(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Reset restores all modules to their initial state: FlipFlops are off and
// Conjunctions remember a Low pulse for each of their inputs.
//
func (n *Network) Reset() {
	for _, m := range n.mods {
		m.reset()
	}
}

// Outputs returns the ordered list of modules wired to the output of module
// id. It returns nil for sinks and unknown ids.
//
// The returned slice must not be modified.
//
func (n *Network) Outputs(id string) []string {
	return n.outs[id]
}

// Predecessors returns the sorted list of modules wired to the input of module
// id. The module need not be declared.
//
// The returned slice must not be modified.
//
func (n *Network) Predecessors(id string) []string {
	return n.ins[id]
}

// Kind returns the kind of module id. ok is false if no such module is declared.
//
func (n *Network) Kind(id string) (k Kind, ok bool) {
	m, ok := n.mods[id]
	if !ok {
		return 0, false
	}
	return m.kind, true
}

// Modules returns the sorted list of declared module ids.
//
func (n *Network) Modules() []string {
	ids := make([]string, 0, len(n.mods))
	for id := range n.mods {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of declared modules.
//
func (n *Network) Len() int { return len(n.mods) }

// FlipFlopOn returns the state of FlipFlop id. It returns false if id is not
// a FlipFlop.
//
func (n *Network) FlipFlopOn(id string) bool {
	m := n.mods[id]
	return m != nil && m.kind == FlipFlop && m.on
}

// Memory returns the last pulse received by Conjunction id from module src.
// ok is false if id is not a Conjunction or src is not one of its inputs.
//
func (n *Network) Memory(id, src string) (p Pulse, ok bool) {
	m := n.mods[id]
	if m == nil || m.kind != Conjunction {
		return Low, false
	}
	i, ok := m.idx[src]
	if !ok {
		return Low, false
	}
	return m.mem[i], true
}

// Clone returns a copy of n with its own module state. The wiring is shared
// between n and the returned network.
//
func (n *Network) Clone() *Network {
	c := &Network{
		mods: make(map[string]*module, len(n.mods)),
		outs: n.outs,
		ins:  n.ins,
	}
	for id, m := range n.mods {
		c.mods[id] = m.clone()
	}
	return c
}
