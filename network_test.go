package pulsesim_test

import (
	"testing"

	ps "github.com/db47h/pulsesim"
	"github.com/pkg/errors"
)

func TestBuild_errors(t *testing.T) {
	data := []struct {
		name  string
		edges []ps.Edge
		err   error
		msg   string
	}{
		{"duplicate", []ps.Edge{
			{ID: "broadcaster", Kind: ps.Broadcaster, Outputs: []string{"a"}},
			{ID: "a", Kind: ps.FlipFlop, Outputs: []string{"b"}},
			{ID: "a", Kind: ps.Conjunction, Outputs: []string{"c"}},
		}, ps.ErrDuplicateModule, "build a: duplicate module"},
		{"empty_id", []ps.Edge{
			{ID: "", Kind: ps.FlipFlop},
		}, ps.ErrInvalidModule, "build: invalid module"},
		{"bad_kind", []ps.Edge{
			{ID: "x", Kind: ps.Kind(42)},
		}, ps.ErrInvalidModule, "build Kind(42) x: invalid module"},
		{"broadcaster_name", []ps.Edge{
			{ID: "bc", Kind: ps.Broadcaster},
		}, ps.ErrInvalidModule, "build broadcaster not named broadcaster bc: invalid module"},
		{"broadcaster_kind", []ps.Edge{
			{ID: "broadcaster", Kind: ps.Conjunction},
		}, ps.ErrInvalidModule, "build conjunction named broadcaster broadcaster: invalid module"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := ps.Build(d.edges)
			if err == nil {
				t.Fatalf("expected error %q", d.msg)
			}
			if errors.Cause(err) != d.err {
				t.Errorf("Got cause %v, expected %v", errors.Cause(err), d.err)
			}
			if err.Error() != d.msg {
				t.Errorf("Got error %q, expected %q", err, d.msg)
			}
		})
	}
}

func TestBuild_adjacency(t *testing.T) {
	n := load(t, "conjunction.txt")

	if n.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", n.Len())
	}
	mods := n.Modules()
	exp := []string{"a", "b", "broadcaster", "con", "inv"}
	if !equal(mods, exp) {
		t.Errorf("Modules() = %v, expected %v", mods, exp)
	}

	outs := []struct {
		id   string
		outs []string
	}{
		{"broadcaster", []string{"a"}},
		{"a", []string{"inv", "con"}},
		{"con", []string{"output"}},
		{"output", nil},
		{"nope", nil},
	}
	for _, d := range outs {
		if got := n.Outputs(d.id); !equal(got, d.outs) {
			t.Errorf("Outputs(%q) = %v, expected %v", d.id, got, d.outs)
		}
	}

	preds := []struct {
		id    string
		preds []string
	}{
		{"con", []string{"a", "b"}},
		{"output", []string{"con"}},
		{"a", []string{"broadcaster"}},
		{"broadcaster", nil},
	}
	for _, d := range preds {
		if got := n.Predecessors(d.id); !equal(got, d.preds) {
			t.Errorf("Predecessors(%q) = %v, expected %v", d.id, got, d.preds)
		}
	}

	if k, ok := n.Kind("inv"); !ok || k != ps.Conjunction {
		t.Errorf("Kind(inv) = %v, %v", k, ok)
	}
	if _, ok := n.Kind("output"); ok {
		t.Error("undeclared sink output reported as a module")
	}
}

func TestBuild_duplicateOutput(t *testing.T) {
	n := mustBuild(t, `
		broadcaster -> c, c
		&c -> out`)
	if got := n.Predecessors("c"); !equal(got, []string{"broadcaster"}) {
		t.Errorf("Predecessors(c) = %v, expected [broadcaster]", got)
	}
	// c gets two Low pulses and emits High after each.
	lo, hi := ps.RunPresses(n, 1)
	if lo != 3 || hi != 2 {
		t.Errorf("got %d low, %d high, expected 3, 2", lo, hi)
	}
	var dst []string
	for _, tr := range record(n, 1) {
		if tr.Src == ps.BroadcasterID {
			dst = append(dst, tr.Dst)
		}
	}
	if !equal(dst, []string{"c", "c"}) {
		t.Errorf("broadcaster sent to %v, expected [c c]", dst)
	}
}

func TestNetwork_Reset(t *testing.T) {
	n := load(t, "conjunction.txt")
	ps.RunPresses(n, 3)
	// after 3 presses, a is on and con remembers high from a.
	if !n.FlipFlopOn("a") {
		t.Fatal("a should be on after 3 presses")
	}
	if p, ok := n.Memory("con", "a"); !ok || p != ps.High {
		t.Fatalf("con memory for a = %v, %v", p, ok)
	}

	n.Reset()
	for _, ff := range []string{"a", "b"} {
		if n.FlipFlopOn(ff) {
			t.Errorf("%s still on after Reset", ff)
		}
	}
	for _, src := range []string{"a", "b"} {
		if p, ok := n.Memory("con", src); !ok || p != ps.Low {
			t.Errorf("con memory for %s = %v, %v after Reset", src, p, ok)
		}
	}
	if _, ok := n.Memory("con", "inv"); ok {
		t.Error("con has a memory entry for inv which is not one of its inputs")
	}
}

func TestNetwork_Clone(t *testing.T) {
	n := load(t, "ripple.txt")
	c := n.Clone()

	lo, hi := ps.RunPresses(n, 1000)
	clo, chi := ps.RunPresses(c, 1000)
	if lo != clo || hi != chi {
		t.Fatalf("clone counts %d/%d differ from %d/%d", clo, chi, lo, hi)
	}

	s := ps.NewSimulator(n)
	s.Reset()
	s.Press()
	c.Reset()
	if n.FlipFlopOn("a") == c.FlipFlopOn("a") {
		t.Fatal("clone shares module state with the original network")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
