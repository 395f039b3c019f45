package pstest_test

import (
	"flag"
	"os"
	"testing"

	ps "github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pslib"
	"github.com/db47h/pulsesim/pstest"
	"github.com/voodooEntity/archivist"
)

func TestMain(m *testing.M) {
	flag.Parse()
	level := "error"
	if testing.Verbose() {
		level = "info"
	}
	archivist.Init(level, "stdout", "")
	os.Exit(m.Run())
}

func TestCompareCycle(t *testing.T) {
	// the period 3 counter is delayed by two inverters so that both
	// counters reach the final gate at the same depth.
	edges := []ps.Edge{
		{ID: ps.BroadcasterID, Kind: ps.Broadcaster, Outputs: []string{"d0", "b0"}},
	}
	edges = append(edges, pslib.Chain("d", 2, "a0")...)
	edges = append(edges, pslib.Counter("a", 3, "f")...)
	edges = append(edges, pslib.Counter("b", 4, "f")...)
	edges = append(edges, ps.Edge{ID: "f", Kind: ps.Conjunction, Outputs: []string{"rx"}})

	if n := pstest.CompareCycle(t, edges, "rx", 100); n != 12 {
		t.Fatalf("expected 12 presses, got %d", n)
	}
}
