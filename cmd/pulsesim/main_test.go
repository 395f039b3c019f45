package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
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

func testdata(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func TestRun(t *testing.T) {
	td := []struct {
		name string
		file string
		mode string
		sink string
		err  error
	}{
		{"all_no_sink", "counter.txt", "all", "rx", nil},
		{"all", "periodic.txt", "all", "rx", nil},
		{"cycle_no_sink", "counter.txt", "cycle", "rx", pulsesim.ErrNoSuchSink},
		{"brute_no_sink", "counter.txt", "brute", "rx", pulsesim.ErrCycleNotFound},
		{"cycle", "periodic.txt", "cycle", "rx", nil},
		{"brute", "periodic.txt", "brute", "rx", nil},
		{"stats", "ripple.txt", "stats", "rx", nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			n, err := load(testdata(d.file))
			if err != nil {
				t.Fatal(err)
			}
			a := Args{Mode: d.mode, Presses: 10, Sink: d.sink, Max: 100}
			if err = run(a, n); errors.Cause(err) != d.err {
				t.Fatalf("got error %v, expected %v", err, d.err)
			}
		})
	}
}

func TestRun_unknownMode(t *testing.T) {
	n, err := load(testdata("ripple.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err = run(Args{Mode: "nope"}, n); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}
