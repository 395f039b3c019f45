// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsesim runs pulse propagation simulations on a wiring description
// file.
//
//	pulsesim [flags] file
//
// See pulsesim -h for the list of flags.
//
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/bradleyjkemp/memviz"
	"github.com/db47h/pulsesim"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/errors"
	"github.com/voodooEntity/archivist"
)

// statsAddr is where the runtime statistics are served with -statsview.
const statsAddr = "localhost:12600"

// Args holds the command line arguments.
type Args struct {
	File      string
	Mode      string
	Presses   int
	Sink      string
	Max       int
	LogLevel  string
	Memviz    string
	StatsView bool
}

func parseArgs() Args {
	var a Args
	flag.StringVar(&a.Mode, "mode", "all", "simulation `mode`: stats, cycle, brute or all")
	flag.IntVar(&a.Presses, "presses", 1000, "number of button presses in stats mode")
	flag.StringVar(&a.Sink, "sink", "rx", "sink `module` for cycle and brute modes")
	flag.IntVar(&a.Max, "max", pulsesim.DefaultMaxPresses, "maximum number of presses in cycle and brute modes")
	flag.StringVar(&a.LogLevel, "log", "info", "log `level`: debug, info, warning or error")
	flag.StringVar(&a.Memviz, "memviz", "", "dump the network as a graphviz dot `file`")
	flag.BoolVar(&a.StatsView, "statsview", false, "serve runtime statistics at "+statsAddr+"/debug/statsview")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	a.File = flag.Arg(0)
	return a
}

func main() {
	args := parseArgs()
	archivist.Init(args.LogLevel, "stdout", "")

	if args.StatsView {
		viewer.SetConfiguration(viewer.WithAddr(statsAddr))
		mgr := statsview.New()
		go mgr.Start()
		archivist.Info("stats server available at " + statsAddr + "/debug/statsview")
	}

	n, err := load(args.File)
	if err != nil {
		archivist.Error(err.Error())
		os.Exit(1)
	}
	archivist.Info("loaded "+args.File, n.Len())

	if args.Memviz != "" {
		if err := dump(args.Memviz, n); err != nil {
			archivist.Error(err.Error())
			os.Exit(1)
		}
	}

	if err := run(args, n); err != nil {
		archivist.Error(err.Error())
		os.Exit(1)
	}
}

func load(name string) (*pulsesim.Network, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "load wiring")
	}
	defer f.Close()
	edges, err := pulsesim.ParseWiring(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	n, err := pulsesim.Build(edges)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return n, nil
}

func dump(name string, n *pulsesim.Network) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "memviz")
	}
	memviz.Map(f, n)
	return errors.Wrap(f.Close(), "memviz")
}

func run(a Args, n *pulsesim.Network) error {
	switch a.Mode {
	case "stats":
		stats(n, a.Presses)
		return nil
	case "cycle":
		return cycle(n, a.Sink, a.Max)
	case "brute":
		return brute(n, a.Sink, a.Max)
	case "all":
		// independent runs on separate networks.
		var wg sync.WaitGroup
		var err error
		c := n.Clone()
		wg.Add(2)
		go func() {
			stats(n, a.Presses)
			wg.Done()
		}()
		go func() {
			err = cycle(c, a.Sink, a.Max)
			wg.Done()
		}()
		wg.Wait()
		if errors.Cause(err) == pulsesim.ErrNoSuchSink {
			// stats only wirings have no sink.
			archivist.Info("cycle: skipped, " + err.Error())
			return nil
		}
		return err
	}
	return errors.New("unknown mode " + a.Mode)
}

func stats(n *pulsesim.Network, presses int) {
	lo, hi := pulsesim.RunPresses(n, presses)
	fmt.Printf("stats: %d presses, %d low, %d high => %d\n", presses, lo, hi, pulsesim.Product(lo, hi))
}

func cycle(n *pulsesim.Network, sink string, max int) error {
	lens, err := pulsesim.FindCycleLengths(n, sink, pulsesim.MaxPresses(max))
	if errors.Cause(err) == pulsesim.ErrCycleNotFound {
		archivist.Info("cycle lengths not found, falling back to brute force")
		return brute(n, sink, max)
	}
	if err != nil {
		return err
	}
	p, err := pulsesim.LCM(lens...)
	if err != nil {
		return errors.Wrapf(err, "cycle lengths %v", lens)
	}
	fmt.Printf("cycle: %s cycle lengths %v => %d presses\n", sink, lens, p)
	return nil
}

func brute(n *pulsesim.Network, sink string, max int) error {
	p, err := pulsesim.PressesUntilLow(n, sink, max)
	if err != nil {
		return err
	}
	fmt.Printf("brute: %s low after %d presses\n", sink, p)
	return nil
}
