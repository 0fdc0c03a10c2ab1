package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
)

const (
	defaultPlayers = 2
	defaultHand    = "full house"
	defaultNSims   = 100000
)

type options struct {
	players    int
	hand       string
	cumulative bool
	nsims      int
	seed       uint64
	workers    int
	ledger     string
	verbose    bool
}

// parseArgs parses the command line. Every flag accepts both the -name and
// --name spellings.
func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options
	var noCumulative bool

	fs := flag.NewFlagSet("poker-odds", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Poker simulator to determine probability of a certain hand occurring, assuming all hands go to showdown")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Usage: poker-odds [OPTIONS]")
		fs.PrintDefaults()
	}

	fs.IntVar(&opts.players, "players", defaultPlayers, "number of players")
	fs.IntVar(&opts.players, "n", defaultPlayers, "number of players (shorthand)")
	fs.StringVar(&opts.hand, "hand", defaultHand, "hand name")
	fs.BoolVar(&opts.cumulative, "cumulative", false, "calculate probability for HAND or better")
	fs.BoolVar(&opts.cumulative, "c", false, "calculate probability for HAND or better (shorthand)")
	fs.BoolVar(&noCumulative, "no-cumulative", false, "calculate probability for HAND specifically (default)")
	fs.BoolVar(&noCumulative, "nc", false, "calculate probability for HAND specifically (shorthand)")
	fs.IntVar(&opts.nsims, "nsims", defaultNSims, "number of simulations")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks a fresh one")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of parallel workers")
	fs.StringVar(&opts.ledger, "ledger", "", "path of a SQLite run ledger to append to")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging (shorthand)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.cumulative && noCumulative {
		return options{}, fmt.Errorf("-cumulative and -no-cumulative are mutually exclusive")
	}
	if opts.workers < 1 {
		return options{}, fmt.Errorf("-workers must be at least 1, got %d", opts.workers)
	}
	return opts, nil
}
