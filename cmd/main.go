package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"

	"github.com/luca-patrignani/poker-odds/ledger"
	"github.com/luca-patrignani/poker-odds/simulation"
	"github.com/luca-patrignani/poker-odds/store"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. The
// result line goes to stdout; logs and the spinner go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := newLogger(stderr, opts.verbose)

	simOpts := []simulation.Option{
		simulation.WithWorkers(opts.workers),
		simulation.WithLogger(logger),
	}
	if opts.seed != 0 {
		simOpts = append(simOpts, simulation.WithSeed(opts.seed))
	}
	sim := simulation.New(simOpts...)

	spinner := startSpinner(stderr, fmt.Sprintf("Simulating %s showdowns ...", humanize.Comma(int64(opts.nsims))))
	res, err := sim.ComputeProbability(ctx, opts.players, opts.hand, opts.cumulative, opts.nsims)
	stopSpinner(spinner)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return exitFailure
	}

	if opts.ledger != "" {
		if err := recordRun(ctx, opts.ledger, res, logger); err != nil {
			logger.Error("could not record run", "ledger", opts.ledger, "error", err)
			return exitFailure
		}
	}

	switch res.Status {
	case simulation.NotImplemented:
		fmt.Fprintln(stdout, res.Message)
	case simulation.Computed:
		logger.Info("simulation finished",
			"hits", humanize.Comma(int64(res.Hits)),
			"trials", humanize.Comma(int64(res.Trials)),
			"seed", res.Seed,
			"elapsed", res.Elapsed.String(),
		)
		fmt.Fprintln(stdout, formatPercent(res.Probability))
	}
	return exitOK
}

func recordRun(ctx context.Context, path string, res simulation.Result, logger *slog.Logger) error {
	db, err := store.NewSQLiteDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	bc, err := db.OpenLedger(ctx)
	if err != nil {
		return err
	}
	block, err := db.Record(ctx, bc, ledger.Run{
		Players:     res.Players,
		Hand:        res.Hand.String(),
		Cumulative:  res.Cumulative,
		Status:      res.Status.String(),
		Hits:        res.Hits,
		Trials:      res.Trials,
		Probability: res.Probability,
		Seed:        res.Seed,
		Workers:     res.Workers,
	}, map[string]string{"elapsed": res.Elapsed.String()})
	if err != nil {
		return err
	}
	logger.Info("run recorded", "block", block.Index, "run_id", block.Metadata.RunID)
	return nil
}
