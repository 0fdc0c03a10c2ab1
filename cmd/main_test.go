package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luca-patrignani/poker-odds/store"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.players != 2 || opts.hand != "full house" || opts.cumulative || opts.nsims != 100000 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.workers < 1 {
		t.Fatalf("expected at least one worker, got %d", opts.workers)
	}
}

func TestParseArgsLongAndShortFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-n", "5", "--hand", "two pair", "-c", "--nsims", "10"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.players != 5 || opts.hand != "two pair" || !opts.cumulative || opts.nsims != 10 {
		t.Fatalf("unexpected options: %+v", opts)
	}

	opts, err = parseArgs([]string{"--players=3", "-nc"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.players != 3 || opts.cumulative {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestParseArgsCumulativeExclusive(t *testing.T) {
	if _, err := parseArgs([]string{"--cumulative", "--no-cumulative"}, io.Discard); err == nil {
		t.Fatal("expected error for mutually exclusive flags")
	}
	if _, err := parseArgs([]string{"-c", "-nc"}, io.Discard); err == nil {
		t.Fatal("expected error for mutually exclusive shorthand flags")
	}
}

func TestParseArgsInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--players", "two"},
		{"--unknown"},
		{"extra"},
		{"--workers", "0"},
	} {
		if _, err := parseArgs(args, io.Discard); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		0.0436:  "4.36%",
		0.04812: "4.81%",
		0.05:    "5.0%",
		0.048:   "4.8%",
		0:       "0.0%",
		1:       "100.0%",
	}
	for p, want := range cases {
		if got := formatPercent(p); got != want {
			t.Errorf("formatPercent(%v): expected %s, got %s", p, want, got)
		}
	}
}

func TestRunComputesPercentage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--nsims", "2000", "--seed", "7", "--workers", "2"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	out := strings.TrimSpace(stdout.String())
	if strings.Count(stdout.String(), "\n") != 1 || !strings.HasSuffix(out, "%") {
		t.Fatalf("expected a single percentage line, got %q", stdout.String())
	}
}

func TestRunNotImplemented(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--hand", "two pair", "--nsims", "1000"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "have not yet been implemented") {
		t.Fatalf("expected not implemented message, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "%") {
		t.Fatalf("expected no percentage, got %q", stdout.String())
	}
}

func TestRunNotImplementedWithoutSimulations(t *testing.T) {
	var stdout bytes.Buffer
	code := run(context.Background(), []string{"--hand", "two pair", "--nsims", "0"}, &stdout, io.Discard)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "have not yet been implemented") {
		t.Fatalf("expected not implemented message, got %q", stdout.String())
	}
}

func TestRunInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"--players", "-1"},
		{"--hand", "Full House"},
		{"--nsims", "0"},
	} {
		var stdout bytes.Buffer
		code := run(context.Background(), args, &stdout, io.Discard)
		if code != exitFailure {
			t.Fatalf("%v: expected exit %d, got %d", args, exitFailure, code)
		}
		if stdout.Len() != 0 {
			t.Fatalf("%v: expected no output, got %q", args, stdout.String())
		}
	}
	if code := run(context.Background(), []string{"-c", "-nc"}, io.Discard, io.Discard); code != exitUsage {
		t.Fatalf("expected exit %d for usage error, got %d", exitUsage, code)
	}
}

func TestRunRecordsLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	for i := 0; i < 2; i++ {
		code := run(context.Background(), []string{"--nsims", "500", "--seed", "3", "--ledger", path}, io.Discard, io.Discard)
		if code != exitOK {
			t.Fatalf("run %d: expected exit 0, got %d", i, code)
		}
	}

	db, err := store.NewSQLiteDB(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	bc, err := db.OpenLedger(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if bc.Len() != 3 {
		t.Fatalf("expected genesis plus 2 runs, got %d blocks", bc.Len())
	}
	latest, err := bc.GetLatest()
	if err != nil {
		t.Fatal(err)
	}
	if latest.Run.Trials != 500 || latest.Run.Seed != 3 || latest.Run.Hand != "full house" {
		t.Fatalf("unexpected recorded run: %+v", latest.Run)
	}
}
