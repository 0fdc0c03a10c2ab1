package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// formatPercent renders a probability as a percentage rounded to two
// decimals, keeping one decimal for whole values ("4.36%", "5.0%").
func formatPercent(p float64) string {
	s := decimal.NewFromFloat(p * 100).RoundBank(2).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	// Create a new slog handler with the PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(w).WithLevel(level))
	return slog.New(handler)
}

// startSpinner shows a spinner on w while the simulation runs. It only
// draws on a terminal, so output captured by tests or pipes stays clean.
func startSpinner(w io.Writer, text string) *pterm.SpinnerPrinter {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(w).WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return nil
	}
	return spinner
}

func stopSpinner(spinner *pterm.SpinnerPrinter) {
	if spinner != nil {
		_ = spinner.Stop()
	}
}
