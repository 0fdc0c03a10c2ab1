package simulation

import (
	"io"
	"log/slog"
	"runtime"
)

type Option func(Simulator) Simulator

// New creates a Simulator. By default it uses one worker per CPU, a fresh
// random seed per run and a logger that discards everything.
func New(opts ...Option) Simulator {
	s := Simulator{
		workers: runtime.NumCPU(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

// WithWorkers sets the number of goroutines trials are spread across.
// Values below one are ignored.
func WithWorkers(n int) Option {
	return func(s Simulator) Simulator {
		if n > 0 {
			s.workers = n
		}
		return s
	}
}

// WithSeed fixes the master seed so runs are reproducible for a given worker count.
func WithSeed(seed uint64) Option {
	return func(s Simulator) Simulator {
		s.seed = seed
		s.seeded = true
		return s
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s Simulator) Simulator {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}
