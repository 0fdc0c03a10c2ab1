package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
)

// cancellation is checked once every checkEvery trials.
const checkEvery = 1024

// Simulator estimates hand probabilities by dealing random showdowns.
type Simulator struct {
	workers int
	seed    uint64
	seeded  bool
	logger  *slog.Logger
}

type Status int

const (
	// Computed means Result carries an estimated probability.
	Computed Status = iota
	// NotImplemented means the request was valid but cannot be answered yet.
	NotImplemented
)

func (s Status) String() string {
	switch s {
	case Computed:
		return "computed"
	case NotImplemented:
		return "not implemented"
	}
	return "unknown"
}

// Result is the outcome of ComputeProbability. Probability, Hits, Trials,
// Seed and Workers are only set when Status is Computed.
type Result struct {
	Status      Status
	Players     int
	Hand        poker.HandCategory
	Cumulative  bool
	Hits        int
	Trials      int
	Probability float64
	Seed        uint64
	Workers     int
	Message     string
	Elapsed     time.Duration
}

// Supported reports whether ComputeProbability can answer for the given
// category and cumulative flag.
func Supported(category poker.HandCategory, cumulative bool) bool {
	return category == poker.FullHouse && !cumulative
}

// ComputeProbability runs numSimulations random deals for numPlayers players
// and returns the fraction in which hand appears among any player's cards.
//
// Invalid players or an unknown hand name return an error wrapping
// poker.ErrInvalidArgument. Recognized but unimplemented requests return a
// Result with Status NotImplemented and no error, whatever numSimulations is.
// Otherwise a non-positive numSimulations is also an invalid argument.
func (s Simulator) ComputeProbability(ctx context.Context, numPlayers int, hand string, cumulative bool, numSimulations int) (Result, error) {
	if err := deck.ValidatePlayers(numPlayers); err != nil {
		return Result{}, err
	}
	category, err := poker.ParseHandCategory(hand)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Players:    numPlayers,
		Hand:       category,
		Cumulative: cumulative,
	}
	if !Supported(category, cumulative) {
		res.Status = NotImplemented
		res.Message = "Sorry, " + poker.ErrUnsupported.Error()
		s.logger.Debug("request not implemented", "hand", category.String(), "cumulative", cumulative)
		return res, nil
	}
	if numSimulations <= 0 {
		return Result{}, fmt.Errorf("%w: number of simulations must be positive, got %d", poker.ErrInvalidArgument, numSimulations)
	}

	seed := s.seed
	if !s.seeded {
		seed = deck.NewSeed()
	}
	workers := min(s.workers, numSimulations)
	seeds, err := deck.WorkerSeeds(seed, workers)
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("starting simulation",
		"players", numPlayers,
		"hand", category.String(),
		"trials", numSimulations,
		"workers", workers,
		"seed", seed,
	)
	start := time.Now()

	hits := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		trials := numSimulations / workers
		if i < numSimulations%workers {
			trials++
		}
		w := worker{
			id:         i,
			deck:       deck.NewDeck(seeds[i].Rand()),
			players:    numPlayers,
			target:     category,
			cumulative: cumulative,
			logger:     s.logger,
		}
		g.Go(func() error {
			n, err := w.run(ctx, trials)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			hits[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for _, n := range hits {
		res.Hits += n
	}
	res.Status = Computed
	res.Trials = numSimulations
	res.Probability = float64(res.Hits) / float64(res.Trials)
	res.Seed = seed
	res.Workers = workers
	res.Elapsed = time.Since(start)

	s.logger.Debug("simulation finished", "hits", res.Hits, "trials", res.Trials, "elapsed", res.Elapsed)
	return res, nil
}
