package simulation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
)

func TestComputeProbabilityInvalidPlayers(t *testing.T) {
	s := New(WithSeed(1))
	for _, n := range []int{-1, deck.MaxPlayers + 1} {
		_, err := s.ComputeProbability(context.Background(), n, "full house", false, 100)
		if !errors.Is(err, poker.ErrInvalidArgument) {
			t.Fatalf("players %d: expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestComputeProbabilityUnknownHand(t *testing.T) {
	s := New(WithSeed(1))
	_, err := s.ComputeProbability(context.Background(), 2, "full hose", false, 100)
	if !errors.Is(err, poker.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestComputeProbabilityInvalidSimulations(t *testing.T) {
	s := New(WithSeed(1))
	_, err := s.ComputeProbability(context.Background(), 2, "full house", false, 0)
	if !errors.Is(err, poker.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestComputeProbabilityNotImplemented(t *testing.T) {
	s := New(WithSeed(1))
	res, err := s.ComputeProbability(context.Background(), 2, "two pair", false, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != NotImplemented {
		t.Fatalf("expected not implemented, got %s", res.Status)
	}
	if res.Message == "" {
		t.Fatal("expected an explanatory message")
	}

	res, err = s.ComputeProbability(context.Background(), 2, "full house", true, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != NotImplemented {
		t.Fatalf("cumulative: expected not implemented, got %s", res.Status)
	}
}

func TestComputeProbabilityNotImplementedIgnoresSimulations(t *testing.T) {
	s := New(WithSeed(1))
	res, err := s.ComputeProbability(context.Background(), 2, "two pair", false, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Status != NotImplemented {
		t.Fatalf("expected not implemented, got %s", res.Status)
	}
}

func TestComputeProbabilityReproducible(t *testing.T) {
	s := New(WithSeed(2024), WithWorkers(3))
	a, err := s.ComputeProbability(context.Background(), 4, "full house", false, 20000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.ComputeProbability(context.Background(), 4, "full house", false, 20000)
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != Computed || a.Hits != b.Hits {
		t.Fatalf("expected equal hits, got %d and %d", a.Hits, b.Hits)
	}
	if a.Trials != 20000 || a.Workers != 3 || a.Seed != 2024 {
		t.Fatalf("unexpected result metadata: %+v", a)
	}
}

func TestComputeProbabilityMoreWorkersThanTrials(t *testing.T) {
	s := New(WithSeed(5), WithWorkers(8))
	res, err := s.ComputeProbability(context.Background(), 2, "full house", false, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Workers != 3 || res.Trials != 3 {
		t.Fatalf("expected 3 workers and 3 trials, got %d and %d", res.Workers, res.Trials)
	}
	if res.Probability < 0 || res.Probability > 1 {
		t.Fatalf("probability out of range: %f", res.Probability)
	}
}

func TestComputeProbabilityNoPlayers(t *testing.T) {
	s := New(WithSeed(9))
	res, err := s.ComputeProbability(context.Background(), 0, "full house", false, 50000)
	if err != nil {
		t.Fatal(err)
	}
	// A five card board is a full house about 0.14% of the time.
	if res.Probability > 0.005 {
		t.Fatalf("board-only probability too high: %f", res.Probability)
	}
}

func TestComputeProbabilityConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical check")
	}
	s := New(WithSeed(42))
	res, err := s.ComputeProbability(context.Background(), 2, "full house", false, 200000)
	if err != nil {
		t.Fatal(err)
	}
	// About 4.7% of two-player showdowns contain a full house.
	if math.Abs(res.Probability-0.047) > 0.005 {
		t.Fatalf("expected about 0.047, got %f", res.Probability)
	}
}

func TestComputeProbabilityCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(WithSeed(1))
	_, err := s.ComputeProbability(ctx, 2, "full house", false, 100000)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTrialHitCumulativeNeedsStrongerCategories(t *testing.T) {
	d := deck.NewDeck(deck.Seed{1, 1}.Rand())
	deal, err := d.Deal(2)
	if err != nil {
		t.Fatal(err)
	}
	// Royal flush is the first category tried and has no evaluator yet.
	_, _, err = trialHit(deal, poker.FullHouse, true)
	if !errors.Is(err, poker.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
