package simulation

import (
	"context"
	"log/slog"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
)

type worker struct {
	id         int
	deck       *deck.Deck
	players    int
	target     poker.HandCategory
	cumulative bool
	logger     *slog.Logger
}

// run deals trials showdowns and returns how many of them contain the target.
func (w worker) run(ctx context.Context, trials int) (int, error) {
	count := 0
	logged := false
	for t := 0; t < trials; t++ {
		if t%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		deal, err := w.deck.Deal(w.players)
		if err != nil {
			return 0, err
		}
		holder, ok, err := trialHit(deal, w.target, w.cumulative)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		count++
		if !logged && w.id == 0 {
			w.logHit(deal, holder)
			logged = true
		}
	}
	return count, nil
}

// trialHit evaluates one deal. In cumulative mode the deal hits when any
// category at least as strong as target exists, stopping at the first match.
func trialHit(deal deck.Deal, target poker.HandCategory, cumulative bool) (int, bool, error) {
	if !cumulative {
		return poker.WhoHolds(deal.Pockets, deal.Community, target)
	}
	for _, c := range target.AtLeast() {
		holder, ok, err := poker.WhoHolds(deal.Pockets, deal.Community, c)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return holder, true, nil
		}
	}
	return 0, false, nil
}

func (w worker) logHit(deal deck.Deal, holder int) {
	if !w.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if holder == poker.BoardOnly {
		w.logger.Debug("first hit on the board", "board", deal.Community)
		return
	}
	desc, err := poker.DescribeHand(deal.Pockets[holder], deal.Community)
	if err != nil {
		w.logger.Warn("could not describe hand", "error", err)
		return
	}
	w.logger.Debug("first hit",
		"player", holder,
		"pocket", deal.Pockets[holder],
		"board", deal.Community,
		"hand", desc,
	)
}
