package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// BoardOnly is reported by WhoHolds when the community cards alone make the hand.
const BoardOnly = -1

// HandExists reports whether category is achievable by the community cards
// alone or by any single player combining their pocket with the community.
//
// Only FullHouse is implemented; any other category returns an error
// wrapping ErrUnsupported.
func HandExists(pockets [][2]Card, community [5]Card, category HandCategory) (bool, error) {
	_, ok, err := WhoHolds(pockets, community, category)
	return ok, err
}

// WhoHolds is like HandExists but also returns who holds the hand: the index
// of the first qualifying player, or BoardOnly. The returned index is only
// meaningful when ok is true.
func WhoHolds(pockets [][2]Card, community [5]Card, category HandCategory) (player int, ok bool, err error) {
	switch category {
	case FullHouse:
		player, ok = fullHouseHolder(pockets, community)
		return player, ok, nil
	default:
		if !category.valid() {
			return 0, false, fmt.Errorf("%w: unknown hand category %d", ErrInvalidArgument, uint8(category))
		}
		return 0, false, fmt.Errorf("%w: %s", ErrUnsupported, category)
	}
}

func fullHouseHolder(pockets [][2]Card, community [5]Card) (int, bool) {
	board := rankCounter(community[:]...)
	// Five cards make a full house only as three of one rank and two of another.
	if board.Max() == 3 && board.Min() == 2 {
		return BoardOnly, true
	}
	for i, pocket := range pockets {
		counts := board.Clone()
		counts.Increment(pocket[0].Rank())
		counts.Increment(pocket[1].Rank())
		if hasFullHouse(counts) {
			return i, true
		}
	}
	return 0, false
}

// hasFullHouse reports whether some rank appears at least three times and
// some rank appears exactly twice. Four of a kind plus a pair qualifies; two
// sets of three do not, since no rank is held exactly twice.
func hasFullHouse(counts Counter[Rank]) bool {
	trips, pair := false, false
	for _, n := range counts.counts {
		switch {
		case n >= 3:
			trips = true
		case n == 2:
			pair = true
		}
	}
	return trips && pair
}

// DescribeHand returns a human-readable description of the best hand made by
// pocket and community, e.g. for logging a simulated showdown.
func DescribeHand(pocket [2]Card, community [5]Card) (string, error) {
	c, err := makeFinalHand(pocket, community)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

func makeFinalHand(pocket [2]Card, community [5]Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	for i, c := range community {
		card, err := toEvalCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	for i, c := range pocket {
		card, err := toEvalCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid player card: %w", err)
		}
		finalHand[5+i] = card
	}
	return finalHand, nil
}

// toEvalCard converts to the evaluator's representation: suits share the
// club, diamond, heart, spade order and ranks run ace=1 through king=13.
func toEvalCard(c Card) (poker.Card, error) {
	rank := int(c.Rank()) + 2
	if c.Rank() == Ace {
		rank = 1
	}
	return poker.MakeCard(poker.Suit(c.Suit()), poker.Rank(rank))
}
