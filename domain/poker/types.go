package poker

import (
	"fmt"
	"strings"
)

// HandCategory is a poker hand category.
type HandCategory uint8

const (
	RoyalFlush HandCategory = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	NoPair
	HighCard
)

type categoryInfo struct {
	name           string
	cumulativeRank int
}

// "no pair" and "high card" name the same strength and share a rank.
var categories = [...]categoryInfo{
	RoyalFlush:    {"royal flush", 0},
	StraightFlush: {"straight flush", 1},
	FourOfAKind:   {"four of a kind", 2},
	FullHouse:     {"full house", 3},
	Flush:         {"flush", 4},
	Straight:      {"straight", 5},
	ThreeOfAKind:  {"three of a kind", 6},
	TwoPair:       {"two pair", 7},
	OnePair:       {"one pair", 8},
	NoPair:        {"no pair", 9},
	HighCard:      {"high card", 9},
}

// HandCategories returns every recognized category, strongest first.
func HandCategories() []HandCategory {
	out := make([]HandCategory, len(categories))
	for i := range categories {
		out[i] = HandCategory(i)
	}
	return out
}

// ParseHandCategory looks up a category by its exact (case-sensitive) name,
// e.g. "full house" or "two pair".
func ParseHandCategory(name string) (HandCategory, error) {
	for i, info := range categories {
		if info.name == name {
			return HandCategory(i), nil
		}
	}
	names := make([]string, len(categories))
	for i, info := range categories {
		names[i] = fmt.Sprintf("%q", info.name)
	}
	return 0, fmt.Errorf("%w: hand must be one of: %s", ErrInvalidArgument, strings.Join(names, ", "))
}

func (h HandCategory) valid() bool {
	return int(h) < len(categories)
}

func (h HandCategory) String() string {
	if !h.valid() {
		return fmt.Sprintf("HandCategory(%d)", uint8(h))
	}
	return categories[h].name
}

// CumulativeRank orders categories by strength, 0 being the strongest.
// Distinct categories may share a rank.
func (h HandCategory) CumulativeRank() int {
	if !h.valid() {
		return -1
	}
	return categories[h].cumulativeRank
}

// AtLeast returns the categories whose cumulative rank is at or above the
// strength of h, strongest first.
func (h HandCategory) AtLeast() []HandCategory {
	var out []HandCategory
	for _, c := range HandCategories() {
		if c.CumulativeRank() <= h.CumulativeRank() {
			out = append(out, c)
		}
	}
	return out
}
