package poker

import (
	"fmt"
	"strings"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Suit constants (0-3), in deck order.
const (
	Club    Suit = 0 // c
	Diamond Suit = 1 // d
	Heart   Suit = 2 // h
	Spade   Suit = 3 // s
)

// Rank constants for face cards and ace. Ranks are 0-12, two through ace.
const (
	Ten   Rank = 8
	Jack  Rank = 9
	Queen Rank = 10
	King  Rank = 11
	Ace   Rank = 12
)

const (
	rankSymbols = "23456789TJQKA"
	suitSymbols = "cdhs"
)

type Rank uint8

type Suit uint8

func (r Rank) String() string {
	if int(r) >= len(rankSymbols) {
		return "?"
	}
	return rankSymbols[r : r+1]
}

func (s Suit) String() string {
	if int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s : s+1]
}

// Card is a playing card identified by an integer in [0,52).
// Cards are ordered by rank (2 through A) and within each rank by suit
// (club < diamond < heart < spade).
type Card uint8

// NewCard creates a Card from its identifier.
//
// Returns an error wrapping ErrInvalidArgument if id is outside [0,52).
func NewCard(id int) (Card, error) {
	if id < 0 || id >= DeckSize {
		return 0, fmt.Errorf("%w: invalid card %d", ErrInvalidArgument, id)
	}
	return Card(id), nil
}

// MakeCard builds the Card with the given rank and suit.
func MakeCard(r Rank, s Suit) (Card, error) {
	if int(r) >= len(rankSymbols) || int(s) >= len(suitSymbols) {
		return 0, fmt.Errorf("%w: invalid card %d, %d", ErrInvalidArgument, r, s)
	}
	return Card(uint8(r)*4 + uint8(s)), nil
}

// ParseCard converts a two character string such as "Ah" or "2c" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: invalid card string %q", ErrInvalidArgument, s)
	}
	r := strings.IndexByte(rankSymbols, strings.ToUpper(s[:1])[0])
	if r < 0 {
		return 0, fmt.Errorf("%w: invalid rank in %q", ErrInvalidArgument, s)
	}
	su := strings.IndexByte(suitSymbols, strings.ToLower(s[1:])[0])
	if su < 0 {
		return 0, fmt.Errorf("%w: invalid suit in %q", ErrInvalidArgument, s)
	}
	return MakeCard(Rank(r), Suit(su))
}

// ID returns the integer identifier of the Card.
func (c Card) ID() int {
	return int(c)
}

// Rank returns the rank of the Card (0-12: two through ace).
func (c Card) Rank() Rank {
	return Rank(c / 4)
}

// Suit returns the suit of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() Suit {
	return Suit(c % 4)
}

func (c Card) String() string {
	if int(c) >= DeckSize {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}
