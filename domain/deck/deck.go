package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/luca-patrignani/poker-odds/domain/poker"
)

// CommunitySize is the number of shared cards on a full board.
const CommunitySize = 5

// MaxPlayers is the largest table a single deck can deal a full board to.
const MaxPlayers = (poker.DeckSize - CommunitySize) / 2

// Deck samples cards without replacement from the implicit set {0,...,51}.
type Deck struct {
	rng           *rand.Rand
	cards         []int
	lastDrawnCard int
}

// Deal is one simulated showdown: a pocket pair per player and a full board.
type Deal struct {
	Pockets   [][2]poker.Card
	Community [5]poker.Card
}

// NewDeck creates a 52 card deck drawing from rng. The deck never consults
// a global random source, so equal seeds produce equal deals.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		rng:   rng,
		cards: make([]int, poker.DeckSize),
	}
	for i := range d.cards {
		d.cards[i] = i
	}
	return d
}

// Shuffle returns every drawn card to the deck.
func (d *Deck) Shuffle() {
	d.lastDrawnCard = 0
}

// Remaining returns the number of cards that can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

// DrawCard draws a card uniformly at random among the cards not yet drawn
// since the last Shuffle.
func (d *Deck) DrawCard() (poker.Card, error) {
	if d.Remaining() == 0 {
		return 0, fmt.Errorf("deck is empty")
	}
	j := d.lastDrawnCard + d.rng.IntN(d.Remaining())
	d.cards[d.lastDrawnCard], d.cards[j] = d.cards[j], d.cards[d.lastDrawnCard]
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return poker.NewCard(c)
}

// Deal shuffles the deck and draws 5 + 2*numPlayers distinct cards. The
// first 2*numPlayers cards are split into consecutive pairs, one per player
// in draw order; the last five form the community board.
//
// Returns an error wrapping poker.ErrInvalidArgument if numPlayers is
// negative or the deck cannot cover that many players.
func (d *Deck) Deal(numPlayers int) (Deal, error) {
	if err := ValidatePlayers(numPlayers); err != nil {
		return Deal{}, err
	}
	d.Shuffle()

	deal := Deal{Pockets: make([][2]poker.Card, numPlayers)}
	for i := range deal.Pockets {
		for j := range deal.Pockets[i] {
			c, err := d.DrawCard()
			if err != nil {
				return Deal{}, err
			}
			deal.Pockets[i][j] = c
		}
	}
	for i := range deal.Community {
		c, err := d.DrawCard()
		if err != nil {
			return Deal{}, err
		}
		deal.Community[i] = c
	}
	return deal, nil
}

// ValidatePlayers checks that numPlayers pockets plus a full board fit in one deck.
func ValidatePlayers(numPlayers int) error {
	if numPlayers < 0 {
		return fmt.Errorf("%w: number of players must be at least 0, got %d", poker.ErrInvalidArgument, numPlayers)
	}
	if numPlayers > MaxPlayers {
		return fmt.Errorf("%w: number of players must be at most %d, got %d", poker.ErrInvalidArgument, MaxPlayers, numPlayers)
	}
	return nil
}

// Cards returns every card of the deal in draw order.
func (d Deal) Cards() []poker.Card {
	out := make([]poker.Card, 0, 2*len(d.Pockets)+CommunitySize)
	for _, p := range d.Pockets {
		out = append(out, p[0], p[1])
	}
	return append(out, d.Community[:]...)
}
