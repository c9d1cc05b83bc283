package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"fivecarddraw/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
// Cards before the cursor have been dealt. Dealing only moves the cursor, so cards that
// come back from a swap can be mixed into the undealt part without touching what was dealt.
type Deck struct {
	cards []Card
	dealt int
	rng   rng.Generator
}

// New returns a full, shuffled deck
// If gen is nil, the deck shuffles with the crypto generator
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	d.Reset()
	return d
}

// NewUnshuffled returns a deck in suit-then-rank order (2c,3c,...,14s)
// This should only be used by tests
func NewUnshuffled(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.cards = cards
	d.dealt = 0
}

// Reset rebuilds all 52 cards, shuffles them, and moves the cursor back to the top
func (d *Deck) Reset() {
	d.buildDeck()
	d.shuffle()
}

// Fisher-Yates, every permutation is equally likely
func (d *Deck) shuffle() {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal will deal the next card
// If the deck is exhausted, DefaultCard is returned and the cursor does not move.
// Callers must check Remaining() or CanDeal() before trusting the result.
func (d *Deck) Deal() Card {
	if d.dealt >= len(d.cards) {
		return DefaultCard
	}

	card := d.cards[d.dealt]
	d.dealt++

	return card
}

// Remaining returns the number of undealt cards
// This is Len() - Dealt(), not Size - Dealt(): ReturnCardRandomly grows the deck, so after
// a swap the deck holds more than Size cards while Remaining is unchanged.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.dealt
}

// CanDeal returns true if there are {want} undealt cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return d.Remaining() >= want
}

// Dealt returns the position of the cursor
func (d *Deck) Dealt() int {
	return d.dealt
}

// Len returns the number of cards tracked by the deck, dealt or not
func (d *Deck) Len() int {
	return len(d.cards)
}

// Undealt returns a copy of the cards that have not been dealt, in deal order
func (d *Deck) Undealt() []Card {
	cards := make([]Card, d.Remaining())
	copy(cards, d.cards[d.dealt:])

	return cards
}

// ReturnCardRandomly inserts the card at a random position among the undealt cards
// The position is uniform in [dealt, len], so a returned card is never placed in the
// dealt region.
func (d *Deck) ReturnCardRandomly(card Card) {
	if len(d.cards) == 0 {
		d.cards = append(d.cards, card)
		return
	}

	pos := d.dealt + d.rng.Intn(len(d.cards)-d.dealt+1)

	d.cards = append(d.cards, Card{})
	copy(d.cards[pos+1:], d.cards[pos:])
	d.cards[pos] = card
}

// HashCode returns a SHA1 hash code of the deck order.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
