package deck

import (
	"sort"
)

// HandSize is the number of cards in a dealt hand
const HandSize = 5

// Hand represents a collection of cards
// A hand is empty before the first deal and holds HandSize cards afterwards.
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Rank != h[j].Rank {
		return h[i].Rank < h[j].Rank
	}

	return h[i].Suit < h[j].Suit
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// DealHand replaces the hand with up to HandSize cards from the deck
func (h *Hand) DealHand(d *Deck) {
	cards := make(Hand, 0, HandSize)
	for i := 0; i < HandSize && d.Remaining() > 0; i++ {
		cards = append(cards, d.Deal())
	}

	*h = cards
}

// SwapCards replaces the cards at the given positions with cards from the deck
// Duplicate and out-of-range positions are ignored. Replacement stops early if the deck
// runs out. The replaced cards go back into the undealt part of the deck at random
// positions once every replacement has been dealt, so a discard can't be dealt straight
// back into the same hand. The replaced cards are returned.
func (h Hand) SwapCards(indices []int, d *Deck) []Card {
	seen := make(map[int]bool, len(indices))
	unique := make([]int, 0, len(indices))
	for _, i := range indices {
		if seen[i] || i < 0 || i >= len(h) {
			continue
		}

		seen[i] = true
		unique = append(unique, i)
	}

	replaced := make([]Card, 0, len(unique))
	for _, i := range unique {
		if d.Remaining() <= 0 {
			break
		}

		replaced = append(replaced, h[i])
		h[i] = d.Deal()
	}

	for _, card := range replaced {
		d.ReturnCardRandomly(card)
	}

	return replaced
}

// SetNumbers replaces the hand with cards decoded from Card.Number() values
func (h *Hand) SetNumbers(numbers []int) {
	cards := make(Hand, len(numbers))
	for i, n := range numbers {
		cards[i] = CardFromNumber(n)
	}

	*h = cards
}

// Numbers returns the Card.Number() encoding of every card
func (h Hand) Numbers() []int {
	numbers := make([]int, len(h))
	for i, card := range h {
		numbers[i] = card.Number()
	}

	return numbers
}

// SortByRank sorts the cards from lowest to highest rank
func (h Hand) SortByRank() {
	sort.Stable(h)
}

// SortByGroup puts the largest rank groups first (quads, trips, pairs), breaking ties
// with the higher rank, i.e., 3c,9d,3s,9h,3h becomes 3c,3s,3h,9d,9h
func (h Hand) SortByGroup() {
	counts := make(map[int]int, len(h))
	for _, c := range h {
		counts[c.Rank]++
	}

	sort.SliceStable(h, func(i, j int) bool {
		ci, cj := counts[h[i].Rank], counts[h[j].Rank]
		if ci != cj {
			return ci > cj
		}

		return h[i].Rank > h[j].Rank
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
