package poker

import (
	"encoding/json"
	"fmt"
)

// Category is the class of a five-card hand, i.e., royal flush
// Categories are declared strongest first, so a lower value beats a higher one.
type Category int

// Constants for category
const (
	RoyalFlush Category = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
	// Invalid is reported for anything other than exactly five cards
	Invalid
)

// Categories lists the valid categories, strongest first
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// RankIndex returns the position of the category on the ladder, 0 is the strongest
// Invalid sorts after HighCard.
func (c Category) RankIndex() int {
	return int(c)
}

// Beats returns true if c is a stronger category than other
func (c Category) Beats(other Category) bool {
	return c.RankIndex() < other.RankIndex()
}

// String returns the display name of a category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	case Invalid:
		return "Invalid"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Code returns a short, fixed-width code for logs
func (c Category) Code() string {
	switch c {
	case RoyalFlush:
		return "ryfl"
	case StraightFlush:
		return "stfl"
	case FourOfAKind:
		return "four"
	case FullHouse:
		return "full"
	case Flush:
		return "flsh"
	case Straight:
		return "strt"
	case ThreeOfAKind:
		return "trio"
	case TwoPair:
		return "twop"
	case OnePair:
		return "pair"
	case HighCard:
		return "high"
	default:
		return "invalid"
	}
}

// MarshalJSON encodes the category as its display name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
