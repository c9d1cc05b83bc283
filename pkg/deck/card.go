package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
// The numeric values are part of the Card.Number() encoding and must not change
type Suit int

// suit constants
const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Suits is every suit in encoding order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the suit name, i.e., "Hearts"
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// Card is an individual playing card
// Cards are values; two cards are the same card when rank and suit match
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// DefaultCard is returned when a card is dealt from an exhausted deck
var DefaultCard = Card{Rank: 2, Suit: Clubs}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace, LowAce:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Name returns the full card name, i.e., "King of Spades"
func (c Card) Name() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "Jack"
	case Queen:
		rank = "Queen"
	case King:
		rank = "King"
	case Ace:
		rank = "Ace"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + " of " + c.Suit.String()
}

// Number returns the integer encoding suit*100+rank, i.e., 209 is the 9 of Diamonds
func (c Card) Number() int {
	return int(c.Suit)*100 + c.Rank
}

// CardFromNumber decodes a value produced by Number()
// The decode is permissive: out-of-range values produce a card that fails Valid()
func CardFromNumber(n int) Card {
	return Card{
		Rank: n % 100,
		Suit: Suit(n / 100),
	}
}

// ImageKey returns the asset key for the card, i.e., "queen_of_clubs"
// Presentation layers resolve card images with this key, so the format is fixed.
func (c Card) ImageKey() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "jack"
	case Queen:
		rank = "queen"
	case King:
		rank = "king"
	case Ace, LowAce:
		rank = "ace"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + "_of_" + strings.ToLower(c.Suit.String())
}

// ImagePath returns the relative path of the card image
func (c Card) ImagePath() string {
	return "cards/images/" + c.ImageKey() + ".png"
}

// Valid returns true if the rank is within [2, 14] and the suit is standard
func (c Card) Valid() bool {
	return c.Rank >= 2 && c.Rank <= Ace && c.Suit.Valid()
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
