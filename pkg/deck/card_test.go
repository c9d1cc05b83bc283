package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
	assert.Equal(t, 1, LowAce)

	assert.Equal(t, Suit(1), Clubs)
	assert.Equal(t, Suit(2), Diamonds)
	assert.Equal(t, Suit(3), Hearts)
	assert.Equal(t, Suit(4), Spades)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
}

func TestSuit_String(t *testing.T) {
	assert.Equal(t, "Clubs", Clubs.String())
	assert.Equal(t, "Diamonds", Diamonds.String())
	assert.Equal(t, "Hearts", Hearts.String())
	assert.Equal(t, "Spades", Spades.String())
	assert.Equal(t, "Unknown", Suit(0).String())
	assert.Equal(t, "Unknown", Suit(5).String())
}

func TestCard_Name(t *testing.T) {
	assert.Equal(t, "King of Spades", CardFromString("13s").Name())
	assert.Equal(t, "Ace of Hearts", CardFromString("14h").Name())
	assert.Equal(t, "Jack of Clubs", CardFromString("11c").Name())
	assert.Equal(t, "Queen of Diamonds", CardFromString("12d").Name())
	assert.Equal(t, "10 of Hearts", CardFromString("10h").Name())
	assert.Equal(t, "2 of Clubs", DefaultCard.Name())
}

func TestCard_Number(t *testing.T) {
	assert.Equal(t, 209, Card{Rank: 9, Suit: Diamonds}.Number())
	assert.Equal(t, 412, Card{Rank: 12, Suit: Spades}.Number())
	assert.Equal(t, 114, Card{Rank: 14, Suit: Clubs}.Number())

	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			assert.Equal(t, card, CardFromNumber(card.Number()))
		}
	}
}

func TestCardFromNumber_Permissive(t *testing.T) {
	a := assert.New(t)

	card := CardFromNumber(101)
	a.Equal(Card{Rank: 1, Suit: Clubs}, card)
	a.False(card.Valid())
	a.Equal("ace_of_clubs", card.ImageKey())

	card = CardFromNumber(999)
	a.Equal(99, card.Rank)
	a.Equal(Suit(9), card.Suit)
	a.False(card.Valid())
	a.Equal("99_of_unknown", card.ImageKey())

	a.True(CardFromNumber(314).Valid())
}

func TestCard_ImageKey(t *testing.T) {
	assert.Equal(t, "ace_of_spades", CardFromString("14s").ImageKey())
	assert.Equal(t, "jack_of_hearts", CardFromString("11h").ImageKey())
	assert.Equal(t, "queen_of_clubs", CardFromString("12c").ImageKey())
	assert.Equal(t, "king_of_diamonds", CardFromString("13d").ImageKey())
	assert.Equal(t, "10_of_clubs", CardFromString("10c").ImageKey())
	assert.Equal(t, "2_of_diamonds", CardFromString("2d").ImageKey())
	assert.Equal(t, "ace_of_hearts", Card{Rank: LowAce, Suit: Hearts}.ImageKey())

	assert.Equal(t, "cards/images/queen_of_clubs.png", CardFromString("12c").ImagePath())
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14c").AceLowRank())
	assert.Equal(t, 13, CardFromString("13c").AceLowRank())
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,13D,14h,10s")
	assert.Equal(t, []Card{
		{Rank: 2, Suit: Clubs},
		{Rank: 13, Suit: Diamonds},
		{Rank: 14, Suit: Hearts},
		{Rank: 10, Suit: Spades},
	}, cards)
	assert.Equal(t, "2c,13d,14h,10s", CardsToString(cards))

	assert.Equal(t, []Card{}, CardsFromString(""))
	assert.Panics(t, func() { CardFromString("15c") })
	assert.Panics(t, func() { CardFromString("2x") })
}
