package poker

import (
	"testing"

	"fivecarddraw/internal/rng"
	"fivecarddraw/pkg/deck"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
)

func TestCompareHands(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
		reason   string
	}{
		{"14s,13s,12s,11s,10s", "9h,13h,12h,11h,10h", 1, "royal flush beats straight flush"},
		{"2c,3c,3d,3h,3s", "7h,7c,7s,3d,3h", 1, "quads beat full house"},
		{"2h,3c,4d,5s,14h", "2c,3d,4h,5c,6s", -1, "wheel is the lowest straight"},
		{"14h,9c,7d,4s,2h", "13h,12c,11d,9s,8h", 1, "high card decided by the primary value"},
		{"14h,9c,7d,4s,2h", "14c,9d,7h,4d,3c", -1, "high card decided by the last kicker"},
		{"14h,9c,7d,4s,2h", "14c,9d,7h,4d,2c", 0, "identical ranks draw"},
		{"8c,8d,14h,5s,2h", "8h,8s,13c,12d,11h", 1, "pair kicker"},
		{"8c,8d,8h,5s,2h", "8c,8d,8s,5d,3h", -1, "trips kicker"},
		{"2h,9h,4h,11h,13h", "2d,9d,4d,11d,13d", 0, "same flush ranks draw"},
		{"9c,8d,7h,6s,5h", "9d,8c,7s,6h,5c", 0, "same straight draws"},
		{"13c,13d,5h,5s,9c", "13h,13s,6h,6s,2c", 1, "two pair compares the kicker before the lower pair"},
	}

	for _, test := range tests {
		a := deck.CardsFromString(test.a)
		b := deck.CardsFromString(test.b)
		assert.Equal(t, test.expected, CompareHands(a, b), test.reason)
		assert.Equal(t, -test.expected, CompareHands(b, a), test.reason)
	}
}

func toReference(t *testing.T, cards []deck.Card) *[5]poker.Card {
	t.Helper()

	var hand [5]poker.Card
	for i, c := range cards {
		var suit poker.Suit
		switch c.Suit {
		case deck.Clubs:
			suit = poker.Club
		case deck.Diamonds:
			suit = poker.Diamond
		case deck.Hearts:
			suit = poker.Heart
		case deck.Spades:
			suit = poker.Spade
		}

		card, err := poker.MakeCard(suit, poker.Rank(c.AceLowRank()))
		if err != nil {
			t.Fatal(err)
		}

		hand[i] = card
	}

	return &hand
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Compare agrees with an independent evaluator on every pairing except two pairs that
// share their higher pair. Those compare the remaining ranks highest first, so the
// kicker can outrank the lower pair.
func TestCompare_AgreesWithReferenceEvaluator(t *testing.T) {
	gen := rng.NewSeeded(2024)

	for i := 0; i < 2000; i++ {
		d := deck.New(gen)
		var h1, h2 deck.Hand
		h1.DealHand(d)
		h2.DealHand(d)

		a1, a2 := New(h1), New(h2)
		if a1.Category() == TwoPair && a2.Category() == TwoPair && a1.PrimaryValue() == a2.PrimaryValue() {
			continue
		}

		expected := sign(int(poker.Eval5(toReference(t, h1))) - int(poker.Eval5(toReference(t, h2))))
		if !assert.Equal(t, expected, Compare(a1, a2), "%s vs %s", h1, h2) {
			return
		}
	}
}

func TestCompare_Totality(t *testing.T) {
	gen := rng.NewSeeded(7)

	hands := make([]*HandAnalyzer, 0, 60)
	for len(hands) < 60 {
		d := deck.New(gen)
		for d.CanDeal(deck.HandSize) {
			var h deck.Hand
			h.DealHand(d)
			hands = append(hands, New(h))
		}
	}

	for _, a := range hands {
		assert.Equal(t, 0, Compare(a, a))
		for _, b := range hands {
			ab := Compare(a, b)
			assert.Equal(t, -ab, Compare(b, a))

			for _, c := range hands {
				if ab >= 0 && Compare(b, c) >= 0 {
					assert.True(t, Compare(a, c) >= 0)
				}
			}
		}
	}
}
