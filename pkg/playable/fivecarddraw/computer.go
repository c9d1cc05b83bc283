package fivecarddraw

import (
	"sort"

	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"
)

// chooseComputerDiscard picks at most one card for the computer to swap
// The rules are checked in order and the first one that picks a card wins:
//  1. four cards of one suit: throw the odd suit (chase the flush)
//  2. four ranks in a row: throw a card that isn't next to any rank in the hand
//  3. three of a kind: throw a card outside the trips (chase the full house or quads)
//  4. by category: pair and trips throw the lowest kicker, two pair throws the odd card,
//     high card throws the lowest card; anything better stands pat
//
// It only ever looks at its own hand and one card ahead. Changing the order changes how
// well the computer plays.
func chooseComputerDiscard(hand deck.Hand) (int, bool) {
	if len(hand) != deck.HandSize {
		return -1, false
	}

	analyzer := poker.New(hand)
	category := analyzer.Category()
	keyValue := analyzer.PrimaryValue()

	rankCount := make(map[int]int)
	suitCount := make(map[deck.Suit]int)
	for _, card := range hand {
		rankCount[card.Rank]++
		suitCount[card.Suit]++
	}

	if i, ok := flushDraw(hand, suitCount); ok {
		return i, true
	}

	if i, ok := straightDraw(hand); ok {
		return i, true
	}

	if category == poker.ThreeOfAKind {
		for i, card := range hand {
			if c := rankCount[card.Rank]; c != 3 && c != 2 {
				return i, true
			}
		}

		for i, card := range hand {
			if card.Rank != keyValue {
				return i, true
			}
		}
	}

	swapIndex := -1
	switch category {
	case poker.OnePair, poker.ThreeOfAKind:
		for i, card := range hand {
			if card.Rank != keyValue && (swapIndex == -1 || card.Rank < hand[swapIndex].Rank) {
				swapIndex = i
			}
		}
	case poker.TwoPair:
		for i, card := range hand {
			if rankCount[card.Rank] == 1 {
				swapIndex = i
				break
			}
		}
	case poker.HighCard:
		for i, card := range hand {
			if swapIndex == -1 || card.Rank < hand[swapIndex].Rank {
				swapIndex = i
			}
		}
	}

	return swapIndex, swapIndex != -1
}

func flushDraw(hand deck.Hand, suitCount map[deck.Suit]int) (int, bool) {
	for _, suit := range deck.Suits {
		if suitCount[suit] != 4 {
			continue
		}

		for i, card := range hand {
			if card.Suit != suit {
				return i, true
			}
		}
	}

	return -1, false
}

// straightDraw looks for four consecutive ranks, where a repeated rank neither extends
// nor breaks the run. A card is thrown only if it isn't within one rank of any rank in
// the hand, its own included, so a run never breaks a straight or a straight flush.
func straightDraw(hand deck.Hand) (int, bool) {
	values := make([]int, len(hand))
	for i, card := range hand {
		values[i] = card.Rank
	}
	sort.Ints(values)

	consecutive := 1
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1]+1 {
			consecutive++
		} else if values[i] != values[i-1] {
			consecutive = 1
		}

		if consecutive >= 4 {
			return isolatedCard(hand, values)
		}
	}

	return -1, false
}

func isolatedCard(hand deck.Hand, values []int) (int, bool) {
	for i, card := range hand {
		adjacent := false
		for _, value := range values {
			if diff := card.Rank - value; diff >= -1 && diff <= 1 {
				adjacent = true
				break
			}
		}

		if !adjacent {
			return i, true
		}
	}

	return -1, false
}
