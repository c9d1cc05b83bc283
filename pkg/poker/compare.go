package poker

import "fivecarddraw/pkg/deck"

// Compare compares two analyzed hands and returns:
// 1 if a wins, -1 if b wins, 0 if tie
// The category decides first, then the primary value, then the secondary values
// position by position.
func Compare(a, b *HandAnalyzer) int {
	if ra, rb := a.RankIndex(), b.RankIndex(); ra != rb {
		if ra < rb {
			return 1
		}

		return -1
	}

	if pa, pb := a.PrimaryValue(), b.PrimaryValue(); pa != pb {
		if pa > pb {
			return 1
		}

		return -1
	}

	sa, sb := a.SecondaryValues(), b.SecondaryValues()
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if sa[i] > sb[i] {
			return 1
		}

		if sa[i] < sb[i] {
			return -1
		}
	}

	return 0
}

// CompareHands analyzes two hands and compares them, see Compare
func CompareHands(hand1, hand2 []deck.Card) int {
	return Compare(New(hand1), New(hand2))
}
