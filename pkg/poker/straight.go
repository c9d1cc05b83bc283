package poker

import (
	"fivecarddraw/pkg/deck"
)

// straightHigh returns the high end of a five-card run, or 0 if the ranks don't form one
// ranks must be sorted from highest to lowest. A-2-3-4-5 is the only run where the ace
// plays low, and its high end is 5.
func straightHigh(ranks []int) int {
	if len(ranks) != deck.HandSize {
		return 0
	}

	if isRun(ranks) {
		return ranks[0]
	}

	if ranks[0] != deck.Ace {
		return 0
	}

	lowAce := make([]int, 0, len(ranks))
	lowAce = append(lowAce, ranks[1:]...)
	lowAce = append(lowAce, deck.LowAce)
	if isRun(lowAce) {
		return lowAce[0]
	}

	return 0
}

func isRun(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] != ranks[i]+1 {
			return false
		}
	}

	return true
}
