package fivecarddraw

import "fivecarddraw/pkg/poker"

// roundResult is the outcome of comparing both hands once
type roundResult struct {
	winner *Player
	draw   bool
	// the categories at the time of the comparison
	playerCategory   poker.Category
	opponentCategory poker.Category
}

// resolve compares the current hands; it does not touch the scores
func (g *Game) resolve() *roundResult {
	pa := g.player.Analyzer()
	oa := g.opponent.Analyzer()

	result := &roundResult{
		playerCategory:   pa.Category(),
		opponentCategory: oa.Category(),
	}

	switch poker.Compare(pa, oa) {
	case 1:
		result.winner = g.player
	case -1:
		result.winner = g.opponent
	default:
		result.draw = true
	}

	return result
}

// settle makes result the one that counts for the current round
// The point from the result settled before it (if any) is taken back first, so settling
// any number of times leaves exactly one point for the round.
func (g *Game) settle(result *roundResult) {
	if g.applied != nil && g.applied.winner != nil {
		g.applied.winner.AddScore(-1)
	}

	if result.winner != nil {
		result.winner.IncrementScore()
	}

	g.applied = result
}

// current returns the final result once the player swapped, otherwise the provisional one
func (g *Game) current() *roundResult {
	if g.final != nil {
		return g.final
	}

	return g.provisional
}
