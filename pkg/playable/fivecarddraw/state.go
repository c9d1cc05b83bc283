package fivecarddraw

import (
	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"
)

// PlayerState is the read-only view of a player
type PlayerState struct {
	Name     string         `json:"name"`
	Score    int            `json:"score"`
	Hand     []deck.Card    `json:"hand"`
	Category poker.Category `json:"category"`
}

// State is the read-only view of a session for a presentation layer
type State struct {
	Round          int          `json:"round"`
	WasDraw        bool         `json:"wasDraw"`
	RoundWinner    string       `json:"roundWinner,omitempty"`
	CanSwap        bool         `json:"canSwap"`
	CardsRemaining int          `json:"cardsRemaining"`
	Player         *PlayerState `json:"player"`
	Opponent       *PlayerState `json:"opponent"`
}

func newPlayerState(p *Player) *PlayerState {
	return &PlayerState{
		Name:     p.name,
		Score:    p.score,
		Hand:     p.Hand(),
		Category: p.Category(),
	}
}

// State returns a snapshot of the session
func (g *Game) State() *State {
	s := &State{
		Round:          g.round,
		WasDraw:        g.WasDraw(),
		CanSwap:        g.CanSwap(),
		CardsRemaining: g.deck.Remaining(),
		Player:         newPlayerState(g.player),
		Opponent:       newPlayerState(g.opponent),
	}

	if w := g.RoundWinner(); w != nil {
		s.RoundWinner = w.name
	}

	return s
}
