package fivecarddraw

import (
	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"
)

// Player is one of the two seats in a session
type Player struct {
	name  string
	score int
	hand  deck.Hand
}

func newPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: make(deck.Hand, 0, deck.HandSize),
	}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// SetName changes the player's name
func (p *Player) SetName(name string) {
	p.name = name
}

// Score returns the number of rounds won
func (p *Player) Score() int {
	return p.score
}

// ResetScore sets the score to zero
func (p *Player) ResetScore() {
	p.score = 0
}

// IncrementScore adds a point
func (p *Player) IncrementScore() {
	p.score++
}

// AddScore adjusts the score by delta; the score never drops below zero
func (p *Player) AddScore(delta int) {
	p.score += delta
	if p.score < 0 {
		p.score = 0
	}
}

// Hand returns a copy of the player's cards
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Analyzer classifies the player's current hand
func (p *Player) Analyzer() *poker.HandAnalyzer {
	return poker.New(p.hand)
}

// Category returns the category of the player's current hand
func (p *Player) Category() poker.Category {
	return p.Analyzer().Category()
}
