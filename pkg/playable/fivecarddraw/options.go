package fivecarddraw

import (
	"errors"

	"fivecarddraw/pkg/deck"
)

// Options provides options for a five-card-draw session
type Options struct {
	PlayerName   string
	OpponentName string
	// SwapRounds is the last round in which the player may swap cards
	SwapRounds int
	// MaxSwapCards is how many cards the player may swap in one go
	MaxSwapCards int
	// Seed makes the shuffles reproducible; 0 uses a crypto-random source
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		PlayerName:   "You",
		OpponentName: "Computer",
		SwapRounds:   4,
		MaxSwapCards: 3,
	}
}

func (o Options) validate() error {
	if o.PlayerName == "" || o.OpponentName == "" {
		return errors.New("both players need a name")
	}

	if o.PlayerName == o.OpponentName {
		return errors.New("the players must have different names")
	}

	if o.SwapRounds < 0 {
		return errors.New("swap rounds must not be negative")
	}

	if o.MaxSwapCards < 0 || o.MaxSwapCards > deck.HandSize {
		return errors.New("max swap cards must be between 0 and 5")
	}

	if o.Seed < 0 {
		return errors.New("seed cannot be < 0")
	}

	return nil
}
