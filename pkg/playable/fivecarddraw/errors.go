package fivecarddraw

import "errors"

// ErrNoActiveRound is returned when a swap is requested before the first deal
var ErrNoActiveRound = errors.New("no round has been dealt")

// ErrSwapWindowClosed is returned when a swap is requested after the swap rounds
var ErrSwapWindowClosed = errors.New("swapping is closed for this round")

// ErrAlreadySwapped is returned when the player has already swapped this round
var ErrAlreadySwapped = errors.New("you already swapped this round")

// ErrTooManyCards is returned when more cards are selected than may be swapped
var ErrTooManyCards = errors.New("too many cards selected")

// ErrInvalidCardIndex is returned when a selected position is not in the hand
var ErrInvalidCardIndex = errors.New("invalid card position")
