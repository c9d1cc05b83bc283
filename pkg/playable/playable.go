package playable

import (
	"fmt"
	"time"

	"fivecarddraw/pkg/deck"

	"github.com/google/uuid"
)

// Playable is a game that can be driven by a presentation layer
type Playable interface {
	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If Players is empty, assume it's a general statement, otherwise the message will be
// shown like "{player} did X, Y, Z"
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Players []string    `json:"players"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	Winner string         `json:"winner"`
	Scores map[string]int `json:"scores"`
	Rounds int            `json:"rounds"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(player string, format string, a ...interface{}) *LogMessage {
	var players []string
	if player != "" {
		players = []string{player}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(player string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(player, format, a...)}
}

// CardsLogMessage returns a log message that shows cards alongside the text
func CardsLogMessage(player string, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(player, format, a...)
	lm.Cards = append([]deck.Card{}, cards...)

	return lm
}
