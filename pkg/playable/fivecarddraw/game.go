package fivecarddraw

import (
	"fmt"

	"fivecarddraw/internal/rng"
	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/playable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const logChanSize = 256

// Game is a session of five-card draw between the player and the computer
// A session is a run of rounds from a single shuffle; it ends when the deck can no
// longer deal two hands. Game is not safe for concurrent use.
type Game struct {
	id       string
	options  Options
	logger   logrus.FieldLogger
	logChan  chan []*playable.LogMessage
	deck     *deck.Deck
	player   *Player
	opponent *Player

	round      int
	hasSwapped bool

	// provisional is the result right after the deal, final is the result after the
	// swap, and applied is the one currently reflected in the scores
	provisional *roundResult
	final       *roundResult
	applied     *roundResult
}

var _ playable.Playable = (*Game)(nil)

// NewGame returns a new session, shuffled and ready for the first deal
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	g := &Game{
		id:       id,
		options:  options,
		logger:   logger.WithField("session", id),
		logChan:  make(chan []*playable.LogMessage, logChanSize),
		deck:     deck.New(rng.New(options.Seed)),
		player:   newPlayer(options.PlayerName),
		opponent: newPlayer(options.OpponentName),
	}

	return g, nil
}

// ID returns the session id
func (g *Game) ID() string {
	return g.id
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Five Card Draw"
}

// LogChan returns the channel the game sends player-facing log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// StartGame starts a fresh session: scores are zeroed and the deck is reshuffled
func (g *Game) StartGame() {
	g.player.ResetScore()
	g.opponent.ResetScore()
	g.player.hand = g.player.hand[:0]
	g.opponent.hand = g.opponent.hand[:0]
	g.deck.Reset()
	g.round = 0
	g.hasSwapped = false
	g.provisional = nil
	g.final = nil
	g.applied = nil

	g.logger.Info("new game started")
	g.sendLog(playable.SimpleLogMessageSlice("", "New game of %s started", g.Name()))
}

// DealNextRound deals five cards to each player and scores the deal
// It returns false, changing nothing, if the deck can't deal both hands.
func (g *Game) DealNextRound() bool {
	if !g.deck.CanDeal(2 * deck.HandSize) {
		g.logger.WithField("remaining", g.deck.Remaining()).Debug("not enough cards to deal")
		return false
	}

	g.player.hand.DealHand(g.deck)
	g.opponent.hand.DealHand(g.deck)
	g.round++
	g.hasSwapped = false
	g.final = nil
	g.applied = nil

	g.provisional = g.resolve()
	g.settle(g.provisional)

	g.logResult("dealt")
	g.sendLog(playable.SimpleLogMessageSlice("", "Round %d dealt", g.round))

	return true
}

// PlayerSwapCards swaps the cards at the given hand positions (0-4) for new ones
// The computer then gets its swap and the round is scored again with the new hands.
// A swap is only allowed once per round, in the first Options.SwapRounds rounds, and for
// at most Options.MaxSwapCards cards. Selecting no cards is allowed and uses up the swap.
// A rejected swap returns an error and changes nothing, so callers that don't care why
// may ignore it.
func (g *Game) PlayerSwapCards(indices []int) error {
	if err := g.canSwap(indices); err != nil {
		g.logger.WithError(err).WithField("indices", indices).Debug("swap rejected")
		return err
	}

	replaced := g.player.hand.SwapCards(indices, g.deck)
	g.hasSwapped = true
	g.logger.WithFields(logrus.Fields{
		"round":    g.round,
		"replaced": deck.CardsToString(replaced),
	}).Debug("player swapped")
	g.sendLog([]*playable.LogMessage{
		playable.CardsLogMessage(g.player.name, replaced, "swapped %s", pluralCards(len(replaced))),
	})

	g.computerSwap()

	g.final = g.resolve()
	g.settle(g.final)
	g.logResult("swapped")

	return nil
}

func (g *Game) canSwap(indices []int) error {
	if g.round == 0 {
		return ErrNoActiveRound
	}

	if g.round > g.options.SwapRounds {
		return ErrSwapWindowClosed
	}

	if g.hasSwapped {
		return ErrAlreadySwapped
	}

	if len(indices) > g.options.MaxSwapCards {
		return fmt.Errorf("%w: you may swap up to %d", ErrTooManyCards, g.options.MaxSwapCards)
	}

	for _, i := range indices {
		if i < 0 || i >= len(g.player.hand) {
			return fmt.Errorf("%w: %d", ErrInvalidCardIndex, i)
		}
	}

	return nil
}

// computerSwap lets the computer swap a single card, if its strategy wants one
func (g *Game) computerSwap() {
	i, ok := chooseComputerDiscard(g.opponent.hand)
	if !ok {
		g.logger.WithField("category", g.opponent.Category().Code()).Debug("computer stands pat")
		g.sendLog(playable.SimpleLogMessageSlice(g.opponent.name, "stood pat"))
		return
	}

	replaced := g.opponent.hand.SwapCards([]int{i}, g.deck)
	g.logger.WithFields(logrus.Fields{
		"position": i,
		"replaced": deck.CardsToString(replaced),
	}).Debug("computer swapped")
	g.sendLog([]*playable.LogMessage{
		playable.CardsLogMessage(g.opponent.name, replaced, "swapped %s", pluralCards(len(replaced))),
	})
}

// EvaluateHands scores the current hands again
// Calling it repeatedly never awards more than one point for the round.
func (g *Game) EvaluateHands() {
	if g.round == 0 {
		return
	}

	result := g.resolve()
	if g.hasSwapped {
		g.final = result
	} else {
		g.provisional = result
	}

	g.settle(result)
}

// RoundWinner returns the winner of the current round, or nil on a draw or before the
// first deal
func (g *Game) RoundWinner() *Player {
	if r := g.current(); r != nil {
		return r.winner
	}

	return nil
}

// WasDraw returns true if the current round is a draw
func (g *Game) WasDraw() bool {
	r := g.current()
	return r != nil && r.draw
}

// OverallWinner returns the player with the higher score; the player wins ties
func (g *Game) OverallWinner() *Player {
	if g.opponent.score > g.player.score {
		return g.opponent
	}

	return g.player
}

// CurrentRound returns the current round number, 0 before the first deal
func (g *Game) CurrentRound() int {
	return g.round
}

// HasSwapped returns true if the player already swapped this round
func (g *Game) HasSwapped() bool {
	return g.hasSwapped
}

// CanSwap returns true if a swap would currently be accepted
func (g *Game) CanSwap() bool {
	return g.canSwap(nil) == nil
}

// Player returns the human player
func (g *Game) Player() *Player {
	return g.player
}

// Opponent returns the computer player
func (g *Game) Opponent() *Player {
	return g.opponent
}

// CardsRemaining returns the number of undealt cards
func (g *Game) CardsRemaining() int {
	return g.deck.Remaining()
}

// IsGameOver returns true once a round has been played and the deck can't deal another
func (g *Game) IsGameOver() bool {
	return g.round > 0 && !g.deck.CanDeal(2*deck.HandSize)
}

// GetEndOfGameDetails returns the final scores once the game is over
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if !g.IsGameOver() {
		return nil, false
	}

	return &playable.GameOverDetails{
		Winner: g.OverallWinner().name,
		Scores: map[string]int{
			g.player.name:   g.player.score,
			g.opponent.name: g.opponent.score,
		},
		Rounds: g.round,
	}, true
}

func (g *Game) logResult(event string) {
	r := g.current()
	entry := g.logger.WithFields(logrus.Fields{
		"round":            g.round,
		"event":            event,
		"playerHand":       g.player.hand.String(),
		"playerCategory":   r.playerCategory.Code(),
		"opponentHand":     g.opponent.hand.String(),
		"opponentCategory": r.opponentCategory.Code(),
	})

	if r.draw {
		entry.Info("round is a draw")
		g.sendLog(playable.SimpleLogMessageSlice("", "Round %d is a draw", g.round))
		return
	}

	entry.WithField("winner", r.winner.name).Info("round winner")
	g.sendLog(playable.SimpleLogMessageSlice(r.winner.name, "leads round %d with %s", g.round, r.winner.Category()))
}

// sendLog never blocks; if nobody drains the channel the messages are dropped
func (g *Game) sendLog(messages []*playable.LogMessage) {
	select {
	case g.logChan <- messages:
	default:
		g.logger.WithField("dropped", len(messages)).Warn("log channel is full")
	}
}

func pluralCards(n int) string {
	if n == 1 {
		return "1 card"
	}

	return fmt.Sprintf("%d cards", n)
}
