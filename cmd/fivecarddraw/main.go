package main

import (
	"flag"
	"os"
	"strings"

	"fivecarddraw/internal/config"
	"fivecarddraw/pkg/playable/fivecarddraw"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	actionStart  = "Start"
	actionNext   = "Next round"
	actionSwap   = "Swap cards"
	actionFinish = "Finish game"
)

var auto = flag.Bool("auto", false, "play every round without prompting; implied when stdin is not a terminal")

func main() {
	flag.Parse()
	setupLogger()

	game, err := fivecarddraw.NewGame(logrus.StandardLogger(), config.Instance().GameOptions())
	if err != nil {
		logrus.WithError(err).Fatal("could not create the game")
	}

	pterm.DefaultHeader.WithFullWidth().Println(game.Name())

	if *auto || !term.IsTerminal(int(os.Stdin.Fd())) {
		autoPlay(game)
	} else {
		play(game)
	}

	printGameOver(game)
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// play runs the interactive menu until the deck runs out or the player finishes
func play(game *fivecarddraw.Game) {
	for {
		action, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("What next?").
			WithOptions(actions(game)).
			Show()
		if err != nil {
			logrus.WithError(err).Error("could not read the action")
			return
		}

		switch action {
		case actionStart:
			game.StartGame()
			deal(game)
		case actionNext:
			if !deal(game) {
				return
			}
		case actionSwap:
			swap(game)
		case actionFinish:
			return
		}
	}
}

func actions(game *fivecarddraw.Game) []string {
	if game.CurrentRound() == 0 {
		return []string{actionStart, actionFinish}
	}

	if game.CanSwap() {
		return []string{actionSwap, actionNext, actionFinish}
	}

	return []string{actionNext, actionFinish}
}

// deal deals the next round and shows it; false means the deck ran out
func deal(game *fivecarddraw.Game) bool {
	if !game.DealNextRound() {
		pterm.Warning.Println("Not enough cards left for another round")
		return false
	}

	printState(game.State())
	printLog(game)

	return true
}

func swap(game *fivecarddraw.Game) {
	options := cardOptions(game.Player().Hand())
	selected, err := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Pick the cards to swap").
		WithOptions(options).
		WithFilter(false).
		Show()
	if err != nil {
		logrus.WithError(err).Error("could not read the selection")
		return
	}

	if err := game.PlayerSwapCards(selectedIndices(options, selected)); err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	printState(game.State())
	printLog(game)
}

// autoPlay deals every round, standing pat, and prints each result
func autoPlay(game *fivecarddraw.Game) {
	game.StartGame()
	for game.DealNextRound() {
		printState(game.State())
		printLog(game)
	}
}

// printLog prints the game's log messages that are waiting on its channel
func printLog(game *fivecarddraw.Game) {
	for len(game.LogChan()) > 0 {
		for _, msg := range <-game.LogChan() {
			pterm.Info.Println(formatLogMessage(msg))
		}
	}
}

func printGameOver(game *fivecarddraw.Game) {
	printLog(game)
	if game.CurrentRound() == 0 {
		return
	}

	winner := game.OverallWinner()
	pterm.Success.Printfln("%s wins the game %d to %d after %d rounds",
		winner.Name(), winner.Score(), loser(game).Score(), game.CurrentRound())
}

func loser(game *fivecarddraw.Game) *fivecarddraw.Player {
	if game.OverallWinner() == game.Player() {
		return game.Opponent()
	}

	return game.Player()
}
