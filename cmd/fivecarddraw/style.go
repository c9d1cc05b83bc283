package main

import (
	"fmt"
	"strings"

	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/playable"
	"fivecarddraw/pkg/playable/fivecarddraw"

	"github.com/pterm/pterm"
)

// printState renders both hands and the round status
func printState(s *fivecarddraw.State) {
	status := fmt.Sprintf("Round %d | %d cards left", s.Round, s.CardsRemaining)
	switch {
	case s.WasDraw:
		status += " | " + pterm.LightYellow("Draw")
	case s.RoundWinner != "":
		status += " | " + pterm.LightGreen(s.RoundWinner+" leads")
	}

	if s.CanSwap {
		status += " | swap open"
	}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: playerBox(s.Player)}, {Data: playerBox(s.Opponent)}},
		{{Data: pterm.BgGreen.Sprint(" " + status + " ")}},
	}).Render()
}

func playerBox(p *fivecarddraw.PlayerState) string {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return box.WithTitle(pterm.LightCyan(p.Name)).WithTitleTopLeft().
		Sprintf("Score: %d\n%s\n%s", p.Score, handString(p.Hand), p.Category)
}

func handString(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, "  ")
}

// cardOptions labels each card with its position so duplicate names stay distinct
func cardOptions(hand deck.Hand) []string {
	options := make([]string, len(hand))
	for i, card := range hand {
		options[i] = fmt.Sprintf("%d. %s", i+1, card.Name())
	}

	return options
}

// selectedIndices maps the selected labels back to hand positions
func selectedIndices(options, selected []string) []int {
	indices := make([]int, 0, len(selected))
	for _, sel := range selected {
		for i, opt := range options {
			if opt == sel {
				indices = append(indices, i)
				break
			}
		}
	}

	return indices
}

func formatLogMessage(msg *playable.LogMessage) string {
	text := msg.Message
	if len(msg.Players) > 0 {
		text = strings.Join(msg.Players, ", ") + " " + text
	}

	if len(msg.Cards) > 0 {
		text += ": " + handString(msg.Cards)
	}

	return text
}
