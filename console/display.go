package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/cardtable/crazyeights"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/protocol"
)

const (
	startGameText    = "Let's start the game!\n"
	turnText         = "\nTurn %d: %s to play\n"
	cardToMatchText  = "Card to match: %s\n"
	suitToFollowText = "Suit to follow: %s\n"
	handText         = "Your hand: %s\n"
	validPlaysText   = "You can play: %s\n"
	playPromptText   = "Enter the cards to play (e.g. 8H, or 7C 7D): "
	takePromptText   = "You have nothing to play. Press enter to take a card. "
	suitPromptText   = "Choose a suit [C/D/H/S]: "
	takenText        = "You took %s\n"
	passedText       = "There are no cards left to take, so you pass.\n"
	retryCardsText   = "Invalid entry. Please use card codes like 8H, 10S or QD\n"
	retrySuitText    = "Invalid entry. Please enter C, D, H or S\n"
	maxRetriesText   = "\nMax retries exceeded: leaving the table.\n"
	wonText          = "\n%s wins!\n"
)

var messages = map[protocol.MessageKey]string{
	protocol.Success:                "Ok.",
	protocol.NotPlayersTurn:         "It is not your turn.",
	protocol.CardIsNotInPlayersHand: "You don't have that card.",
	protocol.InvalidPlay:            "You can't play that.",
	protocol.InvalidTake:            "You can't take a card now.",
	protocol.AlreadyTaken:           "You have already taken a card this turn.",
	protocol.GameCompleted:          "The game is over.",
	protocol.GameNotStarted:         "The cards have not been dealt yet.",
	protocol.AlreadyDealt:           "The cards have already been dealt.",
	protocol.UnknownCommand:         "I don't know how to do that.",
	protocol.InvalidState:           "Something went wrong. Please try again.",
}

// Message is the text shown to a player for a result key
func Message(key protocol.MessageKey) string {
	if m, ok := messages[key]; ok {
		return m
	}
	return key.String()
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func playerName(s *crazyeights.GameState, number int) string {
	p, err := s.Table.Player(number)
	if err != nil {
		return fmt.Sprintf("Player %d", number)
	}
	return p.Name
}

func buildTurnText(s *crazyeights.GameState) string {
	var b strings.Builder
	player := s.Turn.PlayerToPlay

	fmt.Fprintf(&b, turnText, s.Turn.TurnNumber, playerName(s, player))
	if c, ok := s.CardToMatch(); ok {
		fmt.Fprintf(&b, cardToMatchText, c.Token())
		if c.Rank == deck.Eight && s.Turn.SelectedSuit.Valid() {
			fmt.Fprintf(&b, suitToFollowText, s.Turn.SelectedSuit)
		}
	}
	fmt.Fprintf(&b, handText, s.Hand(player))
	if len(s.Turn.ValidPlays) > 0 {
		fmt.Fprintf(&b, validPlaysText, s.Turn.ValidPlays)
	}
	return b.String()
}
