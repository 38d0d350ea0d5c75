package protocol

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
)

// Cmd names the kind of request made of a game
type Cmd int

const (
	Null Cmd = iota
	ChooseStartingPlayer
	Deal
	Play
	SelectSuit
	Take
)

var CmdNames = map[Cmd]string{
	Null:                 "Null",
	ChooseStartingPlayer: "ChooseStartingPlayer",
	Deal:                 "Deal",
	Play:                 "Play",
	SelectSuit:           "SelectSuit",
	Take:                 "Take",
}

var NameToCmd = map[string]Cmd{
	"Null":                 Null,
	"ChooseStartingPlayer": ChooseStartingPlayer,
	"Deal":                 Deal,
	"Play":                 Play,
	"SelectSuit":           SelectSuit,
	"Take":                 Take,
}

func (c Cmd) String() string {
	if n, ok := CmdNames[c]; ok {
		return n
	}
	return "Unknown"
}

func (c Cmd) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("unknown command %q", text)
	}
	*c = cmd
	return nil
}

// CommandContext is a request from a player (or the table) to a game.
// Which fields matter depends on Command.
type CommandContext struct {
	Command     Cmd        `json:"command"`
	Player      int        `json:"player,omitempty"`
	Cards       deck.Cards `json:"cards,omitempty"`
	Suit        deck.Suit  `json:"suit,omitempty"`
	Deck        deck.Cards `json:"deck,omitempty"`
	FromDiscard bool       `json:"fromDiscard,omitempty"`
}

func ChooseStartingPlayerContext() CommandContext {
	return CommandContext{Command: ChooseStartingPlayer}
}

// DealContext deals from cards, or from a fresh standard deck if cards is empty
func DealContext(cards deck.Cards) CommandContext {
	return CommandContext{Command: Deal, Deck: cards}
}

func PlayContext(player int, cards ...deck.Card) CommandContext {
	return CommandContext{Command: Play, Player: player, Cards: cards}
}

func SelectSuitContext(player int, suit deck.Suit) CommandContext {
	return CommandContext{Command: SelectSuit, Player: player, Suit: suit}
}

func TakeContext(player int) CommandContext {
	return CommandContext{Command: Take, Player: player}
}

// TakeFromDiscardContext takes the turned up discard instead of the stockpile
func TakeFromDiscardContext(player int) CommandContext {
	return CommandContext{Command: Take, Player: player, FromDiscard: true}
}
