package rummy

import (
	"errors"
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/table"
)

type NextAction int

const (
	NoAction NextAction = iota
	Take
	Play
	Won
)

func (a NextAction) String() string {
	switch a {
	case Take:
		return "Take"
	case Play:
		return "Play"
	case Won:
		return "Won"
	}
	return "NoAction"
}

func (a NextAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

type Setup struct {
	PlayerToStart int `json:"playerToStart"`
}

// StateOfTurn: each turn is a take, any number of melds, then a discard
type StateOfTurn struct {
	TurnNumber   int        `json:"turnNumber"`
	PlayerToPlay int        `json:"playerToPlay"`
	NextAction   NextAction `json:"nextAction"`
	TakenCard    deck.Card  `json:"takenCard,omitempty"`
}

type StateOfPlay struct {
	Dealt  bool `json:"dealt"`
	Winner int  `json:"winner,omitempty"`
}

func (p StateOfPlay) HasWinner() bool {
	return p.Winner > 0
}

type GameState struct {
	Setup  Setup         `json:"setup"`
	Table  *table.Table  `json:"table"`
	Turn   StateOfTurn   `json:"turn"`
	Play   StateOfPlay   `json:"play"`
	Events game.EventLog `json:"-"`
}

func newGameState(players []*table.Player) *GameState {
	return &GameState{Table: table.New(players, nil)}
}

func (s *GameState) clone() *GameState {
	return &GameState{
		Setup:  s.Setup,
		Table:  s.Table.Clone(),
		Turn:   s.Turn,
		Play:   s.Play,
		Events: s.Events.Clone(),
	}
}

func (s *GameState) Hand(player int) deck.Cards {
	p, err := s.Table.Player(player)
	if err != nil {
		return deck.Cards{}
	}
	return p.Hand.Clone()
}

func (s *GameState) CardToMatch() (deck.Card, bool) {
	return s.Table.DiscardPile.CardToMatch()
}

func (s *GameState) logMoves(player int) {
	s.Events.Append(game.MovedEvents(player, s.Turn.TurnNumber, s.Table.DrainMoves())...)
}

func (s *GameState) endTurn() {
	s.Events.Append(game.Event{Type: game.TurnEnded, Player: s.Turn.PlayerToPlay, Turn: s.Turn.TurnNumber})
	s.Turn = StateOfTurn{
		TurnNumber:   s.Turn.TurnNumber + 1,
		PlayerToPlay: s.Table.NextPlayer(s.Turn.PlayerToPlay),
		NextAction:   Take,
	}
}

func (s *GameState) win(player int) {
	s.Play.Winner = player
	s.Turn.NextAction = Won
	s.Events.Append(game.Event{Type: game.RoundWon, Player: player, Turn: s.Turn.TurnNumber})
}

// recycle refills an empty stockpile from the discards under the top one
func (s *GameState) recycle(player int, shuffler deck.Shuffler) error {
	if !s.Table.StockPile.IsEmpty() {
		return nil
	}
	_, err := s.Table.RecycleDiscardPile(shuffler)
	if errors.Is(err, table.ErrEmptyDiscardPile) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("recycling discards: %w", err)
	}
	s.logMoves(player)
	s.Events.Append(game.Event{
		Type:   game.Shuffled,
		Player: player,
		Turn:   s.Turn.TurnNumber,
		Cards:  s.Table.StockPile.Cards.Clone(),
	})
	return nil
}
