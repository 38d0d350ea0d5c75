package crazyeights

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/table"
)

// NextAction is what the player to play must do next
type NextAction int

const (
	NoAction NextAction = iota
	Play
	SelectSuit
	Take
	Won
)

var nextActionNames = map[NextAction]string{
	NoAction:   "NoAction",
	Play:       "Play",
	SelectSuit: "SelectSuit",
	Take:       "Take",
	Won:        "Won",
}

func (a NextAction) String() string {
	if n, ok := nextActionNames[a]; ok {
		return n
	}
	return "Unknown"
}

func (a NextAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Setup is fixed before the deal
type Setup struct {
	PlayerToStart int `json:"playerToStart"`
}

// StateOfTurn is whose turn it is and what they may do
type StateOfTurn struct {
	TurnNumber   int        `json:"turnNumber"`
	PlayerToPlay int        `json:"playerToPlay"`
	NextAction   NextAction `json:"nextAction"`
	ValidPlays   deck.Cards `json:"validPlays"`
	SelectedSuit deck.Suit  `json:"selectedSuit,omitempty"`
}

// StateOfPlay is whether the game is under way or won
type StateOfPlay struct {
	Dealt  bool `json:"dealt"`
	Winner int  `json:"winner,omitempty"`
}

func (p StateOfPlay) HasWinner() bool {
	return p.Winner > 0
}

// GameState is one snapshot of a game. Commands never change a snapshot
// they are given; they build the next one from a clone.
type GameState struct {
	Setup  Setup         `json:"setup"`
	Table  *table.Table  `json:"table"`
	Turn   StateOfTurn   `json:"turn"`
	Play   StateOfPlay   `json:"play"`
	Events game.EventLog `json:"-"`
}

func newGameState(players []*table.Player) *GameState {
	return &GameState{
		Table: table.New(players, nil),
	}
}

func (s *GameState) clone() *GameState {
	turn := s.Turn
	turn.ValidPlays = s.Turn.ValidPlays.Clone()
	return &GameState{
		Setup:  s.Setup,
		Table:  s.Table.Clone(),
		Turn:   turn,
		Play:   s.Play,
		Events: s.Events.Clone(),
	}
}

// CardToMatch is the turned up discard
func (s *GameState) CardToMatch() (deck.Card, bool) {
	return s.Table.DiscardPile.CardToMatch()
}

// Hand returns a copy of a player's hand
func (s *GameState) Hand(player int) deck.Cards {
	p, err := s.Table.Player(player)
	if err != nil {
		return deck.Cards{}
	}
	return p.Hand.Clone()
}

// beginTurn hands the turn to player and works out what they can do
func (s *GameState) beginTurn(rules Rules, player int) {
	s.Turn.PlayerToPlay = player

	discard, _ := s.CardToMatch()
	s.Turn.ValidPlays = rules.GetValidPlays(discard, s.Hand(player), s.Turn.TurnNumber, s.Turn.SelectedSuit)
	if len(s.Turn.ValidPlays) > 0 {
		s.Turn.NextAction = Play
	} else {
		s.Turn.NextAction = Take
	}
}

// endTurn logs the end of the current turn and passes play on
func (s *GameState) endTurn(rules Rules) {
	s.Events.Append(game.Event{Type: game.TurnEnded, Player: s.Turn.PlayerToPlay, Turn: s.Turn.TurnNumber})
	s.Turn.TurnNumber++
	s.beginTurn(rules, s.Table.NextPlayer(s.Turn.PlayerToPlay))
}

func (s *GameState) logMoves(player int) {
	s.Events.Append(game.MovedEvents(player, s.Turn.TurnNumber, s.Table.DrainMoves())...)
}
