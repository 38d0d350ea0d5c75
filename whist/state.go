package whist

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/table"
)

type Setup struct {
	PlayerToStart int `json:"playerToStart"`
}

// StateOfTrick tracks the trick being played
type StateOfTrick struct {
	TrickNumber  int        `json:"trickNumber"`
	PlayerToPlay int        `json:"playerToPlay"`
	LeadPlayer   int        `json:"leadPlayer"`
	TrickSuit    deck.Suit  `json:"trickSuit,omitempty"`
	CardsPlayed  int        `json:"cardsPlayed"`
	LastWinner   int        `json:"lastWinner,omitempty"`
	ValidPlays   deck.Cards `json:"validPlays"`
}

type StateOfPlay struct {
	Dealt  bool `json:"dealt"`
	Winner int  `json:"winner,omitempty"`
}

func (p StateOfPlay) HasWinner() bool {
	return p.Winner > 0
}

// GameState is one immutable snapshot of a Whist game
type GameState struct {
	Setup  Setup         `json:"setup"`
	Table  *table.Table  `json:"table"`
	Trick  StateOfTrick  `json:"trick"`
	Play   StateOfPlay   `json:"play"`
	Events game.EventLog `json:"-"`
}

func newGameState(players []*table.Player) *GameState {
	return &GameState{Table: table.New(players, nil)}
}

func (s *GameState) clone() *GameState {
	trick := s.Trick
	trick.ValidPlays = s.Trick.ValidPlays.Clone()
	return &GameState{
		Setup:  s.Setup,
		Table:  s.Table.Clone(),
		Trick:  trick,
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

// TricksWon counts completed tricks per player
func (s *GameState) TricksWon() map[int]int {
	won := map[int]int{}
	for _, e := range s.Events.OfType(game.TrickCompleted) {
		won[e.Player]++
	}
	return won
}

func (s *GameState) toPlay(rules Rules, player int) {
	s.Trick.PlayerToPlay = player
	s.Trick.ValidPlays = rules.GetValidPlays(s.Hand(player), s.Trick.TrickSuit)
}

func (s *GameState) logMoves(player int) {
	s.Events.Append(game.MovedEvents(player, s.Trick.TrickNumber, s.Table.DrainMoves())...)
}

// roundWinner has the most tricks; ties go to the lowest player number
func (s *GameState) roundWinner() int {
	won := s.TricksWon()
	winner, most := 0, -1
	for _, p := range s.Table.Players {
		if n := won[p.Number]; n > most || (n == most && p.Number < winner) {
			winner, most = p.Number, n
		}
	}
	return winner
}

func (s *GameState) handsEmpty() bool {
	for _, p := range s.Table.Players {
		if !p.Hand.IsEmpty() {
			return false
		}
	}
	return true
}
