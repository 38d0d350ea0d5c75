package game

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/table"
)

// EventType names something that happened in a game
type EventType int

const (
	NoEvent EventType = iota
	DealCompleted
	Played
	Taken
	SuitSelected
	TurnEnded
	TrickStarted
	TrickCompleted
	Shuffled
	StartingPlayerChosen
	CardMoved
	RoundWon
	Passed
	Melded
)

var eventNames = map[EventType]string{
	NoEvent:              "NoEvent",
	DealCompleted:        "DealCompleted",
	Played:               "Played",
	Taken:                "Taken",
	SuitSelected:         "SuitSelected",
	TurnEnded:            "TurnEnded",
	TrickStarted:         "TrickStarted",
	TrickCompleted:       "TrickCompleted",
	Shuffled:             "Shuffled",
	StartingPlayerChosen: "StartingPlayerChosen",
	CardMoved:            "CardMoved",
	RoundWon:             "RoundWon",
	Passed:               "Passed",
	Melded:               "Melded",
}

func (et EventType) String() string {
	if n, ok := eventNames[et]; ok {
		return n
	}
	return "Unknown"
}

func (et EventType) MarshalText() ([]byte, error) {
	return []byte(et.String()), nil
}

func (et *EventType) UnmarshalText(text []byte) error {
	for k, n := range eventNames {
		if n == string(text) {
			*et = k
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

// Event is one entry in a game's event log.
//
// Player is the acting player, or the winner for TrickCompleted and
// RoundWon. Turn is the turn number (trick number in trick-taking games).
// Shuffled events carry the new stockpile order in Cards.
type Event struct {
	Number int         `json:"number"`
	Type   EventType   `json:"type"`
	Player int         `json:"player,omitempty"`
	Turn   int         `json:"turn,omitempty"`
	Cards  deck.Cards  `json:"cards,omitempty"`
	Suit   deck.Suit   `json:"suit,omitempty"`
	Move   *table.Move `json:"move,omitempty"`
}

func (e Event) String() string {
	s := fmt.Sprintf("#%d %s", e.Number, e.Type)
	if e.Player > 0 {
		s += fmt.Sprintf(" player=%d", e.Player)
	}
	if e.Turn > 0 {
		s += fmt.Sprintf(" turn=%d", e.Turn)
	}
	if len(e.Cards) > 0 {
		s += " cards=" + e.Cards.String()
	}
	if e.Suit != deck.NoSuit {
		s += " suit=" + e.Suit.String()
	}
	if e.Move != nil {
		s += fmt.Sprintf(" %s %s->%s", e.Move.Card.Token(), e.Move.From, e.Move.To)
	}
	return s
}

// MovedEvents turns journaled table moves into CardMoved events
func MovedEvents(player, turn int, moves []table.Move) []Event {
	events := make([]Event, 0, len(moves))
	for i := range moves {
		m := moves[i]
		events = append(events, Event{Type: CardMoved, Player: player, Turn: turn, Move: &m})
	}
	return events
}

// Redact returns the events as one player may see them. Shuffled
// stockpiles and cards taken by other players are face down, as are moves
// that neither start nor end somewhere the viewer can see. A viewer of 0
// sees only face up cards.
func Redact(events []Event, viewer int) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		switch {
		case e.Type == Shuffled:
			e.Cards = make(deck.Cards, len(e.Cards))
		case e.Type == Taken && (viewer == 0 || e.Player != viewer):
			e.Cards = make(deck.Cards, len(e.Cards))
		case e.Move != nil && !e.Move.From.SeenBy(viewer) && !e.Move.To.SeenBy(viewer):
			m := *e.Move
			m.Card = deck.Card{}
			e.Move = &m
		}
		out[i] = e
	}
	return out
}
