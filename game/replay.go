package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/table"
)

var ErrReplay = errors.New("event log does not replay")

// Projection is the table rebuilt from an event log
type Projection struct {
	Locations map[table.Location]deck.Cards
	Dealt     bool
	Winner    int
	Tricks    map[int]int
}

// Replay folds events into a Projection. Shuffled events set the
// stockpile, CardMoved events move single cards; the result can be
// compared with the live table using Matches.
func Replay(events []Event) (Projection, error) {
	p := Projection{
		Locations: map[table.Location]deck.Cards{},
		Tricks:    map[int]int{},
	}

	for _, e := range events {
		switch e.Type {
		case Shuffled:
			current := p.Locations[table.StockLocation]
			if !current.IsEmpty() && !current.SameCards(e.Cards) {
				return p, fmt.Errorf("%w: event %d reshuffles cards not in the stockpile", ErrReplay, e.Number)
			}
			p.Locations[table.StockLocation] = e.Cards.Clone()

		case CardMoved:
			if e.Move == nil {
				return p, fmt.Errorf("%w: event %d has no move", ErrReplay, e.Number)
			}
			from := p.Locations[e.Move.From]
			if err := from.Remove(e.Move.Card); err != nil {
				return p, fmt.Errorf("%w: event %d moves %s from %s", ErrReplay, e.Number, e.Move.Card.Token(), e.Move.From)
			}
			p.Locations[e.Move.From] = from
			to := p.Locations[e.Move.To]
			to.AddAtEnd(e.Move.Card)
			p.Locations[e.Move.To] = to

		case DealCompleted:
			p.Dealt = true

		case TrickCompleted:
			p.Tricks[e.Player]++

		case RoundWon:
			p.Winner = e.Player
		}
	}

	return p, nil
}

// Matches reports whether every place on t holds the same cards as the
// projection, ignoring order within a place
func (p Projection) Matches(t *table.Table) bool {
	live := t.Locations()
	for l, cards := range p.Locations {
		if cards.IsEmpty() {
			continue
		}
		if !cards.SameCards(live[l]) {
			return false
		}
	}
	for l, cards := range live {
		if !cards.SameCards(p.Locations[l]) {
			return false
		}
	}
	return true
}
