// Package rummy is basic Rummy: each turn a player takes from the
// stockpile or the discard pile, lays down any sets or runs, and discards.
// Emptying the hand wins.
package rummy

import (
	"errors"
	"fmt"
	"time"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/table"
	"github.com/sirupsen/logrus"
)

const (
	DefaultHandSize = 7
	minPlayers      = 2
	maxPlayers      = 6
)

var (
	ErrTooFewPlayers  = errors.New("too few players")
	ErrTooManyPlayers = errors.New("too many players")
	ErrHandTooLarge   = errors.New("not enough cards to deal a hand to every player")
)

type Options struct {
	HandSize int
	Shuffler deck.Shuffler
	Chooser  game.Chooser
	Builder  deck.Builder
	Logger   logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	seed := time.Now().UnixNano()
	if o.HandSize <= 0 {
		o.HandSize = DefaultHandSize
	}
	if o.Shuffler == nil {
		o.Shuffler = deck.NewRandomShuffler(seed)
	}
	if o.Chooser == nil {
		o.Chooser = game.NewRandomChooser(seed + 1)
	}
	if o.Builder == nil {
		o.Builder = deck.StandardBuilder{}
	}
	return o
}

func NewFactory(opts Options) game.Factory[*GameState] {
	opts = opts.withDefaults()

	return func(s *GameState, ctx protocol.CommandContext) (game.Command[*GameState], bool) {
		switch ctx.Command {
		case protocol.ChooseStartingPlayer:
			return &ChooseStartingPlayerCommand{state: s, chooser: opts.Chooser}, true
		case protocol.Deal:
			cards := ctx.Deck
			if cards.IsEmpty() {
				cards = opts.Builder.Build()
			}
			return &DealCommand{state: s, cards: cards.Clone(), handSize: opts.HandSize, shuffler: opts.Shuffler}, true
		case protocol.Take:
			return &TakeCommand{state: s, player: ctx.Player, fromDiscard: ctx.FromDiscard, shuffler: opts.Shuffler}, true
		case protocol.Play:
			return &PlayCommand{state: s, player: ctx.Player, cards: ctx.Cards.Clone()}, true
		}
		return nil, false
	}
}

type Game struct {
	engine *game.Engine[*GameState]
}

func New(id string, playerNames []string, opts Options) (*Game, error) {
	if len(playerNames) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(playerNames) > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	opts = opts.withDefaults()
	if needed := opts.HandSize*len(playerNames) + 1; needed > len(opts.Builder.Build()) {
		return nil, fmt.Errorf("%w: %d players with %d cards each", ErrHandTooLarge, len(playerNames), opts.HandSize)
	}
	initial := newGameState(table.NewPlayers(playerNames...))
	return &Game{engine: game.NewEngine(id, initial, NewFactory(opts), opts.Logger)}, nil
}

func (g *Game) ID() string {
	return g.engine.ID()
}

func (g *Game) State() *GameState {
	return g.engine.State()
}

func (g *Game) Events() []game.Event {
	s := g.engine.State()
	return s.Events.Events()
}

// Snapshot is the current state for display
func (g *Game) Snapshot() interface{} {
	return g.State()
}

// View hides every hand but player's, and the card they last took
func (g *Game) View(player int) interface{} {
	s := g.State().clone()
	s.Table = s.Table.ViewFor(player)
	if s.Turn.PlayerToPlay != player {
		s.Turn.TakenCard = deck.Card{}
	}
	return s
}

func (g *Game) Process(ctx protocol.CommandContext) protocol.Result {
	return g.engine.Process(ctx)
}

func (g *Game) ChooseStartingPlayer() protocol.Result {
	return g.Process(protocol.ChooseStartingPlayerContext())
}

func (g *Game) Deal(cards deck.Cards) protocol.Result {
	return g.Process(protocol.DealContext(cards))
}

func (g *Game) Take(player int) protocol.Result {
	return g.Process(protocol.TakeContext(player))
}

func (g *Game) TakeFromDiscard(player int) protocol.Result {
	return g.Process(protocol.TakeFromDiscardContext(player))
}

// Play melds three or more cards, or discards one
func (g *Game) Play(player int, cards ...deck.Card) protocol.Result {
	return g.Process(protocol.PlayContext(player, cards...))
}
