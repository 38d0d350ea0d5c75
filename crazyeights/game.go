// Package crazyeights is the rules engine for Crazy Eights: players take
// turns to match the suit or rank of the turned up discard, eights are wild,
// and the first player to empty their hand wins.
package crazyeights

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
	maxPlayers      = 7
)

var (
	ErrTooFewPlayers  = errors.New("too few players")
	ErrTooManyPlayers = errors.New("too many players")
	ErrHandTooLarge   = errors.New("not enough cards to deal a hand to every player")
)

// Options configures a game. Zero values get defaults.
type Options struct {
	HandSize int
	Shuffler deck.Shuffler
	Chooser  game.Chooser
	Builder  deck.Builder
	Rules    Rules
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
	if o.Rules == nil {
		o.Rules = BasicVariantRules{}
	}
	return o
}

// Game is a Crazy Eights game for named players, numbered from 1 in
// seating order
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
	return &Game{
		engine: game.NewEngine(id, initial, NewFactory(opts), opts.Logger),
	}, nil
}

func (g *Game) ID() string {
	return g.engine.ID()
}

// State is the current snapshot. It must not be modified.
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

// View is the current state as player sees it: their own hand face up,
// the other hands and the stockpile face down
func (g *Game) View(player int) interface{} {
	s := g.State().clone()
	s.Table = s.Table.ViewFor(player)
	if s.Turn.PlayerToPlay != player {
		s.Turn.ValidPlays = deck.Cards{}
	}
	return s
}

func (g *Game) Process(ctx protocol.CommandContext) protocol.Result {
	return g.engine.Process(ctx)
}

func (g *Game) ChooseStartingPlayer() protocol.Result {
	return g.Process(protocol.ChooseStartingPlayerContext())
}

// Deal deals from cards in the order given to the shuffler, or from the
// configured deck builder when cards is empty
func (g *Game) Deal(cards deck.Cards) protocol.Result {
	return g.Process(protocol.DealContext(cards))
}

func (g *Game) Play(player int, cards ...deck.Card) protocol.Result {
	return g.Process(protocol.PlayContext(player, cards...))
}

func (g *Game) SelectSuit(player int, suit deck.Suit) protocol.Result {
	return g.Process(protocol.SelectSuitContext(player, suit))
}

func (g *Game) Take(player int) protocol.Result {
	return g.Process(protocol.TakeContext(player))
}
