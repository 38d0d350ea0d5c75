// Package whist is a trick-taking rules engine. The deck is dealt out
// evenly, leaving any odd cards in the stockpile. Players follow the suit
// led when they can, and the player who takes the most tricks wins the
// round. There are no trumps.
package whist

import (
	"errors"
	"time"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/table"
	"github.com/sirupsen/logrus"
)

const (
	minPlayers = 2
	maxPlayers = 4
)

var (
	ErrTooFewPlayers  = errors.New("too few players")
	ErrTooManyPlayers = errors.New("too many players")
)

type Options struct {
	Shuffler    deck.Shuffler
	Chooser     game.Chooser
	Builder     deck.Builder
	TrickWinner TrickWinnerFunc
	Logger      logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	seed := time.Now().UnixNano()
	if o.Shuffler == nil {
		o.Shuffler = deck.NewRandomShuffler(seed)
	}
	if o.Chooser == nil {
		o.Chooser = game.NewRandomChooser(seed + 1)
	}
	if o.Builder == nil {
		o.Builder = deck.StandardBuilder{}
	}
	if o.TrickWinner == nil {
		o.TrickWinner = HighestOfLedSuit
	}
	return o
}

func NewFactory(opts Options) game.Factory[*GameState] {
	opts = opts.withDefaults()
	rules := Rules{TrickWinner: opts.TrickWinner}

	return func(s *GameState, ctx protocol.CommandContext) (game.Command[*GameState], bool) {
		switch ctx.Command {
		case protocol.ChooseStartingPlayer:
			return &ChooseStartingPlayerCommand{state: s, chooser: opts.Chooser}, true
		case protocol.Deal:
			cards := ctx.Deck
			if cards.IsEmpty() {
				cards = opts.Builder.Build()
			}
			return &DealCommand{state: s, cards: cards.Clone(), shuffler: opts.Shuffler, rules: rules}, true
		case protocol.Play:
			return &PlayCommand{state: s, player: ctx.Player, cards: ctx.Cards.Clone(), rules: rules}, true
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

// View hides every hand but player's
func (g *Game) View(player int) interface{} {
	s := g.State().clone()
	s.Table = s.Table.ViewFor(player)
	if s.Trick.PlayerToPlay != player {
		s.Trick.ValidPlays = deck.Cards{}
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

func (g *Game) Play(player int, card deck.Card) protocol.Result {
	return g.Process(protocol.PlayContext(player, card))
}
