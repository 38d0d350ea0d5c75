package store

import (
	"fmt"
	"time"

	"github.com/minaorangina/cardtable/crazyeights"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/rummy"
	"github.com/minaorangina/cardtable/whist"
	"github.com/sirupsen/logrus"
)

// Variant names a rules engine
type Variant string

const (
	CrazyEights Variant = "crazyeights"
	Whist       Variant = "whist"
	Rummy       Variant = "rummy"
)

var Variants = []Variant{CrazyEights, Whist, Rummy}

// Game is what the store and its controllers need from any variant
type Game interface {
	ID() string
	Process(ctx protocol.CommandContext) protocol.Result
	Events() []game.Event
	Snapshot() interface{}
	// View is the state with the cards player cannot see face down
	View(player int) interface{}
}

// Settings apply to a new game of any variant. A zero Seed picks one
// from the clock.
type Settings struct {
	HandSize int
	Seed     int64
	Logger   logrus.FieldLogger
}

// NewGame constructs a game of the given variant
func NewGame(v Variant, id string, players []string, s Settings) (Game, error) {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	shuffler := deck.NewRandomShuffler(seed)
	chooser := game.NewRandomChooser(seed + 1)

	var (
		g   Game
		err error
	)
	switch v {
	case CrazyEights:
		g, err = crazyeights.New(id, players, crazyeights.Options{
			HandSize: s.HandSize,
			Shuffler: shuffler,
			Chooser:  chooser,
			Logger:   s.Logger,
		})
	case Whist:
		g, err = whist.New(id, players, whist.Options{
			Shuffler: shuffler,
			Chooser:  chooser,
			Logger:   s.Logger,
		})
	case Rummy:
		g, err = rummy.New(id, players, rummy.Options{
			HandSize: s.HandSize,
			Shuffler: shuffler,
			Chooser:  chooser,
			Logger:   s.Logger,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
