package game

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/minaorangina/cardtable/table"
)

var ErrNoPlayers = errors.New("no players to choose from")

// Chooser picks the player who starts
type Chooser interface {
	Choose(players []*table.Player) (*table.Player, error)
}

// RandomChooser picks uniformly from its own seeded source
type RandomChooser struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomChooser(seed int64) *RandomChooser {
	return &RandomChooser{rnd: rand.New(rand.NewSource(seed))}
}

func (c *RandomChooser) Choose(players []*table.Player) (*table.Player, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return players[c.rnd.Intn(len(players))], nil
}

// FixedChooser always picks the player with Number
type FixedChooser struct {
	Number int
}

func (c FixedChooser) Choose(players []*table.Player) (*table.Player, error) {
	for _, p := range players {
		if p.Number == c.Number {
			return p, nil
		}
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	return nil, table.ErrUnknownPlayer
}
