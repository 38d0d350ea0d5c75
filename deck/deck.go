package deck

import (
	"math/rand"
	"sync"
)

// Builder produces the ordered cards a game is dealt from
type Builder interface {
	Build() Cards
}

// BuilderFunc adapts a function to a Builder
type BuilderFunc func() Cards

func (f BuilderFunc) Build() Cards {
	return f()
}

// New creates a standard 52 card deck: Clubs, Diamonds, Hearts, Spades,
// each from Ace to King
func New() Cards {
	cards := make(Cards, 0, 52)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// StandardBuilder builds the standard deck
type StandardBuilder struct{}

func (StandardBuilder) Build() Cards {
	return New()
}

// EngineeredBuilder lays out a deck so that a round-robin deal gives each
// player exactly the given hand, the next card is turned up as the discard,
// and the remainder becomes the stockpile.
type EngineeredBuilder struct {
	Hands     []Cards
	Discard   Card
	StockPile Cards
}

func (b EngineeredBuilder) Build() Cards {
	out := Cards{}
	longest := 0
	for _, h := range b.Hands {
		if len(h) > longest {
			longest = len(h)
		}
	}
	for i := 0; i < longest; i++ {
		for _, h := range b.Hands {
			if i < len(h) {
				out = append(out, h[i])
			}
		}
	}
	if !b.Discard.IsZero() {
		out = append(out, b.Discard)
	}
	return append(out, b.StockPile...)
}

// Shuffler produces a permutation of a sequence of cards
type Shuffler interface {
	Shuffle(cards Cards) Cards
}

// RandomShuffler is a Fisher-Yates shuffle over its own random source,
// so games can be replayed from a seed
type RandomShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomShuffler constructs a RandomShuffler seeded with seed
func NewRandomShuffler(seed int64) *RandomShuffler {
	return &RandomShuffler{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandomShuffler) Shuffle(cards Cards) Cards {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := cards.Clone()
	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Intn exposes the shuffler's source for other seeded choices
func (s *RandomShuffler) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// FixedShuffler leaves cards in their given order.
// If Order is set, it is returned instead, as long as it holds the same cards.
type FixedShuffler struct {
	Order Cards
}

func (s FixedShuffler) Shuffle(cards Cards) Cards {
	if s.Order != nil && s.Order.SameCards(cards) {
		return s.Order.Clone()
	}
	return cards.Clone()
}
