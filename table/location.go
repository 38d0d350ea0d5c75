package table

import "fmt"

// Pile names a kind of place a card can be
type Pile int

const (
	NoPile Pile = iota
	DeckPile
	Stock
	Discard
	Hand
	TrickPile
	WonPile
	MeldPile
)

var pileNames = map[Pile]string{
	NoPile:    "none",
	DeckPile:  "deck",
	Stock:     "stock",
	Discard:   "discard",
	Hand:      "hand",
	TrickPile: "trick",
	WonPile:   "won",
	MeldPile:  "melds",
}

func (p Pile) String() string {
	if n, ok := pileNames[p]; ok {
		return n
	}
	return "unknown"
}

func (p Pile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pile) UnmarshalText(text []byte) error {
	for k, n := range pileNames {
		if n == string(text) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown pile %q", text)
}

// Location is a pile, and for per-player piles, whose it is
type Location struct {
	Pile   Pile `json:"pile"`
	Player int  `json:"player,omitempty"`
}

var (
	DeckLocation    = Location{Pile: DeckPile}
	StockLocation   = Location{Pile: Stock}
	DiscardLocation = Location{Pile: Discard}
	TrickLocation   = Location{Pile: TrickPile}
)

func HandOf(player int) Location {
	return Location{Pile: Hand, Player: player}
}

func WonBy(player int) Location {
	return Location{Pile: WonPile, Player: player}
}

func MeldsOf(player int) Location {
	return Location{Pile: MeldPile, Player: player}
}

func (l Location) String() string {
	if l.Player > 0 {
		return fmt.Sprintf("%s(%d)", l.Pile, l.Player)
	}
	return l.Pile.String()
}

// FaceUp reports whether cards in the pile can be seen by every player
func (p Pile) FaceUp() bool {
	switch p {
	case Discard, TrickPile, WonPile, MeldPile:
		return true
	}
	return false
}

// SeenBy reports whether viewer can see a card at l
func (l Location) SeenBy(viewer int) bool {
	if l.Pile.FaceUp() {
		return true
	}
	return l.Pile == Hand && viewer > 0 && l.Player == viewer
}
