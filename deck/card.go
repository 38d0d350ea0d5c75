package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards
type Rank int

const (
	NoRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankSymbols = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}

func (r Rank) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Valid reports whether r is one of Ace through King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

// Suits lists the four suits in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = []string{"", "Clubs", "Diamonds", "Hearts", "Spades"}

var suitSymbols = []string{"", "C", "D", "H", "S"}

func (s Suit) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Symbol is the one-letter form used in card tokens, e.g. "H"
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	if s == NoSuit {
		return []byte{}, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSuit, s)
	}
	return []byte(s.Symbol()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = NoSuit
		return nil
	}
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Card represents a playing card.
// The zero value is not a valid card and stands for "no card".
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsZero reports whether c is the "no card" value
func (c Card) IsZero() bool {
	return c == Card{}
}

// Valid reports whether c has a real rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

func (c Card) String() string {
	if c.IsZero() {
		return "No card"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Token returns the short "RS" form of the card, e.g. "8H"
func (c Card) Token() string {
	if !c.Valid() {
		return "??"
	}
	return rankSymbols[c.Rank] + suitSymbols[c.Suit]
}

// ParseCard reads a card token such as "8H", "10s" or "qd"
func ParseCard(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}

	suit, err := ParseSuit(t[len(t)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}

	rankPart := t[:len(t)-1]
	if rankPart == "10" {
		rankPart = "T"
	}
	if rankPart == "1" {
		rankPart = "A"
	}
	for r, sym := range rankSymbols {
		if sym != "" && sym == rankPart {
			return NewCard(Rank(r), suit), nil
		}
	}

	return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
}

// ParseSuit reads a suit from its symbol ("H") or name ("hearts")
func ParseSuit(s string) (Suit, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i := range suitNames {
		if i == 0 {
			continue
		}
		if u == suitSymbols[i] || u == strings.ToUpper(suitNames[i]) {
			return Suit(i), nil
		}
	}
	return NoSuit, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// MarshalText encodes a card as its token so cards read well in JSON
func (c Card) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, c.Rank, c.Suit)
	}
	return []byte(c.Token()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Card{}
		return nil
	}
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
