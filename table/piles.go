package table

import (
	"errors"

	"github.com/minaorangina/cardtable/deck"
)

var (
	ErrEmptyStockPile   = errors.New("stockpile is empty")
	ErrEmptyDiscardPile = errors.New("discard pile has no cards to recycle")
	ErrNoCardToMatch    = errors.New("discard pile has no turned up card")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrCardNotInHand    = errors.New("card is not in player's hand")
	ErrNoCards          = errors.New("no cards given")
)

// StockPile is the face down pile players take from. Its top is the start
// of the collection.
type StockPile struct {
	Cards deck.Cards `json:"cards"`
}

func NewStockPile(cards deck.Cards) *StockPile {
	return &StockPile{Cards: cards.Clone()}
}

// TakeTopCard removes the top card
func (s *StockPile) TakeTopCard() (deck.Card, error) {
	c, err := s.Cards.TakeFromStart()
	if err != nil {
		return deck.Card{}, ErrEmptyStockPile
	}
	return c, nil
}

// AddToBottom puts a card underneath the pile
func (s *StockPile) AddToBottom(c deck.Card) {
	s.Cards.AddAtEnd(c)
}

func (s *StockPile) IsEmpty() bool {
	return s.Cards.IsEmpty()
}

func (s *StockPile) Len() int {
	return s.Cards.Len()
}

func (s *StockPile) clone() *StockPile {
	return &StockPile{Cards: s.Cards.Clone()}
}

// DiscardPile holds the turned up card to match and, underneath it, the
// rest of the discards. The card to match sits at the start of the
// collection once the pile has been turned up.
type DiscardPile struct {
	Cards    deck.Cards `json:"cards"`
	TurnedUp bool       `json:"turnedUp"`
}

func NewDiscardPile(cards deck.Cards) *DiscardPile {
	return &DiscardPile{Cards: cards.Clone()}
}

// TurnUpTopCard makes the top card the card to match
func (d *DiscardPile) TurnUpTopCard() error {
	if d.Cards.IsEmpty() {
		return ErrNoCardToMatch
	}
	d.TurnedUp = true
	return nil
}

// CardToMatch returns the turned up card
func (d *DiscardPile) CardToMatch() (deck.Card, bool) {
	if !d.TurnedUp || d.Cards.IsEmpty() {
		return deck.Card{}, false
	}
	return d.Cards[0], true
}

// RestOfCards returns the discards underneath the card to match,
// most recent first
func (d *DiscardPile) RestOfCards() deck.Cards {
	if !d.TurnedUp || d.Cards.IsEmpty() {
		return d.Cards.Clone()
	}
	return d.Cards[1:].Clone()
}

// AddCard makes c the new card to match. The previous card to match
// moves to the front of the rest of the cards.
func (d *DiscardPile) AddCard(c deck.Card) {
	d.Cards.AddAtStart(c)
	d.TurnedUp = true
}

// TakeCardToMatch removes the turned up card. The next discard, if any,
// becomes the card to match.
func (d *DiscardPile) TakeCardToMatch() (deck.Card, error) {
	if _, ok := d.CardToMatch(); !ok {
		return deck.Card{}, ErrNoCardToMatch
	}
	c, _ := d.Cards.TakeFromStart()
	d.TurnedUp = !d.Cards.IsEmpty()
	return c, nil
}

// takeOldest removes the oldest card of the rest, leaving the card to match
func (d *DiscardPile) takeOldest() (deck.Card, error) {
	if d.RestOfCards().IsEmpty() {
		return deck.Card{}, ErrEmptyDiscardPile
	}
	return d.Cards.TakeFromEnd()
}

func (d *DiscardPile) Len() int {
	return d.Cards.Len()
}

func (d *DiscardPile) clone() *DiscardPile {
	return &DiscardPile{Cards: d.Cards.Clone(), TurnedUp: d.TurnedUp}
}

// Play is a card played into a trick
type Play struct {
	Player int       `json:"player"`
	Card   deck.Card `json:"card"`
}

// Trick holds the cards played in the current round of a trick-taking game
type Trick struct {
	Plays []Play `json:"plays"`
}

// Suit is the suit led, or NoSuit if nothing has been played
func (t *Trick) Suit() deck.Suit {
	if len(t.Plays) == 0 {
		return deck.NoSuit
	}
	return t.Plays[0].Card.Suit
}

// Cards returns the cards in play order
func (t *Trick) Cards() deck.Cards {
	out := deck.Cards{}
	for _, p := range t.Plays {
		out = append(out, p.Card)
	}
	return out
}

func (t *Trick) Len() int {
	return len(t.Plays)
}

func (t *Trick) clone() *Trick {
	plays := make([]Play, len(t.Plays))
	copy(plays, t.Plays)
	return &Trick{Plays: plays}
}
