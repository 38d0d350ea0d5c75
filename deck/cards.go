package deck

import (
	"errors"
	"strings"
)

var (
	ErrEmpty       = errors.New("no cards")
	ErrCardMissing = errors.New("card not in collection")
)

// Cards is an ordered collection of cards.
// Which end is the "top" depends on the pile using it.
type Cards []Card

// Len returns the number of cards
func (cs Cards) Len() int {
	return len(cs)
}

// IsEmpty reports whether there are no cards
func (cs Cards) IsEmpty() bool {
	return len(cs) == 0
}

// PeekStart returns the first card without removing it
func (cs Cards) PeekStart() (Card, error) {
	if len(cs) == 0 {
		return Card{}, ErrEmpty
	}
	return cs[0], nil
}

// PeekEnd returns the last card without removing it
func (cs Cards) PeekEnd() (Card, error) {
	if len(cs) == 0 {
		return Card{}, ErrEmpty
	}
	return cs[len(cs)-1], nil
}

// TakeFromStart removes and returns the first card
func (cs *Cards) TakeFromStart() (Card, error) {
	if len(*cs) == 0 {
		return Card{}, ErrEmpty
	}
	c := (*cs)[0]
	*cs = append(Cards{}, (*cs)[1:]...)
	return c, nil
}

// TakeFromEnd removes and returns the last card
func (cs *Cards) TakeFromEnd() (Card, error) {
	n := len(*cs)
	if n == 0 {
		return Card{}, ErrEmpty
	}
	c := (*cs)[n-1]
	*cs = (*cs)[:n-1]
	return c, nil
}

// AddAtStart puts cards in front of the collection, keeping their order
func (cs *Cards) AddAtStart(cards ...Card) {
	merged := make(Cards, 0, len(cards)+len(*cs))
	merged = append(merged, cards...)
	*cs = append(merged, (*cs)...)
}

// AddAtEnd appends cards to the collection
func (cs *Cards) AddAtEnd(cards ...Card) {
	*cs = append(*cs, cards...)
}

// Contains reports whether every target is in the collection
func (cs Cards) Contains(targets ...Card) bool {
	for _, tg := range targets {
		if cs.IndexOf(tg) < 0 {
			return false
		}
	}
	return true
}

// IndexOf returns the position of c, or -1
func (cs Cards) IndexOf(c Card) int {
	for i, card := range cs {
		if card == c {
			return i
		}
	}
	return -1
}

// Remove takes the first occurrence of c out of the collection
func (cs *Cards) Remove(c Card) error {
	idx := cs.IndexOf(c)
	if idx < 0 {
		return ErrCardMissing
	}
	rest := make(Cards, 0, len(*cs)-1)
	rest = append(rest, (*cs)[:idx]...)
	*cs = append(rest, (*cs)[idx+1:]...)
	return nil
}

// Clone returns a copy that shares no memory with cs
func (cs Cards) Clone() Cards {
	if cs == nil {
		return Cards{}
	}
	out := make(Cards, len(cs))
	copy(out, cs)
	return out
}

// SameCards reports multiset equality: same cards, any order
func (cs Cards) SameCards(other Cards) bool {
	if len(cs) != len(other) {
		return false
	}
	counts := map[Card]int{}
	for _, c := range cs {
		counts[c]++
	}
	for _, c := range other {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

// Unique reports whether no card appears twice
func (cs Cards) Unique() bool {
	seen := map[Card]struct{}{}
	for _, c := range cs {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// OfSuit returns the cards of suit s, in order
func (cs Cards) OfSuit(s Suit) Cards {
	out := Cards{}
	for _, c := range cs {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// Concat joins collections into a new one
func Concat(groups ...Cards) Cards {
	out := Cards{}
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ParseCards reads whitespace or comma separated tokens, e.g. "8H 10S QD"
func ParseCards(s string) (Cards, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := Cards{}
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseCards is ParseCards for fixed inputs; it panics on bad tokens
func MustParseCards(s string) Cards {
	cs, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func (cs Cards) String() string {
	tokens := make([]string, len(cs))
	for i, c := range cs {
		tokens[i] = c.Token()
	}
	return "[" + strings.Join(tokens, " ") + "]"
}
