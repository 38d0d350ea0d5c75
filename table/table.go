package table

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
)

// Player is a seat at the table. Number is the player's stable identity,
// counting from 1.
type Player struct {
	Number int        `json:"number"`
	Name   string     `json:"name"`
	Hand   deck.Cards `json:"hand"`
	Won    deck.Cards `json:"won,omitempty"`
}

// NewPlayers seats players in the order given, numbering them from 1
func NewPlayers(names ...string) []*Player {
	ps := make([]*Player, 0, len(names))
	for i, n := range names {
		ps = append(ps, &Player{Number: i + 1, Name: n, Hand: deck.Cards{}, Won: deck.Cards{}})
	}
	return ps
}

func (p *Player) clone() *Player {
	return &Player{Number: p.Number, Name: p.Name, Hand: p.Hand.Clone(), Won: p.Won.Clone()}
}

// Meld is a group of cards laid down by a player
type Meld struct {
	Player int        `json:"player"`
	Cards  deck.Cards `json:"cards"`
}

// Move records one card changing place
type Move struct {
	Card deck.Card `json:"card"`
	From Location  `json:"from"`
	To   Location  `json:"to"`
}

// Table owns every card in a game. All card movement goes through its
// Move methods, which either complete or leave the table untouched, and
// every move is journaled until drained.
type Table struct {
	Players     []*Player    `json:"players"`
	StockPile   *StockPile   `json:"stockPile"`
	DiscardPile *DiscardPile `json:"discardPile"`
	Trick       *Trick       `json:"trick"`
	Melds       []Meld       `json:"melds"`
	moves       []Move
}

// New sets a table with the undealt cards as the stockpile
func New(players []*Player, cards deck.Cards) *Table {
	return &Table{
		Players:     players,
		StockPile:   NewStockPile(cards),
		DiscardPile: NewDiscardPile(nil),
		Trick:       &Trick{},
		Melds:       []Meld{},
	}
}

// Clone returns a deep copy; the move journal is not carried over
func (t *Table) Clone() *Table {
	ps := make([]*Player, len(t.Players))
	for i, p := range t.Players {
		ps[i] = p.clone()
	}
	melds := make([]Meld, len(t.Melds))
	for i, m := range t.Melds {
		melds[i] = Meld{Player: m.Player, Cards: m.Cards.Clone()}
	}
	return &Table{
		Players:     ps,
		StockPile:   t.StockPile.clone(),
		DiscardPile: t.DiscardPile.clone(),
		Trick:       t.Trick.clone(),
		Melds:       melds,
	}
}

// Player finds a player by number
func (t *Table) Player(number int) (*Player, error) {
	for _, p := range t.Players {
		if p.Number == number {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, number)
}

// NextPlayer returns the number of the player seated after number
func (t *Table) NextPlayer(number int) int {
	for i, p := range t.Players {
		if p.Number == number {
			return t.Players[(i+1)%len(t.Players)].Number
		}
	}
	return number
}

// DrainMoves returns the journaled moves and clears the journal
func (t *Table) DrainMoves() []Move {
	moves := t.moves
	t.moves = nil
	return moves
}

func (t *Table) record(c deck.Card, from, to Location) {
	t.moves = append(t.moves, Move{Card: c, From: from, To: to})
}

// MoveCardFromStockPileToPlayer gives the top stockpile card to a player
func (t *Table) MoveCardFromStockPileToPlayer(number int) (deck.Card, error) {
	p, err := t.Player(number)
	if err != nil {
		return deck.Card{}, err
	}
	c, err := t.StockPile.TakeTopCard()
	if err != nil {
		return deck.Card{}, err
	}
	p.Hand.AddAtEnd(c)
	t.record(c, StockLocation, HandOf(number))
	return c, nil
}

// MoveCardFromStockPileToDiscardPile turns the top stockpile card up
// as the new card to match
func (t *Table) MoveCardFromStockPileToDiscardPile() (deck.Card, error) {
	c, err := t.StockPile.TakeTopCard()
	if err != nil {
		return deck.Card{}, err
	}
	t.DiscardPile.AddCard(c)
	t.record(c, StockLocation, DiscardLocation)
	return c, nil
}

// MoveCardFromPlayerToDiscardPile plays one card onto the discard pile
func (t *Table) MoveCardFromPlayerToDiscardPile(number int, c deck.Card) error {
	return t.MoveCardsFromPlayerToDiscardPile(number, deck.Cards{c})
}

// MoveCardsFromPlayerToDiscardPile plays cards in order onto the discard
// pile; the last card played becomes the card to match
func (t *Table) MoveCardsFromPlayerToDiscardPile(number int, cards deck.Cards) error {
	p, err := t.holding(number, cards)
	if err != nil {
		return err
	}
	for _, c := range cards {
		_ = p.Hand.Remove(c)
		t.DiscardPile.AddCard(c)
		t.record(c, HandOf(number), DiscardLocation)
	}
	return nil
}

// MoveCardFromDiscardPileToStockPile moves the oldest discard underneath
// the stockpile. The card to match stays where it is.
func (t *Table) MoveCardFromDiscardPileToStockPile() (deck.Card, error) {
	c, err := t.DiscardPile.takeOldest()
	if err != nil {
		return deck.Card{}, err
	}
	t.StockPile.AddToBottom(c)
	t.record(c, DiscardLocation, StockLocation)
	return c, nil
}

// RecycleDiscardPile moves every discard except the card to match into
// the stockpile and shuffles it
func (t *Table) RecycleDiscardPile(shuffler deck.Shuffler) (int, error) {
	if t.DiscardPile.RestOfCards().IsEmpty() {
		return 0, ErrEmptyDiscardPile
	}
	moved := 0
	for {
		if _, err := t.MoveCardFromDiscardPileToStockPile(); err != nil {
			break
		}
		moved++
	}
	t.StockPile.Cards = shuffler.Shuffle(t.StockPile.Cards)
	return moved, nil
}

// MoveCardFromDiscardPileToPlayer gives the card to match to a player
func (t *Table) MoveCardFromDiscardPileToPlayer(number int) (deck.Card, error) {
	p, err := t.Player(number)
	if err != nil {
		return deck.Card{}, err
	}
	c, err := t.DiscardPile.TakeCardToMatch()
	if err != nil {
		return deck.Card{}, err
	}
	p.Hand.AddAtEnd(c)
	t.record(c, DiscardLocation, HandOf(number))
	return c, nil
}

// MoveCardFromPlayerToTrick plays a card into the current trick
func (t *Table) MoveCardFromPlayerToTrick(number int, c deck.Card) error {
	p, err := t.holding(number, deck.Cards{c})
	if err != nil {
		return err
	}
	_ = p.Hand.Remove(c)
	t.Trick.Plays = append(t.Trick.Plays, Play{Player: number, Card: c})
	t.record(c, HandOf(number), TrickLocation)
	return nil
}

// MoveTrickToPlayer gives every card in the trick to its winner and
// clears the trick
func (t *Table) MoveTrickToPlayer(number int) (deck.Cards, error) {
	p, err := t.Player(number)
	if err != nil {
		return nil, err
	}
	cards := t.Trick.Cards()
	for _, c := range cards {
		p.Won.AddAtEnd(c)
		t.record(c, TrickLocation, WonBy(number))
	}
	t.Trick = &Trick{}
	return cards, nil
}

// MoveCardsFromPlayerToMelds lays cards down as a new meld
func (t *Table) MoveCardsFromPlayerToMelds(number int, cards deck.Cards) error {
	p, err := t.holding(number, cards)
	if err != nil {
		return err
	}
	for _, c := range cards {
		_ = p.Hand.Remove(c)
		t.record(c, HandOf(number), MeldsOf(number))
	}
	t.Melds = append(t.Melds, Meld{Player: number, Cards: cards.Clone()})
	return nil
}

func (t *Table) holding(number int, cards deck.Cards) (*Player, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	p, err := t.Player(number)
	if err != nil {
		return nil, err
	}
	if !cards.Unique() || !p.Hand.Contains(cards...) {
		return nil, fmt.Errorf("%w: player %d, cards %s", ErrCardNotInHand, number, cards)
	}
	return p, nil
}

// AllCards lists every card on the table: hands, won tricks, stockpile,
// discard pile, trick and melds
func (t *Table) AllCards() deck.Cards {
	groups := []deck.Cards{}
	for _, cards := range t.Locations() {
		groups = append(groups, cards)
	}
	return deck.Concat(groups...)
}

// Locations maps each non-empty place on the table to the cards in it
func (t *Table) Locations() map[Location]deck.Cards {
	out := map[Location]deck.Cards{}
	add := func(l Location, cards deck.Cards) {
		if cards.IsEmpty() {
			return
		}
		out[l] = append(out[l], cards...)
	}
	for _, p := range t.Players {
		add(HandOf(p.Number), p.Hand)
		add(WonBy(p.Number), p.Won)
	}
	add(StockLocation, t.StockPile.Cards)
	add(DiscardLocation, t.DiscardPile.Cards)
	add(TrickLocation, t.Trick.Cards())
	for _, m := range t.Melds {
		add(MeldsOf(m.Player), m.Cards)
	}
	return out
}

// ViewFor returns a copy of the table as one player sees it. The
// stockpile and every other hand are face down: each card is replaced by
// a zero card, so only their sizes show. A viewer of 0 sees no hands.
func (t *Table) ViewFor(viewer int) *Table {
	v := t.Clone()
	for _, p := range v.Players {
		if p.Number != viewer {
			p.Hand = faceDown(p.Hand.Len())
		}
	}
	v.StockPile.Cards = faceDown(v.StockPile.Len())
	return v
}

func faceDown(n int) deck.Cards {
	return make(deck.Cards, n)
}
