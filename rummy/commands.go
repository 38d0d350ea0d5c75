package rummy

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/table"
)

type ChooseStartingPlayerCommand struct {
	state   *GameState
	chooser game.Chooser
}

func (c *ChooseStartingPlayerCommand) IsValid() protocol.Result {
	if c.state.Play.Dealt {
		return protocol.Failed(protocol.AlreadyDealt)
	}
	return protocol.Succeeded()
}

func (c *ChooseStartingPlayerCommand) Execute() (*GameState, error) {
	next := c.state.clone()
	p, err := c.chooser.Choose(next.Table.Players)
	if err != nil {
		return nil, fmt.Errorf("choosing starting player: %w", err)
	}
	next.Setup.PlayerToStart = p.Number
	next.Events.Append(game.Event{Type: game.StartingPlayerChosen, Player: p.Number})
	return next, nil
}

type DealCommand struct {
	state    *GameState
	cards    deck.Cards
	handSize int
	shuffler deck.Shuffler
}

func (c *DealCommand) IsValid() protocol.Result {
	if c.state.Play.Dealt {
		return protocol.Failed(protocol.AlreadyDealt)
	}
	if len(c.cards) < c.handSize*len(c.state.Table.Players)+1 || !c.cards.Unique() {
		return protocol.Failed(protocol.InvalidState)
	}
	return protocol.Succeeded()
}

func (c *DealCommand) Execute() (*GameState, error) {
	next := c.state.clone()

	shuffled := c.shuffler.Shuffle(c.cards)
	next.Table.StockPile = table.NewStockPile(shuffled)
	next.Events.Append(game.Event{Type: game.Shuffled, Cards: shuffled.Clone()})

	for i := 0; i < c.handSize; i++ {
		for _, p := range next.Table.Players {
			if _, err := next.Table.MoveCardFromStockPileToPlayer(p.Number); err != nil {
				return nil, fmt.Errorf("dealing to player %d: %w", p.Number, err)
			}
		}
	}
	if _, err := next.Table.MoveCardFromStockPileToDiscardPile(); err != nil {
		return nil, fmt.Errorf("turning up discard: %w", err)
	}
	next.logMoves(0)

	starter := next.Setup.PlayerToStart
	if _, err := next.Table.Player(starter); err != nil {
		starter = next.Table.Players[0].Number
		next.Setup.PlayerToStart = starter
	}
	next.Play.Dealt = true
	next.Turn = StateOfTurn{TurnNumber: 1, PlayerToPlay: starter, NextAction: Take}
	next.Events.Append(game.Event{Type: game.DealCompleted, Player: starter, Turn: 1})
	return next, nil
}

// TakeCommand draws from the stockpile, or picks up the top discard
type TakeCommand struct {
	state       *GameState
	player      int
	fromDiscard bool
	shuffler    deck.Shuffler
}

func (c *TakeCommand) IsValid() protocol.Result {
	s := c.state
	if !s.Play.Dealt {
		return protocol.Failed(protocol.GameNotStarted)
	}
	if s.Play.HasWinner() {
		return protocol.Failed(protocol.GameCompleted)
	}
	if c.player != s.Turn.PlayerToPlay {
		return protocol.Failed(protocol.NotPlayersTurn)
	}
	if !s.Turn.TakenCard.IsZero() {
		return protocol.Failed(protocol.AlreadyTaken)
	}
	if s.Turn.NextAction != Take {
		return protocol.Failed(protocol.InvalidTake)
	}
	if c.fromDiscard {
		if _, ok := s.CardToMatch(); !ok {
			return protocol.Failed(protocol.InvalidTake)
		}
	} else if s.Table.StockPile.IsEmpty() {
		return protocol.Failed(protocol.InvalidTake)
	}
	return protocol.Succeeded()
}

func (c *TakeCommand) Execute() (*GameState, error) {
	next := c.state.clone()

	var (
		card deck.Card
		err  error
	)
	if c.fromDiscard {
		card, err = next.Table.MoveCardFromDiscardPileToPlayer(c.player)
	} else {
		card, err = next.Table.MoveCardFromStockPileToPlayer(c.player)
	}
	if err != nil {
		return nil, fmt.Errorf("taking card: %w", err)
	}

	next.Turn.TakenCard = card
	next.Turn.NextAction = Play
	next.Events.Append(game.Event{
		Type:   game.Taken,
		Player: c.player,
		Turn:   next.Turn.TurnNumber,
		Cards:  deck.Cards{card},
	})
	next.logMoves(c.player)

	if err := next.recycle(c.player, c.shuffler); err != nil {
		return nil, err
	}
	return next, nil
}

// PlayCommand lays down a meld of three or more cards, or discards a
// single card to end the turn
type PlayCommand struct {
	state  *GameState
	player int
	cards  deck.Cards
}

func (c *PlayCommand) IsValid() protocol.Result {
	s := c.state
	if !s.Play.Dealt {
		return protocol.Failed(protocol.GameNotStarted)
	}
	if s.Play.HasWinner() {
		return protocol.Failed(protocol.GameCompleted)
	}
	if c.player != s.Turn.PlayerToPlay {
		return protocol.Failed(protocol.NotPlayersTurn)
	}
	if len(c.cards) == 0 {
		return protocol.Failed(protocol.InvalidPlay)
	}
	if !c.cards.Unique() || !s.Hand(c.player).Contains(c.cards...) {
		return protocol.Failed(protocol.CardIsNotInPlayersHand)
	}
	if s.Turn.NextAction != Play {
		return protocol.Failed(protocol.InvalidPlay)
	}
	if len(c.cards) > 1 && !IsMeld(c.cards) {
		return protocol.Failed(protocol.InvalidPlay)
	}
	return protocol.Succeeded()
}

func (c *PlayCommand) Execute() (*GameState, error) {
	next := c.state.clone()

	if len(c.cards) > 1 {
		if err := next.Table.MoveCardsFromPlayerToMelds(c.player, c.cards); err != nil {
			return nil, fmt.Errorf("melding %s: %w", c.cards, err)
		}
		next.Events.Append(game.Event{Type: game.Melded, Player: c.player, Turn: next.Turn.TurnNumber, Cards: c.cards.Clone()})
		next.logMoves(c.player)
		if next.Hand(c.player).IsEmpty() {
			next.win(c.player)
		}
		return next, nil
	}

	if err := next.Table.MoveCardFromPlayerToDiscardPile(c.player, c.cards[0]); err != nil {
		return nil, fmt.Errorf("discarding %s: %w", c.cards[0].Token(), err)
	}
	next.Events.Append(game.Event{Type: game.Played, Player: c.player, Turn: next.Turn.TurnNumber, Cards: c.cards.Clone()})
	next.logMoves(c.player)

	if next.Hand(c.player).IsEmpty() {
		next.win(c.player)
		return next, nil
	}
	next.endTurn()
	return next, nil
}
