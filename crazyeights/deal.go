package crazyeights

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/table"
)

// ChooseStartingPlayerCommand picks who plays first, before the deal
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

// DealCommand shuffles the deck, deals every player a hand and turns up
// the first card to match
type DealCommand struct {
	state    *GameState
	cards    deck.Cards
	handSize int
	shuffler deck.Shuffler
	rules    Rules
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
	next.Turn = StateOfTurn{TurnNumber: 1}
	next.Events.Append(game.Event{Type: game.DealCompleted, Player: starter, Turn: 1})
	next.beginTurn(c.rules, starter)

	return next, nil
}
