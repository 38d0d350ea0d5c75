package crazyeights

import (
	"errors"
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/table"
)

// TakeCommand draws the top card of the stockpile and ends the turn.
// An emptied stockpile is refilled from the discards under the card to
// match. With nothing left to draw the player passes.
type TakeCommand struct {
	state    *GameState
	player   int
	shuffler deck.Shuffler
	rules    Rules
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
	if s.Turn.NextAction != Take {
		return protocol.Failed(protocol.InvalidTake)
	}
	return protocol.Succeeded()
}

func (c *TakeCommand) Execute() (*GameState, error) {
	next := c.state.clone()

	if next.Table.StockPile.IsEmpty() {
		if err := next.recycle(c.player, c.shuffler); err != nil {
			return nil, err
		}
	}

	if next.Table.StockPile.IsEmpty() {
		next.Events.Append(game.Event{Type: game.Passed, Player: c.player, Turn: next.Turn.TurnNumber})
		next.endTurn(c.rules)
		return next, nil
	}

	card, err := next.Table.MoveCardFromStockPileToPlayer(c.player)
	if err != nil {
		return nil, fmt.Errorf("taking card: %w", err)
	}
	next.Events.Append(game.Event{
		Type:   game.Taken,
		Player: c.player,
		Turn:   next.Turn.TurnNumber,
		Cards:  deck.Cards{card},
	})
	next.logMoves(c.player)

	if next.Table.StockPile.IsEmpty() {
		if err := next.recycle(c.player, c.shuffler); err != nil {
			return nil, err
		}
	}

	next.endTurn(c.rules)
	return next, nil
}

// recycle turns the discards under the card to match into a fresh
// stockpile. Having nothing to recycle is not an error.
func (s *GameState) recycle(player int, shuffler deck.Shuffler) error {
	n, err := s.Table.RecycleDiscardPile(shuffler)
	if errors.Is(err, table.ErrEmptyDiscardPile) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("recycling discards: %w", err)
	}
	s.logMoves(player)
	if n > 0 {
		s.Events.Append(game.Event{
			Type:   game.Shuffled,
			Player: player,
			Turn:   s.Turn.TurnNumber,
			Cards:  s.Table.StockPile.Cards.Clone(),
		})
	}
	return nil
}
