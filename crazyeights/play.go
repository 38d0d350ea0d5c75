package crazyeights

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
)

// PlayCommand puts one or more cards of the same rank on the discard pile.
// The last card played becomes the card to match.
type PlayCommand struct {
	state  *GameState
	player int
	cards  deck.Cards
	rules  Rules
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
	for _, card := range c.cards[1:] {
		if card.Rank != c.cards[0].Rank {
			return protocol.Failed(protocol.InvalidPlay)
		}
	}

	discard, ok := s.CardToMatch()
	if !ok || !c.rules.IsValidPlay(c.cards[0], discard, s.Turn.TurnNumber, s.Turn.SelectedSuit) {
		return protocol.Failed(protocol.InvalidPlay)
	}
	return protocol.Succeeded()
}

func (c *PlayCommand) Execute() (*GameState, error) {
	next := c.state.clone()

	if err := next.Table.MoveCardsFromPlayerToDiscardPile(c.player, c.cards); err != nil {
		return nil, fmt.Errorf("playing %s: %w", c.cards, err)
	}
	next.Events.Append(game.Event{
		Type:   game.Played,
		Player: c.player,
		Turn:   next.Turn.TurnNumber,
		Cards:  c.cards.Clone(),
	})
	next.logMoves(c.player)
	next.Turn.SelectedSuit = deck.NoSuit

	switch {
	case next.Hand(c.player).IsEmpty():
		next.Play.Winner = c.player
		next.Turn.NextAction = Won
		next.Turn.ValidPlays = deck.Cards{}
		next.Events.Append(game.Event{Type: game.RoundWon, Player: c.player, Turn: next.Turn.TurnNumber})

	case c.cards[len(c.cards)-1].Rank == deck.Eight:
		next.Turn.NextAction = SelectSuit
		next.Turn.ValidPlays = deck.Cards{}

	default:
		next.endTurn(c.rules)
	}

	return next, nil
}

// SelectSuitCommand names the suit to follow after an eight
type SelectSuitCommand struct {
	state  *GameState
	player int
	suit   deck.Suit
	rules  Rules
}

func (c *SelectSuitCommand) IsValid() protocol.Result {
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
	if s.Turn.NextAction != SelectSuit || !c.suit.Valid() {
		return protocol.Failed(protocol.InvalidPlay)
	}
	return protocol.Succeeded()
}

func (c *SelectSuitCommand) Execute() (*GameState, error) {
	next := c.state.clone()
	next.Turn.SelectedSuit = c.suit
	next.Events.Append(game.Event{
		Type:   game.SuitSelected,
		Player: c.player,
		Turn:   next.Turn.TurnNumber,
		Suit:   c.suit,
	})
	next.endTurn(c.rules)
	return next, nil
}
