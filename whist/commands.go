package whist

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

// DealCommand deals the deck one card at a time until every player has
// an equal share. Cards left over stay in the stockpile.
type DealCommand struct {
	state    *GameState
	cards    deck.Cards
	shuffler deck.Shuffler
	rules    Rules
}

func (c *DealCommand) IsValid() protocol.Result {
	if c.state.Play.Dealt {
		return protocol.Failed(protocol.AlreadyDealt)
	}
	n := len(c.state.Table.Players)
	if len(c.cards) < n || !c.cards.Unique() {
		return protocol.Failed(protocol.InvalidState)
	}
	return protocol.Succeeded()
}

func (c *DealCommand) Execute() (*GameState, error) {
	next := c.state.clone()

	shuffled := c.shuffler.Shuffle(c.cards)
	next.Table.StockPile = table.NewStockPile(shuffled)
	next.Events.Append(game.Event{Type: game.Shuffled, Cards: shuffled.Clone()})

	for i := 0; i < len(c.cards)/len(next.Table.Players); i++ {
		for _, p := range next.Table.Players {
			if _, err := next.Table.MoveCardFromStockPileToPlayer(p.Number); err != nil {
				return nil, fmt.Errorf("dealing to player %d: %w", p.Number, err)
			}
		}
	}
	next.logMoves(0)

	lead := next.Setup.PlayerToStart
	if _, err := next.Table.Player(lead); err != nil {
		lead = next.Table.Players[0].Number
		next.Setup.PlayerToStart = lead
	}

	next.Play.Dealt = true
	next.Trick = StateOfTrick{TrickNumber: 1, LeadPlayer: lead}
	next.Events.Append(game.Event{Type: game.DealCompleted, Player: lead, Turn: 1})
	next.toPlay(c.rules, lead)
	return next, nil
}

// PlayCommand plays one card into the trick. The last card of a trick
// decides it, and the last trick decides the round.
type PlayCommand struct {
	state  *GameState
	player int
	cards  deck.Cards
	rules  Rules
}

func (c *PlayCommand) IsValid() protocol.Result {
	s := c.state
	if s.Play.HasWinner() {
		return protocol.Failed(protocol.GameCompleted)
	}
	if !s.Play.Dealt {
		return protocol.Failed(protocol.GameNotStarted)
	}
	if c.player != s.Trick.PlayerToPlay {
		return protocol.Failed(protocol.NotPlayersTurn)
	}
	if len(c.cards) != 1 {
		return protocol.Failed(protocol.InvalidPlay)
	}
	hand := s.Hand(c.player)
	if !hand.Contains(c.cards[0]) {
		return protocol.Failed(protocol.CardIsNotInPlayersHand)
	}
	if !c.rules.IsValidPlay(c.cards[0], s.Trick.TrickSuit, hand) {
		return protocol.Failed(protocol.InvalidPlay)
	}
	return protocol.Succeeded()
}

func (c *PlayCommand) Execute() (*GameState, error) {
	next := c.state.clone()
	card := c.cards[0]
	trick := next.Trick.TrickNumber

	if next.Table.Trick.Len() == 0 {
		next.Events.Append(game.Event{Type: game.TrickStarted, Player: c.player, Turn: trick})
	}
	if err := next.Table.MoveCardFromPlayerToTrick(c.player, card); err != nil {
		return nil, fmt.Errorf("playing %s: %w", card.Token(), err)
	}
	next.Events.Append(game.Event{Type: game.Played, Player: c.player, Turn: trick, Cards: deck.Cards{card}})
	next.logMoves(c.player)

	next.Trick.CardsPlayed++
	next.Trick.TrickSuit = next.Table.Trick.Suit()

	if next.Table.Trick.Len() < len(next.Table.Players) {
		next.toPlay(c.rules, next.Table.NextPlayer(c.player))
		return next, nil
	}

	winner := c.rules.TrickWinner(next.Table.Trick.Plays, next.Trick.TrickSuit)
	won, err := next.Table.MoveTrickToPlayer(winner)
	if err != nil {
		return nil, fmt.Errorf("trick %d to player %d: %w", trick, winner, err)
	}
	next.Events.Append(game.Event{Type: game.TrickCompleted, Player: winner, Turn: trick, Cards: won})
	next.logMoves(winner)
	next.Trick.LastWinner = winner

	if next.handsEmpty() {
		next.Play.Winner = next.roundWinner()
		next.Trick.ValidPlays = deck.Cards{}
		next.Events.Append(game.Event{Type: game.RoundWon, Player: next.Play.Winner, Turn: trick})
		return next, nil
	}

	next.Trick.TrickNumber++
	next.Trick.LeadPlayer = winner
	next.Trick.TrickSuit = deck.NoSuit
	next.Trick.CardsPlayed = 0
	next.toPlay(c.rules, winner)
	return next, nil
}
