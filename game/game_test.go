package game

import (
	"errors"
	"testing"

	"github.com/minaorangina/cardtable/deck"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog(t *testing.T) {
	t.Run("numbers start at one and increase", func(t *testing.T) {
		var log EventLog
		utils.AssertEqual(t, log.NextEventNumber(), 1)

		log.Append(Event{Type: DealCompleted}, Event{Type: TurnEnded})
		log.Append(Event{Type: Played, Number: 99})

		events := log.Events()
		require.Len(t, events, 3)
		for i, e := range events {
			utils.AssertEqual(t, e.Number, i+1)
		}
		utils.AssertEqual(t, log.NextEventNumber(), 4)
	})

	t.Run("copies do not share memory", func(t *testing.T) {
		var log EventLog
		log.Append(Event{Type: DealCompleted})

		clone := log.Clone()
		clone.Append(Event{Type: Played})

		utils.AssertEqual(t, log.Len(), 1)
		utils.AssertEqual(t, clone.Len(), 2)

		events := log.Events()
		events[0].Type = RoundWon
		first, _ := log.Last()
		utils.AssertEqual(t, first.Type, DealCompleted)
	})

	t.Run("since and of type", func(t *testing.T) {
		var log EventLog
		log.Append(Event{Type: Played}, Event{Type: TurnEnded}, Event{Type: Played})

		utils.AssertEqual(t, len(log.Since(1)), 2)
		utils.AssertEqual(t, len(log.OfType(Played)), 2)
		utils.AssertEqual(t, len(log.Since(3)), 0)
	})
}

type counterState struct {
	count int
}

type incrementCommand struct {
	state  *counterState
	player int
}

func (c incrementCommand) IsValid() protocol.Result {
	if c.player != 1 {
		return protocol.Failed(protocol.NotPlayersTurn)
	}
	return protocol.Succeeded()
}

func (c incrementCommand) Execute() (*counterState, error) {
	return &counterState{count: c.state.count + 1}, nil
}

type brokenCommand struct{}

func (brokenCommand) IsValid() protocol.Result { return protocol.Succeeded() }

func (brokenCommand) Execute() (*counterState, error) {
	return nil, errors.New("boom")
}

func counterFactory(s *counterState, ctx protocol.CommandContext) (Command[*counterState], bool) {
	switch ctx.Command {
	case protocol.Play:
		return incrementCommand{state: s, player: ctx.Player}, true
	case protocol.Take:
		return brokenCommand{}, true
	}
	return nil, false
}

func TestEngine(t *testing.T) {
	t.Run("valid commands install a new state", func(t *testing.T) {
		initial := &counterState{}
		e := NewEngine("g1", initial, counterFactory, nil)

		res := e.Process(protocol.PlayContext(1))
		utils.AssertTrue(t, res.IsSuccess)
		utils.AssertEqual(t, e.State().count, 1)
		utils.AssertEqual(t, initial.count, 0)
	})

	t.Run("invalid commands keep the state", func(t *testing.T) {
		e := NewEngine("g1", &counterState{}, counterFactory, nil)
		before := e.State()

		res := e.Process(protocol.PlayContext(2))
		utils.AssertEqual(t, res, protocol.Failed(protocol.NotPlayersTurn))
		assert.Same(t, before, e.State())
	})

	t.Run("unknown commands", func(t *testing.T) {
		e := NewEngine("g1", &counterState{}, counterFactory, nil)
		res := e.Process(protocol.SelectSuitContext(1, deck.Hearts))
		utils.AssertEqual(t, res.Key, protocol.UnknownCommand)
	})

	t.Run("execution errors are reported as invalid state", func(t *testing.T) {
		e := NewEngine("g1", &counterState{count: 5}, counterFactory, nil)
		res := e.Process(protocol.TakeContext(1))
		utils.AssertEqual(t, res.Key, protocol.InvalidState)
		utils.AssertEqual(t, e.State().count, 5)
	})
}

func TestChoosers(t *testing.T) {
	players := table.NewPlayers("a", "b", "c")

	p, err := FixedChooser{Number: 2}.Choose(players)
	require.NoError(t, err)
	utils.AssertEqual(t, p.Number, 2)

	_, err = FixedChooser{Number: 7}.Choose(players)
	assert.ErrorIs(t, err, table.ErrUnknownPlayer)

	_, err = NewRandomChooser(1).Choose(nil)
	assert.ErrorIs(t, err, ErrNoPlayers)

	first, err := NewRandomChooser(3).Choose(players)
	require.NoError(t, err)
	again, _ := NewRandomChooser(3).Choose(players)
	utils.AssertEqual(t, first.Number, again.Number)
}

func TestReplay(t *testing.T) {
	cards := deck.MustParseCards("AC 2C 3C")
	tbl := table.New(table.NewPlayers("a", "b"), cards)

	var log EventLog
	log.Append(Event{Type: Shuffled, Cards: cards})
	_, err := tbl.MoveCardFromStockPileToPlayer(1)
	require.NoError(t, err)
	_, err = tbl.MoveCardFromStockPileToDiscardPile()
	require.NoError(t, err)
	log.Append(MovedEvents(0, 0, tbl.DrainMoves())...)
	log.Append(Event{Type: DealCompleted}, Event{Type: RoundWon, Player: 1})

	p, err := Replay(log.Events())
	require.NoError(t, err)
	utils.AssertTrue(t, p.Dealt)
	utils.AssertEqual(t, p.Winner, 1)
	utils.AssertTrue(t, p.Matches(tbl))

	t.Run("a move the table did not make does not match", func(t *testing.T) {
		_, err := tbl.MoveCardFromStockPileToPlayer(2)
		require.NoError(t, err)
		utils.AssertFalse(t, p.Matches(tbl))
	})

	t.Run("moving a card from where it is not fails", func(t *testing.T) {
		bad := []Event{{Number: 1, Type: CardMoved, Move: &table.Move{
			Card: deck.NewCard(deck.King, deck.Hearts), From: table.StockLocation, To: table.HandOf(1),
		}}}
		_, err := Replay(bad)
		assert.ErrorIs(t, err, ErrReplay)
	})
}

func TestRedact(t *testing.T) {
	ace := deck.NewCard(deck.Ace, deck.Clubs)
	two := deck.NewCard(deck.Two, deck.Clubs)
	three := deck.NewCard(deck.Three, deck.Clubs)
	events := []Event{
		{Number: 1, Type: Shuffled, Cards: deck.Cards{ace, two, three}},
		{Number: 2, Type: CardMoved, Move: &table.Move{Card: ace, From: table.StockLocation, To: table.HandOf(1)}},
		{Number: 3, Type: CardMoved, Move: &table.Move{Card: two, From: table.StockLocation, To: table.HandOf(2)}},
		{Number: 4, Type: CardMoved, Move: &table.Move{Card: three, From: table.StockLocation, To: table.DiscardLocation}},
		{Number: 5, Type: Taken, Player: 2, Cards: deck.Cards{two}},
		{Number: 6, Type: Played, Player: 1, Cards: deck.Cards{ace}},
	}

	t.Run("a player sees their own cards and the face up ones", func(t *testing.T) {
		got := Redact(events, 1)
		require.Len(t, got, len(events))

		utils.AssertDeepEqual(t, got[0].Cards, make(deck.Cards, 3))
		utils.AssertEqual(t, got[1].Move.Card, ace)
		utils.AssertTrue(t, got[2].Move.Card.IsZero())
		utils.AssertEqual(t, got[2].Move.To, table.HandOf(2))
		utils.AssertEqual(t, got[3].Move.Card, three)
		utils.AssertDeepEqual(t, got[4].Cards, make(deck.Cards, 1))
		utils.AssertDeepEqual(t, got[5].Cards, deck.Cards{ace})
	})

	t.Run("the taker sees what they took", func(t *testing.T) {
		got := Redact(events, 2)
		utils.AssertDeepEqual(t, got[4].Cards, deck.Cards{two})
		utils.AssertEqual(t, got[2].Move.Card, two)
		utils.AssertTrue(t, got[1].Move.Card.IsZero())
	})

	t.Run("a spectator sees only face up cards", func(t *testing.T) {
		got := Redact(events, 0)
		utils.AssertTrue(t, got[1].Move.Card.IsZero())
		utils.AssertTrue(t, got[2].Move.Card.IsZero())
		utils.AssertEqual(t, got[3].Move.Card, three)
	})

	t.Run("the log itself is untouched", func(t *testing.T) {
		Redact(events, 0)
		utils.AssertEqual(t, events[1].Move.Card, ace)
		utils.AssertDeepEqual(t, events[0].Cards, deck.Cards{ace, two, three})
	})
}
