package rummy

import (
	"testing"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(s string) deck.Cards {
	return deck.MustParseCards(s)
}

func card(s string) deck.Card {
	c, err := deck.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestMelds(t *testing.T) {
	tt := []struct {
		cards string
		set   bool
		run   bool
	}{
		{"5H 5S 5D", true, false},
		{"5H 5S 5D 5C", true, false},
		{"5H 5S", false, false},
		{"AC 2C 3C", false, true},
		{"9D JD TD", false, true},
		{"QH KH AH", false, false},
		{"2C 3C 4D", false, false},
		{"2C 2C 2C", false, false},
	}
	for _, tc := range tt {
		t.Run(tc.cards, func(t *testing.T) {
			utils.AssertEqual(t, IsSet(cards(tc.cards)), tc.set)
			utils.AssertEqual(t, IsRun(cards(tc.cards)), tc.run)
			utils.AssertEqual(t, IsMeld(cards(tc.cards)), tc.set || tc.run)
		})
	}
}

func dealt(t *testing.T, b deck.EngineeredBuilder) (*Game, deck.Cards) {
	t.Helper()
	g, err := New("rummy", []string{"a", "b"}, Options{
		HandSize: len(b.Hands[0]),
		Shuffler: deck.FixedShuffler{},
		Chooser:  game.FixedChooser{Number: 1},
	})
	require.NoError(t, err)
	deal := b.Build()
	require.True(t, g.Deal(deal).IsSuccess)
	return g, deal
}

func assertConserved(t *testing.T, g *Game, deal deck.Cards) {
	t.Helper()
	s := g.State()
	utils.AssertTrue(t, s.Table.AllCards().SameCards(deal))
	p, err := game.Replay(s.Events.Events())
	require.NoError(t, err)
	utils.AssertTrue(t, p.Matches(s.Table))
}

func TestNew(t *testing.T) {
	_, err := New("r", []string{"a"}, Options{})
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = New("r", []string{"a", "b", "c", "d", "e", "f"}, Options{HandSize: 9})
	assert.ErrorIs(t, err, ErrHandTooLarge)

	g, err := New("r", []string{"a", "b", "c", "d", "e", "f"}, Options{})
	require.NoError(t, err)
	utils.AssertTrue(t, g.Deal(nil).IsSuccess)
}

func TestRummyTurn(t *testing.T) {
	g, deal := dealt(t, deck.EngineeredBuilder{
		Hands:     []deck.Cards{cards("5H 5S 5D"), cards("2C 3C 9S")},
		Discard:   card("KD"),
		StockPile: cards("5C 4C JH"),
	})
	utils.AssertEqual(t, g.State().Turn.NextAction, Take)

	t.Run("take before playing", func(t *testing.T) {
		utils.AssertEqual(t, g.Play(1, card("5H")), protocol.Failed(protocol.InvalidPlay))
		utils.AssertEqual(t, g.Take(2), protocol.Failed(protocol.NotPlayersTurn))

		require.True(t, g.Take(1).IsSuccess)
		s := g.State()
		utils.AssertEqual(t, s.Turn.NextAction, Play)
		utils.AssertEqual(t, s.Turn.TakenCard, card("5C"))
		utils.AssertEqual(t, g.Take(1), protocol.Failed(protocol.AlreadyTaken))
	})

	t.Run("melds need three cards", func(t *testing.T) {
		utils.AssertEqual(t, g.Play(1, card("5H"), card("5S")), protocol.Failed(protocol.InvalidPlay))
		utils.AssertEqual(t, g.Play(1, card("5H"), card("5S"), card("AC")), protocol.Failed(protocol.CardIsNotInPlayersHand))

		require.True(t, g.Play(1, card("5H"), card("5S"), card("5D")).IsSuccess)
		s := g.State()
		require.Len(t, s.Table.Melds, 1)
		assert.Equal(t, cards("5H 5S 5D"), s.Table.Melds[0].Cards)
		utils.AssertEqual(t, s.Turn.PlayerToPlay, 1)
		assertConserved(t, g, deal)
	})

	t.Run("discarding the last card wins", func(t *testing.T) {
		require.True(t, g.Play(1, card("5C")).IsSuccess)
		s := g.State()
		utils.AssertEqual(t, s.Play.Winner, 1)
		utils.AssertEqual(t, s.Turn.NextAction, Won)
		utils.AssertEqual(t, g.Take(2), protocol.Failed(protocol.GameCompleted))
		assertConserved(t, g, deal)
	})
}

func TestTakingFromTheDiscardPile(t *testing.T) {
	g, deal := dealt(t, deck.EngineeredBuilder{
		Hands:     []deck.Cards{cards("5H 7S"), cards("2C 3C")},
		Discard:   card("KD"),
		StockPile: cards("JH"),
	})

	require.True(t, g.TakeFromDiscard(1).IsSuccess)
	s := g.State()
	utils.AssertTrue(t, s.Hand(1).Contains(card("KD")))
	_, ok := s.CardToMatch()
	utils.AssertFalse(t, ok)

	require.True(t, g.Play(1, card("7S")).IsSuccess)
	s = g.State()
	utils.AssertEqual(t, s.Turn.PlayerToPlay, 2)
	utils.AssertEqual(t, s.Turn.TurnNumber, 2)
	toMatch, _ := s.CardToMatch()
	utils.AssertEqual(t, toMatch, card("7S"))
	assertConserved(t, g, deal)
}

func TestStockPileRecycle(t *testing.T) {
	g, deal := dealt(t, deck.EngineeredBuilder{
		Hands:     []deck.Cards{cards("2C"), cards("3D")},
		Discard:   card("9H"),
		StockPile: cards("KS QS"),
	})

	require.True(t, g.Take(1).IsSuccess)
	require.True(t, g.Play(1, card("2C")).IsSuccess)

	t.Log("When player 2 draws the last stockpile card")
	require.True(t, g.Take(2).IsSuccess)

	t.Log("Then the old discards are the new stockpile and the top discard stays")
	s := g.State()
	assert.Equal(t, cards("9H"), s.Table.StockPile.Cards)
	toMatch, _ := s.CardToMatch()
	utils.AssertEqual(t, toMatch, card("2C"))
	utils.AssertEqual(t, len(s.Events.OfType(game.Shuffled)), 2)
	assertConserved(t, g, deal)
}

func TestEmptyStockPile(t *testing.T) {
	g, _ := dealt(t, deck.EngineeredBuilder{
		Hands:   []deck.Cards{cards("2C"), cards("3D")},
		Discard: card("9H"),
	})
	utils.AssertEqual(t, g.Take(1), protocol.Failed(protocol.InvalidTake))
	utils.AssertTrue(t, g.TakeFromDiscard(1).IsSuccess)
}
