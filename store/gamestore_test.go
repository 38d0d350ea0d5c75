package store

import (
	"sync"
	"testing"

	"github.com/minaorangina/cardtable/crazyeights"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/rummy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) {
			s := NewInMemoryGameStore()
			session, err := s.CreateGame(v, []string{"Ada", "Bea"}, Settings{Seed: 7})
			require.NoError(t, err)

			utils.AssertEqual(t, session.Variant, v)
			require.Len(t, session.Seats, 2)
			utils.AssertEqual(t, session.Seats[1].Number, 2)
			utils.AssertEqual(t, session.Seats[1].Name, "Bea")
			assert.NotEqual(t, session.Seats[0].PlayerID, session.Seats[1].PlayerID)

			found := s.FindGame(session.Game.ID())
			assert.Same(t, session, found)

			res := found.Game.Process(protocol.DealContext(nil))
			utils.AssertTrue(t, res.IsSuccess)
			utils.AssertTrue(t, len(found.Game.Events()) > 0)
		})
	}

	t.Run("unknown variant", func(t *testing.T) {
		s := NewInMemoryGameStore()
		_, err := s.CreateGame("snap", []string{"Ada", "Bea"}, Settings{})
		assert.ErrorIs(t, err, ErrUnknownVariant)
		utils.AssertEqual(t, len(s.GameIDs()), 0)
	})

	t.Run("three at a whist table can start", func(t *testing.T) {
		s := NewInMemoryGameStore()
		session, err := s.CreateGame(Whist, []string{"Ada", "Bea", "Cy"}, Settings{Seed: 1})
		require.NoError(t, err)
		utils.AssertTrue(t, session.Game.Process(protocol.DealContext(nil)).IsSuccess)
	})

	t.Run("hands too large for the deck", func(t *testing.T) {
		s := NewInMemoryGameStore()
		players := []string{"a", "b", "c", "d", "e", "f", "g"}
		_, err := s.CreateGame(CrazyEights, players, Settings{HandSize: 8})
		assert.ErrorIs(t, err, crazyeights.ErrHandTooLarge)
		_, err = s.CreateGame(Rummy, players[:6], Settings{HandSize: 9})
		assert.ErrorIs(t, err, rummy.ErrHandTooLarge)
		utils.AssertEqual(t, len(s.GameIDs()), 0)
	})

	t.Run("too few players", func(t *testing.T) {
		s := NewInMemoryGameStore()
		_, err := s.CreateGame(CrazyEights, []string{"Ada"}, Settings{})
		assert.ErrorIs(t, err, crazyeights.ErrTooFewPlayers)
	})
}

func TestAddGame(t *testing.T) {
	s := NewInMemoryGameStore()
	g, err := NewGame(Whist, "same-id", []string{"a", "b"}, Settings{})
	require.NoError(t, err)

	_, err = s.AddGame(Whist, g, []string{"a", "b"})
	require.NoError(t, err)
	_, err = s.AddGame(Whist, g, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrGameExists)

	assert.Equal(t, []string{"same-id"}, s.GameIDs())
	require.NoError(t, s.RemoveGame("same-id"))
	assert.ErrorIs(t, s.RemoveGame("same-id"), ErrUnknownGameID)
	assert.Nil(t, s.FindGame("same-id"))
}

func TestSessionPlayer(t *testing.T) {
	s := NewInMemoryGameStore()
	session, err := s.CreateGame(Rummy, []string{"Ada", "Bea"}, Settings{})
	require.NoError(t, err)

	n, err := session.Player(session.Seats[0].PlayerID)
	require.NoError(t, err)
	utils.AssertEqual(t, n, 1)

	_, err = session.Player("nobody")
	assert.ErrorIs(t, err, ErrUnknownPlayerID)
}

func TestConcurrentCreates(t *testing.T) {
	s := NewInMemoryGameStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateGame(CrazyEights, []string{"a", "b"}, Settings{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	utils.AssertEqual(t, len(s.GameIDs()), 20)
}
