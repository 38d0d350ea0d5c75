package deck

import (
	"testing"

	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
)

func TestCards(t *testing.T) {
	t.Run("take from start and end", func(t *testing.T) {
		cs := MustParseCards("AC 2C 3C")

		first, err := cs.TakeFromStart()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, first, NewCard(Ace, Clubs))

		last, err := cs.TakeFromEnd()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, last, NewCard(Three, Clubs))

		assert.Equal(t, MustParseCards("2C"), cs)
	})

	t.Run("taking from an empty collection fails", func(t *testing.T) {
		cs := Cards{}
		_, err := cs.TakeFromStart()
		assert.ErrorIs(t, err, ErrEmpty)
		_, err = cs.TakeFromEnd()
		assert.ErrorIs(t, err, ErrEmpty)
		_, err = cs.PeekStart()
		assert.ErrorIs(t, err, ErrEmpty)
		utils.AssertTrue(t, cs.IsEmpty())
	})

	t.Run("add at start keeps the added order", func(t *testing.T) {
		cs := MustParseCards("3C")
		cs.AddAtStart(MustParseCards("AC 2C")...)
		cs.AddAtEnd(NewCard(Four, Clubs))
		assert.Equal(t, MustParseCards("AC 2C 3C 4C"), cs)
	})

	t.Run("taking from a clone leaves the original alone", func(t *testing.T) {
		cs := MustParseCards("AC 2C 3C")
		clone := cs.Clone()
		_, _ = clone.TakeFromStart()
		clone.AddAtStart(NewCard(King, Hearts))
		assert.Equal(t, MustParseCards("AC 2C 3C"), cs)
	})

	t.Run("remove", func(t *testing.T) {
		cs := MustParseCards("AC 2C 3C")
		utils.AssertNoError(t, cs.Remove(NewCard(Two, Clubs)))
		assert.Equal(t, MustParseCards("AC 3C"), cs)
		assert.ErrorIs(t, cs.Remove(NewCard(Two, Clubs)), ErrCardMissing)
	})

	t.Run("same cards ignores order but not multiplicity", func(t *testing.T) {
		utils.AssertTrue(t, MustParseCards("AC 2C 3C").SameCards(MustParseCards("3C AC 2C")))
		utils.AssertFalse(t, MustParseCards("AC AC 2C").SameCards(MustParseCards("AC 2C 2C")))
		utils.AssertFalse(t, MustParseCards("AC").SameCards(MustParseCards("AC 2C")))
	})

	t.Run("of suit", func(t *testing.T) {
		cs := MustParseCards("AC 2H 3C")
		assert.Equal(t, MustParseCards("AC 3C"), cs.OfSuit(Clubs))
		utils.AssertTrue(t, cs.OfSuit(Spades).IsEmpty())
	})

	t.Run("string form", func(t *testing.T) {
		utils.AssertEqual(t, MustParseCards("10H qs").String(), "[TH QS]")
	})
}
