package rummy

import (
	"sort"

	"github.com/minaorangina/cardtable/deck"
)

const minMeld = 3

// IsSet reports whether cards are three or more of one rank
func IsSet(cards deck.Cards) bool {
	if len(cards) < minMeld || !cards.Unique() {
		return false
	}
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// IsRun reports whether cards are three or more consecutive ranks of one
// suit, in any order. Aces are low.
func IsRun(cards deck.Cards) bool {
	if len(cards) < minMeld || !cards.Unique() {
		return false
	}
	ranks := make([]int, 0, len(cards))
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			return false
		}
		ranks = append(ranks, int(c.Rank))
	}
	sort.Ints(ranks)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func IsMeld(cards deck.Cards) bool {
	return IsSet(cards) || IsRun(cards)
}
