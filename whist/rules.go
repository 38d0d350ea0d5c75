package whist

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/table"
)

// TrickWinnerFunc returns the number of the player who won a completed trick
type TrickWinnerFunc func(plays []table.Play, trickSuit deck.Suit) int

// Rules are the Whist rules. Players must follow the suit led when they can.
type Rules struct {
	TrickWinner TrickWinnerFunc
}

func NewRules() Rules {
	return Rules{TrickWinner: HighestOfLedSuit}
}

// IsValidPlay: any card leads a trick, and after that a card of the
// trick suit, or any card from a hand holding none of the trick suit
func (Rules) IsValidPlay(played deck.Card, trickSuit deck.Suit, hand deck.Cards) bool {
	if !trickSuit.Valid() || played.Suit == trickSuit {
		return true
	}
	return hand.OfSuit(trickSuit).IsEmpty()
}

func (r Rules) GetValidPlays(hand deck.Cards, trickSuit deck.Suit) deck.Cards {
	plays := deck.Cards{}
	for _, c := range hand {
		if r.IsValidPlay(c, trickSuit, hand) {
			plays = append(plays, c)
		}
	}
	return plays
}

// HighestOfLedSuit awards the trick to the highest card of the suit led,
// aces high. Cards of other suits never win.
func HighestOfLedSuit(plays []table.Play, trickSuit deck.Suit) int {
	winner, best := 0, -1
	for _, p := range plays {
		if p.Card.Suit != trickSuit {
			continue
		}
		if v := acesHigh(p.Card.Rank); v > best {
			winner, best = p.Player, v
		}
	}
	return winner
}

func acesHigh(r deck.Rank) int {
	if r == deck.Ace {
		return int(deck.King) + 1
	}
	return int(r)
}
