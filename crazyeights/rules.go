package crazyeights

import "github.com/minaorangina/cardtable/deck"

// Rules decides which cards may be played onto the discard pile
type Rules interface {
	GetValidPlays(discard deck.Card, hand deck.Cards, turnNumber int, selectedSuit deck.Suit) deck.Cards
	IsValidPlay(played, discard deck.Card, turnNumber int, selectedSuit deck.Suit) bool
}

// BasicVariantRules: match the suit or the rank of the card to match, or
// play an eight. After an eight, the suit to match is the one its player
// selected. An eight turned up at the start of the game allows any card.
type BasicVariantRules struct{}

func (r BasicVariantRules) GetValidPlays(discard deck.Card, hand deck.Cards, turnNumber int, selectedSuit deck.Suit) deck.Cards {
	plays := deck.Cards{}
	seen := map[deck.Card]struct{}{}
	for _, c := range hand {
		if _, ok := seen[c]; ok {
			continue
		}
		if r.IsValidPlay(c, discard, turnNumber, selectedSuit) {
			plays = append(plays, c)
			seen[c] = struct{}{}
		}
	}
	return plays
}

func (BasicVariantRules) IsValidPlay(played, discard deck.Card, turnNumber int, selectedSuit deck.Suit) bool {
	if discard.Rank == deck.Eight && turnNumber == 1 {
		return true
	}

	suitToMatch := discard.Suit
	if discard.Rank == deck.Eight && selectedSuit.Valid() {
		suitToMatch = selectedSuit
	}

	return played.Suit == suitToMatch ||
		played.Rank == discard.Rank ||
		played.Rank == deck.Eight
}
