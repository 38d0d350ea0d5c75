package crazyeights

import (
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
)

// NewFactory returns the command factory for Crazy Eights
func NewFactory(opts Options) game.Factory[*GameState] {
	opts = opts.withDefaults()

	return func(s *GameState, ctx protocol.CommandContext) (game.Command[*GameState], bool) {
		switch ctx.Command {
		case protocol.ChooseStartingPlayer:
			return &ChooseStartingPlayerCommand{state: s, chooser: opts.Chooser}, true

		case protocol.Deal:
			cards := ctx.Deck
			if cards.IsEmpty() {
				cards = opts.Builder.Build()
			}
			return &DealCommand{
				state:    s,
				cards:    cards.Clone(),
				handSize: opts.HandSize,
				shuffler: opts.Shuffler,
				rules:    opts.Rules,
			}, true

		case protocol.Play:
			return &PlayCommand{state: s, player: ctx.Player, cards: ctx.Cards.Clone(), rules: opts.Rules}, true

		case protocol.SelectSuit:
			return &SelectSuitCommand{state: s, player: ctx.Player, suit: ctx.Suit, rules: opts.Rules}, true

		case protocol.Take:
			return &TakeCommand{state: s, player: ctx.Player, shuffler: opts.Shuffler, rules: opts.Rules}, true
		}
		return nil, false
	}
}
