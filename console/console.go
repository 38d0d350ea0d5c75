// Package console plays a game of Crazy Eights at a terminal. Every seat is
// played from the same input, one turn at a time.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/cardtable/crazyeights"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/sirupsen/logrus"
)

const defaultMaxRetries = 5

var (
	ErrInputClosed     = errors.New("input closed")
	ErrTooManyRetries  = errors.New("too many invalid entries")
	ErrCouldNotDeal    = errors.New("could not deal")
	ErrUnexpectedState = errors.New("unexpected state")
)

// Controller reads card tokens from in and writes the table to out
type Controller struct {
	game       *crazyeights.Game
	in         *bufio.Scanner
	out        io.Writer
	log        logrus.FieldLogger
	MaxRetries int
	retries    int
}

// New creates a controller. A nil logger discards output.
func New(g *crazyeights.Game, in io.Reader, out io.Writer, logger logrus.FieldLogger) *Controller {
	if logger == nil {
		logger = game.DiscardLogger()
	}
	return &Controller{
		game:       g,
		in:         bufio.NewScanner(in),
		out:        out,
		log:        logger.WithField("game", g.ID()),
		MaxRetries: defaultMaxRetries,
	}
}

// Run deals cards (or a fresh deck when cards is empty) and plays until
// someone wins or the input runs out
func (c *Controller) Run(cards deck.Cards) error {
	if res := c.game.ChooseStartingPlayer(); !res.IsSuccess {
		return fmt.Errorf("%w: %s", ErrCouldNotDeal, res.Key)
	}
	if res := c.game.Deal(cards); !res.IsSuccess {
		return fmt.Errorf("%w: %s", ErrCouldNotDeal, res.Key)
	}
	SendText(c.out, startGameText)

	for {
		s := c.game.State()
		if s.Play.HasWinner() {
			SendText(c.out, wonText, playerName(s, s.Play.Winner))
			c.log.WithField("winner", s.Play.Winner).Info("game won")
			return nil
		}

		if err := c.takeTurn(s); err != nil {
			if errors.Is(err, ErrTooManyRetries) {
				SendText(c.out, maxRetriesText)
			}
			return err
		}
	}
}

func (c *Controller) takeTurn(s *crazyeights.GameState) error {
	player := s.Turn.PlayerToPlay

	switch s.Turn.NextAction {
	case crazyeights.Play:
		SendText(c.out, "%s", buildTurnText(s))
		line, err := c.prompt(playPromptText)
		if err != nil {
			return err
		}
		cards, err := deck.ParseCards(line)
		if err != nil || len(cards) == 0 {
			return c.retry(retryCardsText)
		}
		return c.handle(player, c.game.Play(player, cards...))

	case crazyeights.SelectSuit:
		line, err := c.prompt(suitPromptText)
		if err != nil {
			return err
		}
		suit, err := deck.ParseSuit(line)
		if err != nil {
			return c.retry(retrySuitText)
		}
		return c.handle(player, c.game.SelectSuit(player, suit))

	case crazyeights.Take:
		SendText(c.out, "%s", buildTurnText(s))
		if _, err := c.prompt(takePromptText); err != nil {
			return err
		}
		res := c.game.Take(player)
		if res.IsSuccess {
			if taken := c.game.State().Hand(player); len(taken) > s.Hand(player).Len() {
				SendText(c.out, takenText, taken[len(taken)-1].Token())
			} else {
				SendText(c.out, passedText)
			}
		}
		return c.handle(player, res)
	}

	return fmt.Errorf("%w: next action %s", ErrUnexpectedState, s.Turn.NextAction)
}

// handle shows a rejected command and counts it as a retry
func (c *Controller) handle(player int, res protocol.Result) error {
	if res.IsSuccess {
		c.retries = 0
		return nil
	}
	c.log.WithFields(logrus.Fields{
		"player": player,
		"key":    res.Key,
	}).Debug("command rejected")
	return c.retry(Message(res.Key) + "\n")
}

func (c *Controller) retry(text string) error {
	SendText(c.out, "%s", text)
	c.retries++
	if c.retries >= c.MaxRetries {
		return ErrTooManyRetries
	}
	return nil
}

func (c *Controller) prompt(text string) (string, error) {
	SendText(c.out, text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}
