package game

import (
	"io"
	"sync"

	"github.com/minaorangina/cardtable/protocol"
	"github.com/sirupsen/logrus"
)

// Command is one state transition. Execute is only called after IsValid
// succeeds, and returns a new state rather than changing the one it read.
type Command[S any] interface {
	IsValid() protocol.Result
	Execute() (S, error)
}

// Factory builds the command for a request. It returns false for a
// command kind the game does not know.
type Factory[S any] func(state S, ctx protocol.CommandContext) (Command[S], bool)

// Engine owns the current state of one game and runs commands against it,
// one at a time
type Engine[S any] struct {
	mu      sync.Mutex
	id      string
	state   S
	factory Factory[S]
	log     logrus.FieldLogger
}

// NewEngine constructs an Engine. A nil logger discards output.
func NewEngine[S any](id string, initial S, factory Factory[S], logger logrus.FieldLogger) *Engine[S] {
	if logger == nil {
		logger = DiscardLogger()
	}
	return &Engine[S]{
		id:      id,
		state:   initial,
		factory: factory,
		log:     logger.WithField("game", id),
	}
}

// DiscardLogger is a logger that writes nowhere
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (e *Engine[S]) ID() string {
	return e.id
}

// State returns the current state
func (e *Engine[S]) State() S {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Process validates and executes a request. On any failure the current
// state is left as it was.
func (e *Engine[S]) Process(ctx protocol.CommandContext) protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	fields := logrus.Fields{
		"cmd":    ctx.Command.String(),
		"player": ctx.Player,
	}

	cmd, ok := e.factory(e.state, ctx)
	if !ok {
		e.log.WithFields(fields).Warn("unknown command")
		return protocol.Failed(protocol.UnknownCommand)
	}

	if res := cmd.IsValid(); !res.IsSuccess {
		e.log.WithFields(fields).WithField("key", res.Key.String()).Debug("command rejected")
		return res
	}

	next, err := cmd.Execute()
	if err != nil {
		e.log.WithFields(fields).WithError(err).Error("command failed")
		return protocol.Failed(protocol.InvalidState)
	}

	e.state = next
	e.log.WithFields(fields).Debug("command executed")
	return protocol.Succeeded()
}
