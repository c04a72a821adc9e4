package command

import (
	"github.com/atomicstack/quirks/internal/logging/events"
	"github.com/atomicstack/quirks/internal/menu"
)

// Request encapsulates an action invocation.
type Request struct {
	ID     string
	Label  string
	Action menu.Action
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request's action synchronously while emitting trace logs.
// A request without an action is skipped.
func (b *Bus) Execute(req Request) error {
	events.Command.Queue(req.ID, req.Label)
	if req.Action == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	err := req.Action.Invoke()
	events.Command.Result(req.ID, req.Label, err)
	return err
}
