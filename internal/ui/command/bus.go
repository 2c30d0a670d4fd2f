package command

import (
	"fmt"

	"github.com/atomicstack/gridkit/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Result communicates the outcome of a page action back to the model.
type Result struct {
	ID   string
	Info string
	Err  error
}

// Action performs the side effect of a request. Returning a zero Result with no
// error and no info is treated as a no-op.
type Action func() Result

// Request encapsulates an action invocation.
type Request struct {
	ID     string
	Label  string
	Action Action
}

// Bus coordinates the execution of page actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Action == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		result := req.Action()
		result.ID = req.ID
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", result))
		if result.Err != nil {
			events.Action.Error(result.Err)
		} else {
			events.Action.Success(result.Info)
		}
		return result
	}
}
