package command

import (
	"fmt"

	"github.com/atomicstack/item-directory/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes a queued action, typically chosen from a dropdown.
type Request struct {
	Label string
	Cmd   tea.Cmd
}

// Bus coordinates the execution of UI actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Label)
	return func() tea.Msg {
		if req.Cmd == nil {
			events.Command.NoOp(req.Label)
			return nil
		}
		msg := req.Cmd()
		events.Command.Result(req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
