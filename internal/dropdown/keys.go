package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap lists the bindings an open dropdown reacts to.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Close  key.Binding
}

// DefaultKeyMap is the standard set of bindings.
var DefaultKeyMap = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p", "shift+tab"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n", "tab"), key.WithHelp("↓", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// HandleKey applies msg to an open dropdown. handled is false when the
// dropdown is closed or the key is not bound; chosen is set when the key
// picked an option.
func (d *Dropdown) HandleKey(km KeyMap, msg tea.KeyMsg) (choice Choice, chosen, handled bool) {
	if !d.open {
		return Choice{}, false, false
	}
	switch {
	case key.Matches(msg, km.Up):
		d.MoveCursor(-1)
	case key.Matches(msg, km.Down):
		d.MoveCursor(1)
	case key.Matches(msg, km.Close):
		d.dismiss("escape")
	case key.Matches(msg, km.Choose):
		choice, chosen = d.Choose()
	default:
		return Choice{}, false, false
	}
	return choice, chosen, true
}
