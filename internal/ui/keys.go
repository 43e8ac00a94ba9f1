package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit         key.Binding
	Back         key.Binding
	Select       key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Categories   key.Binding
	Related      key.Binding
	SwitchScreen key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:         key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:         key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:          key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Categories:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "categories")),
		Related:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "related")),
		SwitchScreen: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "items/blog")),
		ScrollUp:     key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "scroll detail")),
		ScrollDown:   key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "scroll detail")),
	}
}

// footerHelp lists the bindings relevant to screen.
func (k keyMap) footerHelp(screen Screen) string {
	bindings := []key.Binding{k.Up, k.Down, k.Select}
	if screen == ScreenItems {
		bindings = append(bindings, k.Categories, k.Related, k.ScrollDown)
	}
	bindings = append(bindings, k.SwitchScreen, k.Back, k.Quit)
	parts := make([]string, 0, len(bindings)+1)
	if screen == ScreenItems {
		parts = append(parts, "alt+1…9 chip")
	}
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

// chipIndex returns the zero based chip index for alt+1 … alt+9.
func chipIndex(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(string(msg.Runes[0]))
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}
