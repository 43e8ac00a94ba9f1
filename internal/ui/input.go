package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/item-directory/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "(type to search items)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.search.CursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the search term on the items screen. It reports
// whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.screen != ScreenItems || m.browser == nil {
		return false
	}
	before := m.search.CursorPos()
	screen := m.screen.String()
	switch msg.String() {
	case "ctrl+u":
		if !m.search.Clear() {
			return false
		}
		events.Filter.Cleared(screen)
		m.searchChanged(before)
		return true
	case "ctrl+w":
		if !m.search.DeleteWordBackward() {
			return false
		}
		events.Filter.WordBackspace(screen, m.search.Text)
		m.searchChanged(before)
		return true
	case "ctrl+a":
		return m.moveSearchCursor(before, m.search.MoveStart())
	case "ctrl+e":
		return m.moveSearchCursor(before, m.search.MoveEnd())
	case "alt+b":
		return m.moveSearchCursor(before, m.search.MoveWordBackward())
	case "alt+f":
		return m.moveSearchCursor(before, m.search.MoveWordForward())
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.search.DeleteRuneBackward() {
			return false
		}
		events.Filter.Backspace(screen, m.search.Text)
		m.searchChanged(before)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(before, string(msg.Runes))
	case tea.KeySpace:
		return m.appendToSearch(before, " ")
	case tea.KeyLeft:
		return m.moveSearchCursor(before, m.search.MoveRuneBackward())
	case tea.KeyRight:
		return m.moveSearchCursor(before, m.search.MoveRuneForward())
	}
	return false
}

func (m *Model) appendToSearch(before int, text string) bool {
	if !m.search.Insert(text) {
		return false
	}
	events.Filter.Append(m.screen.String(), m.search.Text)
	m.searchChanged(before)
	return true
}

func (m *Model) moveSearchCursor(before int, moved bool) bool {
	if !moved {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Cursor(m.screen.String(), m.search.CursorPos())
	return true
}

// searchChanged pushes the edited term into the browser and places the list
// cursor on the best match.
func (m *Model) searchChanged(before int) {
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	m.applySearch()
}

func (m *Model) applySearch() {
	term := m.search.Text
	m.browser.SetSearch(term)
	m.refreshItems()
	if strings.TrimSpace(term) != "" {
		m.items.MoveCursorTo(m.browser.BestMatch(strings.TrimSpace(term)))
	}
	m.syncViewport(m.items)
	events.Browser.Search(term, m.browser.VisibleLen())
}

func (m *Model) filterPrompt() string {
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.screen != ScreenItems {
		return prompt + render(styles.FilterPlaceholder, "ctrl+b to search items")
	}
	text := m.search.Text
	if text == "" {
		runes := []rune(searchPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.search.CursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
