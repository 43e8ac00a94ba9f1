package ui

import (
	"fmt"

	"github.com/atomicstack/item-directory/internal/logging/events"
	"github.com/atomicstack/item-directory/internal/uievent"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.menuOpen() {
		return m.handleMenuKey(keyMsg)
	}
	if idx, ok := chipIndex(keyMsg); ok {
		m.toggleChip(idx)
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Select):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.SwitchScreen):
		m.switchScreen()
	case key.Matches(keyMsg, m.keys.Categories):
		m.openCategoryMenu()
	case key.Matches(keyMsg, m.keys.Related):
		m.openRelatedMenu()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.currentLevel().MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.currentLevel().MoveCursorDown)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.currentLevel().MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.currentLevel().MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.currentLevel().MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.currentLevel().MoveCursorEnd)
	case key.Matches(keyMsg, m.keys.ScrollUp):
		m.panel.LineUp(1)
	case key.Matches(keyMsg, m.keys.ScrollDown):
		m.panel.LineDown(1)
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	current := m.currentLevel()
	if move() {
		events.UI.Cursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
	if m.screen == ScreenBlog {
		m.refreshPanel()
	}
}

// handleEscapeKey clears the search when there is one and quits otherwise.
// An open dropdown is closed before this is reached.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.screen == ScreenItems && m.search.Text != "" {
		before := m.search.CursorPos()
		m.search.Clear()
		events.Filter.Cleared(m.screen.String())
		m.searchChanged(before)
		return nil
	}
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	entry, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.Enter(current.ID, entry.ID)
	if m.screen == ScreenBlog {
		m.openPostMenu(entry.ID)
		return nil
	}
	m.selectItem(entry.ID)
	return nil
}

func (m *Model) selectItem(id string) {
	if m.browser == nil {
		return
	}
	fellBack := m.browser.Select(id)
	events.Browser.Select(m.browser.SelectedID(), fellBack)
	if fellBack {
		m.setInfo(fmt.Sprintf("Unknown item %q, showing %s", id, m.browser.Selected().Name))
	}
	if idx := m.items.IndexOf(m.browser.SelectedID()); idx >= 0 {
		m.items.MoveCursorTo(idx)
		m.syncViewport(m.items)
	}
	m.refreshPanel()
}

func (m *Model) toggleChip(idx int) {
	if m.screen != ScreenItems || m.browser == nil {
		return
	}
	categories := m.browser.Categories()
	if idx < 0 || idx >= len(categories) {
		return
	}
	m.browser.ToggleCategory(categories[idx])
	m.categoryChanged()
}

func (m *Model) categoryChanged() {
	m.refreshItems()
	m.items.MoveCursorHome()
	m.syncViewport(m.items)
	events.Browser.Category(m.browser.Category(), m.browser.VisibleLen())
}

func (m *Model) switchScreen() {
	m.closeMenu()
	if m.screen == ScreenItems {
		m.screen = ScreenBlog
		m.refreshCards()
	} else {
		m.screen = ScreenItems
	}
	m.errMsg = ""
	m.forceClearInfo()
	m.refreshPanel()
	events.App.Screen(m.screen.String())
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.source.Publish(uievent.Event{Kind: uievent.Resize, Width: resize.Width, Height: resize.Height})
	m.releaseDismissedMenu()
	m.syncViewport(m.currentLevel())
	m.refreshPanel()
	return nil
}

// handleMouseMsg turns presses outside an open dropdown into click-outside
// events and scrolls the side panel with the wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.panel.LineUp(3)
		return nil
	case tea.MouseButtonWheelDown:
		m.panel.LineDown(3)
		return nil
	}
	if ev.Action != tea.MouseActionPress || !m.menuOpen() {
		return nil
	}
	if m.menuRect().contains(ev.X, ev.Y) {
		return nil
	}
	m.source.Publish(uievent.Event{Kind: uievent.ClickOutside, X: ev.X, Y: ev.Y})
	m.releaseDismissedMenu()
	return nil
}

func (m *Model) handleSelectItemMsg(msg tea.Msg) tea.Cmd {
	sel, ok := msg.(selectItemMsg)
	if !ok {
		return nil
	}
	if m.screen != ScreenItems {
		m.switchScreen()
	}
	m.selectItem(sel.id)
	return nil
}

func (m *Model) handlePickCategoryMsg(msg tea.Msg) tea.Cmd {
	pick, ok := msg.(pickCategoryMsg)
	if !ok || m.browser == nil {
		return nil
	}
	m.browser.PickCategory(pick.category)
	m.categoryChanged()
	return nil
}

func (m *Model) handleNavigateMsg(msg tea.Msg) tea.Cmd {
	nav, ok := msg.(navigateMsg)
	if !ok {
		return nil
	}
	if nav.err != nil {
		m.setError(nav.err)
	}
	m.navigate = nav.path
	events.App.Navigate(nav.path)
	return tea.Quit
}
