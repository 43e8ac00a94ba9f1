package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEnterSelectsItemUnderCursor(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyDown))
	if env.model.browser.SelectedID() != "aplus" {
		t.Fatalf("expected moving the cursor to leave the selection alone")
	}
	h.Send(keyType(tea.KeyEnter))
	if env.model.browser.SelectedID() != "apple" {
		t.Fatalf("expected apple selected, got %q", env.model.browser.SelectedID())
	}
	if env.model.panelTitle != "Detail: Apple" {
		t.Fatalf("expected Apple detail, got %q", env.model.panelTitle)
	}
}

func TestCursorKeysWrapAndJump(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyUp))
	if env.model.items.Cursor != 10 {
		t.Fatalf("expected wrap to last row, got %d", env.model.items.Cursor)
	}
	h.Send(keyType(tea.KeyHome))
	if env.model.items.Cursor != 0 {
		t.Fatalf("expected first row, got %d", env.model.items.Cursor)
	}
	h.Send(keyType(tea.KeyEnd))
	if env.model.items.Cursor != 10 {
		t.Fatalf("expected last row, got %d", env.model.items.Cursor)
	}
}

func TestChipTogglesCategory(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	alt1 := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}
	h.Send(alt1)
	if env.model.browser.Category() != "Collectable" {
		t.Fatalf("expected Collectable, got %q", env.model.browser.Category())
	}
	want := []string{"aplus", "trophy", "zebra"}
	if len(env.model.items.Entries) != len(want) {
		t.Fatalf("expected %d collectables, got %d", len(want), len(env.model.items.Entries))
	}
	for i, id := range want {
		if env.model.items.Entries[i].ID != id {
			t.Fatalf("row %d: expected %q, got %q", i, id, env.model.items.Entries[i].ID)
		}
	}
	h.Send(alt1)
	if env.model.browser.Category() != "" {
		t.Fatalf("expected category cleared, got %q", env.model.browser.Category())
	}
	if got := len(env.model.items.Entries); got != 11 {
		t.Fatalf("expected full listing, got %d", got)
	}
}

func TestChipOutOfRangeIsIgnored(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.harness.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9"), Alt: true})
	if env.model.browser.Category() != "" {
		t.Fatalf("expected no category, got %q", env.model.browser.Category())
	}
}

func TestEscapeClearsSearchThenQuits(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	typeText(h, "fish")
	h.Send(keyType(tea.KeyEsc))
	if h.Quit() {
		t.Fatalf("expected first escape to clear the search only")
	}
	if env.model.search.Text != "" {
		t.Fatalf("expected search cleared, got %q", env.model.search.Text)
	}
	h.Send(keyType(tea.KeyEsc))
	if !h.Quit() {
		t.Fatalf("expected second escape to quit")
	}
}

func TestSwitchScreenTogglesLists(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyCtrlB))
	if env.model.Screen() != ScreenBlog {
		t.Fatalf("expected blog screen")
	}
	if env.model.panelTitle != "Post" {
		t.Fatalf("expected post panel, got %q", env.model.panelTitle)
	}
	h.Send(keyType(tea.KeyCtrlB))
	if env.model.Screen() != ScreenItems {
		t.Fatalf("expected items screen")
	}
}

func TestSelectUnknownItemFallsBack(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.harness.Send(selectItemMsg{id: "missing"})
	if env.model.browser.SelectedID() != "aplus" {
		t.Fatalf("expected fallback to aplus, got %q", env.model.browser.SelectedID())
	}
	if env.model.currentInfo() == "" {
		t.Fatalf("expected a fallback notice")
	}
}

func TestWindowSizeUpdatesUnfixedDimensions(t *testing.T) {
	env := newTestEnv(t, Options{})
	m := NewModel(Options{Browser: env.model.browser})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.width != 90 || m.height != 30 {
		t.Fatalf("expected 90x30, got %dx%d", m.width, m.height)
	}
	env.harness.Send(tea.WindowSizeMsg{Width: 90, Height: 30})
	if env.model.width != 120 || env.model.height != 40 {
		t.Fatalf("expected fixed size to win, got %dx%d", env.model.width, env.model.height)
	}
}

func TestPanelScrollsWithWheel(t *testing.T) {
	env := newTestEnv(t, Options{Height: 8})
	before := env.model.panel.YOffset
	env.harness.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if env.model.panel.YOffset <= before {
		t.Fatalf("expected the detail panel to scroll, offset %d", env.model.panel.YOffset)
	}
}
