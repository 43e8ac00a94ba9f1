package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCategoryMenuPicksCategory(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyCtrlO))
	m := env.model
	if !m.menuOpen() || m.menuKind != menuCategory {
		t.Fatalf("expected category menu open")
	}
	if got := m.menu.Len(); got != 7 {
		t.Fatalf("expected All plus 6 categories, got %d", got)
	}
	if m.menu.Cursor() != 0 {
		t.Fatalf("expected cursor on All, got %d", m.menu.Cursor())
	}
	for i := 0; i < 3; i++ {
		h.Send(keyType(tea.KeyDown))
	}
	if m.items.Cursor != 0 {
		t.Fatalf("expected list cursor untouched while the menu is open")
	}
	h.Send(keyType(tea.KeyEnter))
	if m.menuOpen() {
		t.Fatalf("expected menu closed after choosing")
	}
	if m.browser.Category() != "Loot Box" {
		t.Fatalf("expected Loot Box, got %q", m.browser.Category())
	}
	if len(m.items.Entries) != 1 || m.items.Entries[0].ID != "boxdaily" {
		t.Fatalf("expected only boxdaily, got %+v", m.items.Entries)
	}

	h.Send(keyType(tea.KeyCtrlO))
	if m.menu.Cursor() != 3 {
		t.Fatalf("expected cursor on the active category, got %d", m.menu.Cursor())
	}
	h.Send(keyType(tea.KeyEnter))
	if m.browser.Category() != "Loot Box" {
		t.Fatalf("expected picking the active category to keep it, got %q", m.browser.Category())
	}
	h.Send(keyType(tea.KeyCtrlO))
	h.Send(keyType(tea.KeyHome))
	h.Send(keyType(tea.KeyUp))
	h.Send(keyType(tea.KeyUp))
	h.Send(keyType(tea.KeyUp))
	h.Send(keyType(tea.KeyEnter))
	if m.browser.Category() != "" {
		t.Fatalf("expected All to clear the category, got %q", m.browser.Category())
	}
}

func TestEscapeClosesMenuWithoutQuitting(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyCtrlO))
	h.Send(keyType(tea.KeyEsc))
	if env.model.menuOpen() {
		t.Fatalf("expected menu closed")
	}
	if h.Quit() {
		t.Fatalf("expected escape to stop at the menu")
	}
	if env.model.source.Len() != 0 {
		t.Fatalf("expected menu subscriptions released, got %d", env.model.source.Len())
	}
}

func TestRelatedMenuSelectsItem(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(selectItemMsg{id: "starterpack"})
	h.Send(keyType(tea.KeyCtrlR))
	m := env.model
	if !m.menuOpen() || m.menuKind != menuRelated {
		t.Fatalf("expected related menu open")
	}
	opts := m.menu.Options()
	if len(opts) != 3 {
		t.Fatalf("expected 3 related items, got %d", len(opts))
	}
	if opts[0].Label != "Fishing Pole" {
		t.Fatalf("expected first option Fishing Pole, got %q", opts[0].Label)
	}
	h.Send(keyType(tea.KeyEnter))
	if m.browser.SelectedID() != "fishingpole" {
		t.Fatalf("expected fishingpole selected, got %q", m.browser.SelectedID())
	}
	entry, _ := m.items.Current()
	if entry.ID != "fishingpole" {
		t.Fatalf("expected list cursor to follow the selection, got %q", entry.ID)
	}
}

func TestRelatedMenuWithoutReferences(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.harness.Send(keyType(tea.KeyCtrlR))
	if env.model.menuOpen() {
		t.Fatalf("expected no menu for an item without references")
	}
	if env.model.currentInfo() == "" {
		t.Fatalf("expected a notice about missing related items")
	}
}

func TestRelatedMenuShowsAmounts(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(selectItemMsg{id: "sushi"})
	h.Send(keyType(tea.KeyCtrlR))
	found := false
	for _, opt := range env.model.menu.Options() {
		if opt.Label == "Fish x5" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Fish x5 option, got %+v", env.model.menu.Options())
	}
}

func TestResizeDismissesMenu(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyCtrlO))
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if env.model.menuOpen() {
		t.Fatalf("expected resize to dismiss the menu")
	}
}

func TestClickOutsideDismissesMenu(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyCtrlO))
	r := env.model.menuRect()
	h.Send(tea.MouseMsg{X: r.x0, Y: r.y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !env.model.menuOpen() {
		t.Fatalf("expected click inside to keep the menu open")
	}
	h.Send(tea.MouseMsg{X: r.x1 + 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if env.model.menuOpen() {
		t.Fatalf("expected click outside to dismiss the menu")
	}
}

func TestMenuRectSitsAboveBottomBar(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.harness.Send(keyType(tea.KeyCtrlO))
	r := env.model.menuRect()
	if r.y1 != env.model.contentHeight() {
		t.Fatalf("expected menu to end at row %d, got %d", env.model.contentHeight(), r.y1)
	}
	if r.y1-r.y0 != env.model.menu.Len()+2 {
		t.Fatalf("expected menu height %d, got %d", env.model.menu.Len()+2, r.y1-r.y0)
	}
	if !r.contains(0, r.y0) || r.contains(r.x1, r.y0) {
		t.Fatalf("expected half-open bounds, got %+v", r)
	}
}

func TestDismissedMenuReleasesSubscriptions(t *testing.T) {
	env := newTestEnv(t, Options{})
	h := env.harness
	h.Send(keyType(tea.KeyCtrlO))
	if env.model.source.Len() != 2 {
		t.Fatalf("expected click-outside and resize subscriptions, got %d", env.model.source.Len())
	}
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if env.model.source.Len() != 0 {
		t.Fatalf("expected subscriptions released, got %d", env.model.source.Len())
	}
}
