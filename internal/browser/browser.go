// Package browser holds the item directory's selection state: the search
// term, the active category filter, the selected item and the list of items
// currently visible. Every transition re-derives the visible list
// synchronously from the catalog; nothing here is cached between calls.
package browser

import (
	"fmt"
	"strings"

	"github.com/atomicstack/item-directory/internal/catalog"
)

const (
	// AllCategories is the category value meaning "no category filter".
	AllCategories = ""
	// AllLabel is the dropdown entry that clears the category filter.
	AllLabel = "All"
)

// State is the per-view browser state. It is owned by a single view and is
// not safe for concurrent use.
type State struct {
	catalog    *catalog.Catalog
	all        []catalog.Item
	defaultID  string
	search     string
	category   string
	selectedID string
	visible    []catalog.Item
}

// New creates browser state over cat with defaultID selected. The default id
// is the fallback for every failed selection, so it must exist.
func New(cat *catalog.Catalog, defaultID string) (*State, error) {
	if !cat.Has(defaultID) {
		return nil, fmt.Errorf("default item %q: %w", defaultID, catalog.ErrNotFound)
	}
	all := cat.All()
	return &State{
		catalog:    cat,
		all:        all,
		defaultID:  defaultID,
		selectedID: defaultID,
		visible:    catalog.Clone(all),
	}, nil
}

// Search returns the current search term.
func (s *State) Search() string { return s.search }

// Category returns the active category, or AllCategories.
func (s *State) Category() string { return s.category }

// SelectedID returns the id of the selected item.
func (s *State) SelectedID() string { return s.selectedID }

// DefaultID returns the fallback selection.
func (s *State) DefaultID() string { return s.defaultID }

// Catalog exposes the injected catalog.
func (s *State) Catalog() *catalog.Catalog { return s.catalog }

// Categories lists the catalog's categories.
func (s *State) Categories() []string { return s.catalog.Categories() }

// Visible returns a copy of the currently visible items.
func (s *State) Visible() []catalog.Item { return catalog.Clone(s.visible) }

// VisibleLen returns the number of visible items.
func (s *State) VisibleLen() int { return len(s.visible) }

// VisibleAt returns the visible item at idx.
func (s *State) VisibleAt(idx int) (catalog.Item, bool) {
	if idx < 0 || idx >= len(s.visible) {
		return catalog.Item{}, false
	}
	return s.visible[idx], true
}

// IndexOfVisible returns the position of id in the visible list or -1.
func (s *State) IndexOfVisible(id string) int {
	for i, item := range s.visible {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SetSearch applies a new search term. Any search change, including clearing
// it, drops the category filter: a non-empty term shows every item whose name
// contains it (case-insensitively), an empty term shows the full listing.
func (s *State) SetSearch(term string) {
	s.search = term
	s.category = AllCategories
	if term == "" {
		s.visible = catalog.Clone(s.all)
		return
	}
	s.visible = MatchName(s.all, term)
}

// ToggleCategory selects category, or clears the filter when category is
// already the active one. The visible list is re-derived from the category
// alone; the search term is left as typed.
func (s *State) ToggleCategory(category string) {
	if category == s.category {
		s.setCategory(AllCategories)
		return
	}
	s.setCategory(category)
}

// PickCategory sets category without toggling. AllLabel and AllCategories
// both clear the filter.
func (s *State) PickCategory(category string) {
	if category == AllLabel {
		category = AllCategories
	}
	s.setCategory(category)
}

func (s *State) setCategory(category string) {
	s.category = category
	if category == AllCategories {
		s.visible = catalog.Clone(s.all)
		return
	}
	s.visible = MatchType(s.all, category)
}

// Select makes id the selected item. Unknown ids fall back to the default
// selection; the return value reports whether that happened.
func (s *State) Select(id string) (fellBack bool) {
	if s.catalog.Has(id) {
		s.selectedID = id
		return false
	}
	s.selectedID = s.defaultID
	return true
}

// Selected resolves the selected item.
func (s *State) Selected() catalog.Item {
	item, err := s.catalog.Lookup(s.selectedID)
	if err != nil {
		item, _ = s.catalog.Lookup(s.defaultID)
	}
	return item
}

// MatchName returns the items whose name contains term, ignoring case.
func MatchName(items []catalog.Item, term string) []catalog.Item {
	lower := strings.ToLower(term)
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			out = append(out, item)
		}
	}
	return out
}

// MatchType returns the items whose type equals category exactly.
func MatchType(items []catalog.Item, category string) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.Type == category {
			out = append(out, item)
		}
	}
	return out
}
