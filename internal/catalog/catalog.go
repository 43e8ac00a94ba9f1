package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNotFound reports a lookup for an id the catalog does not hold.
var ErrNotFound = errors.New("item not found")

// Catalog is the immutable id → Item table. Build it once with New and share
// the pointer; nothing mutates it afterwards.
type Catalog struct {
	byID       map[string]Item
	sorted     []Item
	categories []string
}

// New validates items and indexes them. Every invariant violation is
// reported, joined into a single error.
func New(items []Item) (*Catalog, error) {
	byID := make(map[string]Item, len(items))
	var errs []error
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("item %q has no id", item.Name))
			continue
		}
		if _, dup := byID[id]; dup {
			errs = append(errs, fmt.Errorf("duplicate item id %q", id))
			continue
		}
		if item.Cost < 0 {
			errs = append(errs, fmt.Errorf("item %q: negative cost %v", id, item.Cost))
		}
		for ref, qty := range item.Components {
			if qty < 1 {
				errs = append(errs, fmt.Errorf("item %q: component %q needs quantity >= 1 (got %d)", id, ref, qty))
			}
		}
		byID[id] = item
	}
	for _, item := range byID {
		for _, ref := range item.References() {
			if _, ok := byID[ref]; !ok {
				errs = append(errs, fmt.Errorf("item %q references unknown id %q", item.ID, ref))
			}
		}
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, errors.Join(errs...)
	}

	col := collate.New(language.English)
	sorted := make([]Item, 0, len(byID))
	for _, item := range byID {
		sorted = append(sorted, item)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := col.CompareString(sorted[i].Name, sorted[j].Name); c != 0 {
			return c < 0
		}
		return sorted[i].ID < sorted[j].ID
	})

	seen := make(map[string]struct{})
	categories := make([]string, 0, 8)
	for _, item := range sorted {
		if _, ok := seen[item.Type]; ok {
			continue
		}
		seen[item.Type] = struct{}{}
		categories = append(categories, item.Type)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return col.CompareString(categories[i], categories[j]) < 0
	})

	return &Catalog{byID: byID, sorted: sorted, categories: categories}, nil
}

// Lookup resolves an id. Misses return an error wrapping ErrNotFound.
func (c *Catalog) Lookup(id string) (Item, error) {
	if c == nil {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	item, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return item, nil
}

// Has reports whether id is present.
func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// All returns every item sorted by name (English collation, id as tie-break).
// The slice is a copy.
func (c *Catalog) All() []Item {
	if c == nil {
		return nil
	}
	return Clone(c.sorted)
}

// Categories returns the distinct item types in collation order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	dup := make([]string, len(c.categories))
	copy(dup, c.categories)
	return dup
}

// Clone produces a shallow copy of the provided items.
func Clone(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
