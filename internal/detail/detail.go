// Package detail maps a selected catalog item to the fields shown in the
// item detail panel.
package detail

import (
	"sort"

	"github.com/atomicstack/item-directory/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Transformer turns a markdown snippet into display text.
type Transformer interface {
	ToText(src string) string
}

// Ref points at another catalog item from the detail panel.
type Ref struct {
	ID     string
	Name   string
	Amount int
}

// Detail holds the display fields of one item.
type Detail struct {
	ID            string
	Name          string
	Type          string
	Rarity        string
	Image         string
	Description   string
	Effects       string
	Contents      []Ref
	PossibleItems []Ref
	Components    []Ref
	Buy           string
	Sell          string
	// FellBack is set when the requested id was missing and the default
	// item was rendered instead.
	FellBack bool
}

// Render resolves id against cat, falling back to defaultID when id is
// absent. md may be nil, in which case descriptions pass through untouched.
// References to ids the catalog lacks render with a blank name.
func Render(cat *catalog.Catalog, id, defaultID string, md Transformer) Detail {
	item, err := cat.Lookup(id)
	fellBack := false
	if err != nil {
		fellBack = true
		item, _ = cat.Lookup(defaultID)
	}
	d := FromItem(cat, item, md)
	d.FellBack = fellBack
	return d
}

// FromItem builds the detail for an already resolved item.
func FromItem(cat *catalog.Catalog, item catalog.Item, md Transformer) Detail {
	description := item.LongDescription
	if description == "" {
		description = item.Description
	}
	if md != nil {
		description = md.ToText(description)
	}
	return Detail{
		ID:            item.ID,
		Name:          item.Name,
		Type:          item.Type,
		Rarity:        item.Rarity.String(),
		Image:         item.Image,
		Description:   description,
		Effects:       item.Effects,
		Contents:      refs(cat, item.Items),
		PossibleItems: refs(cat, item.RewardIDs()),
		Components:    components(cat, item.Components),
		Buy:           BuyPrice(item.Cost, item.ShowInShop),
		Sell:          SellPrice(item.Cost, item.Type),
	}
}

// Related lists every item the detail links to, in panel order.
func (d Detail) Related() []Ref {
	out := make([]Ref, 0, len(d.Contents)+len(d.PossibleItems)+len(d.Components))
	out = append(out, d.Contents...)
	out = append(out, d.PossibleItems...)
	out = append(out, d.Components...)
	return out
}

func refs(cat *catalog.Catalog, ids []string) []Ref {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Ref, 0, len(ids))
	for _, id := range ids {
		out = append(out, Ref{ID: id, Name: nameOf(cat, id), Amount: 1})
	}
	return out
}

func components(cat *catalog.Catalog, parts map[string]int) []Ref {
	if len(parts) == 0 {
		return nil
	}
	out := make([]Ref, 0, len(parts))
	for id, amount := range parts {
		out = append(out, Ref{ID: id, Name: nameOf(cat, id), Amount: amount})
	}
	col := collate.New(language.English)
	sort.Slice(out, func(i, j int) bool {
		if c := col.CompareString(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func nameOf(cat *catalog.Catalog, id string) string {
	item, err := cat.Lookup(id)
	if err != nil {
		return ""
	}
	return item.Name
}
