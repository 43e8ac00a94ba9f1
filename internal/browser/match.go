package browser

import (
	"strings"

	"github.com/atomicstack/item-directory/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatch returns the index among the visible items that a list cursor
// should land on for term: exact name or id, then name prefix, then id
// prefix, then substring, then the closest fuzzy rank. Returns -1 when
// nothing is visible.
func (s *State) BestMatch(term string) int {
	return BestMatchIndex(s.visible, term)
}

// BestMatchIndex implements BestMatch over an arbitrary item slice.
func BestMatchIndex(items []catalog.Item, term string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Name, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Name), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			return i
		}
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
