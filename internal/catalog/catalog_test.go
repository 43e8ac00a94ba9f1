package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestAllSortsWithCollation(t *testing.T) {
	cat, err := New([]Item{
		{ID: "b", Name: "Banana", Type: "Fruit"},
		{ID: "a", Name: "apple", Type: "Fruit"},
		{ID: "c", Name: "cherry", Type: "Fruit"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := names(cat.All())
	want := []string{"apple", "Banana", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAllIsStableAcrossCalls(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	first := cat.All()
	for i := 0; i < 5; i++ {
		if again := cat.All(); !reflect.DeepEqual(first, again) {
			t.Fatalf("listing changed between calls: %v vs %v", names(first), names(again))
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	cat, err := New([]Item{{ID: "a", Name: "Alpha"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := cat.All()
	items[0].Name = "changed"
	if cat.All()[0].Name != "Alpha" {
		t.Fatal("expected catalog to be unaffected by caller mutation")
	}
}

func TestAllBreaksNameTiesByID(t *testing.T) {
	cat, err := New([]Item{
		{ID: "z", Name: "Same"},
		{ID: "a", Name: "Same"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all := cat.All()
	if all[0].ID != "a" || all[1].ID != "z" {
		t.Fatalf("expected id tie-break, got %v", all)
	}
}

func TestLookup(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	item, err := cat.Lookup("apple")
	if err != nil {
		t.Fatalf("lookup apple: %v", err)
	}
	if item.Name != "Apple" {
		t.Fatalf("expected Apple, got %q", item.Name)
	}
	if _, err := cat.Lookup("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !cat.Has(DefaultItemID) {
		t.Fatalf("expected default item %q in bundled catalog", DefaultItemID)
	}
}

func TestCategoriesDistinctAndSorted(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	got := cat.Categories()
	want := []string{"Collectable", "Item Pack", "Loot Box", "Power-up", "Sellable", "Tool"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if again := cat.Categories(); !reflect.DeepEqual(got, again) {
		t.Fatalf("categories changed between calls")
	}
}

func TestNewReportsInvariantViolations(t *testing.T) {
	_, err := New([]Item{
		{ID: "a", Name: "A", Cost: -1},
		{ID: "a", Name: "A again"},
		{ID: "b", Name: "B", Items: []string{"ghost"}},
		{ID: "c", Name: "C", Components: map[string]int{"a": 0}},
		{ID: "d", Name: "D", Reward: &Reward{Items: []RewardEntry{{ID: "phantom", Weight: 1}}}},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, fragment := range []string{
		"negative cost",
		`duplicate item id "a"`,
		`unknown id "ghost"`,
		`component "a" needs quantity >= 1`,
		`unknown id "phantom"`,
	} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error, got:\n%s", fragment, msg)
		}
	}
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var cat *Catalog
	if cat.Len() != 0 || cat.All() != nil || cat.Has("x") {
		t.Fatal("expected nil catalog to behave as empty")
	}
	if _, err := cat.Lookup("x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRarityString(t *testing.T) {
	if RarityGodly.String() != "Godly" || RarityCommon.String() != "Common" {
		t.Fatal("unexpected rarity names")
	}
	if Rarity(9).String() != "" {
		t.Fatal("expected blank name for unknown rarity")
	}
}
