package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadJSONKeyedByID(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "items.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	box, err := cat.Lookup("boxdaily")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got := box.RewardIDs(); !reflect.DeepEqual(got, []string{"apple", "fishingpole", "banknote"}) {
		t.Fatalf("unexpected reward ids %v", got)
	}
	if box.Reward.Items[0].Weight != 40 {
		t.Fatalf("expected weight 40, got %v", box.Reward.Items[0].Weight)
	}
	sushi, _ := cat.Lookup("sushi")
	if sushi.Components["fish"] != 5 {
		t.Fatalf("expected 5 fish, got %v", sushi.Components)
	}
}

func TestLoadYAMLInheritsKeyAsID(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "items.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", cat.Len())
	}
	box, err := cat.Lookup("box")
	if err != nil {
		t.Fatalf("lookup box: %v", err)
	}
	if box.ID != "box" {
		t.Fatalf("expected id inherited from key, got %q", box.ID)
	}
	if got := box.RewardIDs(); !reflect.DeepEqual(got, []string{"apple", "fish"}) {
		t.Fatalf("unexpected reward ids %v", got)
	}
}

func TestParseJSONList(t *testing.T) {
	data := []byte(`[{"id":"a","name":"A","type":"Tool","cost":1}]`)
	cat, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !cat.Has("a") {
		t.Fatal("expected item a")
	}
}

func TestParseRejectsMultiKeyReward(t *testing.T) {
	data := []byte(`{"a":{"name":"A","reward":{"items":[{"x":1,"y":2}]}}}`)
	if _, err := Parse(data, FormatJSON); err == nil {
		t.Fatal("expected error for multi-key reward entry")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadReportsValidationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a":{"name":"A","cost":-5}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"items.json": FormatJSON,
		"items.YAML": FormatYAML,
		"items.yml":  FormatYAML,
		"items":      FormatJSON,
	}
	for path, want := range cases {
		if got := FormatForPath(path); got != want {
			t.Fatalf("%s: expected %s, got %s", path, want, got)
		}
	}
}
