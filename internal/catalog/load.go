package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a catalog file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/items.json
var defaultItems []byte

// DefaultItemID is the item selected when the browser first opens.
const DefaultItemID = "aplus"

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultItems, FormatJSON)
}

// Load reads and validates a catalog file. The format follows the file
// extension; anything other than .yaml/.yml is treated as JSON.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// FormatForPath maps a file name to its catalog format.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes catalog data. The document is either an object keyed by item
// id or a plain list of items; keyed entries without an explicit id inherit
// their key.
func Parse(data []byte, format Format) (*Catalog, error) {
	var (
		items []Item
		err   error
	)
	switch format {
	case FormatYAML:
		items, err = decodeYAML(data)
	default:
		items, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}
	return New(items)
}

func decodeJSON(data []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return items, nil
	}
	var keyed map[string]Item
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return fromKeyed(keyed), nil
}

func decodeYAML(data []byte) ([]Item, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var items []Item
		if err := doc.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return items, nil
	}
	var keyed map[string]Item
	if err := doc.Decode(&keyed); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return fromKeyed(keyed), nil
}

func fromKeyed(keyed map[string]Item) []Item {
	items := make([]Item, 0, len(keyed))
	for key, item := range keyed {
		if strings.TrimSpace(item.ID) == "" {
			item.ID = key
		}
		items = append(items, item)
	}
	return items
}
