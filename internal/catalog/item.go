package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rarity ranks an item from Common (0) to Godly (5).
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityGodly
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "Common",
	RarityUncommon:  "Uncommon",
	RarityRare:      "Rare",
	RarityEpic:      "Epic",
	RarityLegendary: "Legendary",
	RarityGodly:     "Godly",
}

// String returns the display name, or an empty string outside 0–5.
func (r Rarity) String() string {
	return rarityNames[r]
}

// Item is a single catalog entry.
type Item struct {
	ID              string         `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	Type            string         `json:"type" yaml:"type"`
	Rarity          Rarity         `json:"rarity" yaml:"rarity"`
	Cost            float64        `json:"cost" yaml:"cost"`
	ShowInShop      bool           `json:"showInShop" yaml:"showInShop"`
	Image           string         `json:"image,omitempty" yaml:"image,omitempty"`
	Description     string         `json:"description,omitempty" yaml:"description,omitempty"`
	LongDescription string         `json:"longdescription,omitempty" yaml:"longdescription,omitempty"`
	Effects         string         `json:"effects,omitempty" yaml:"effects,omitempty"`
	Items           []string       `json:"items,omitempty" yaml:"items,omitempty"`
	Components      map[string]int `json:"components,omitempty" yaml:"components,omitempty"`
	Reward          *Reward        `json:"reward,omitempty" yaml:"reward,omitempty"`
}

// Reward is the loot table of a loot box.
type Reward struct {
	Items []RewardEntry `json:"items,omitempty" yaml:"items,omitempty"`
}

// RewardEntry is one weighted id in a reward table. On disk it is a
// single-key object: {"<id>": <weight>}.
type RewardEntry struct {
	ID     string
	Weight float64
}

// RewardIDs lists the reward ids in table order.
func (i Item) RewardIDs() []string {
	if i.Reward == nil || len(i.Reward.Items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(i.Reward.Items))
	for _, entry := range i.Reward.Items {
		ids = append(ids, entry.ID)
	}
	return ids
}

// References returns every id the item points at: contents, components and rewards.
func (i Item) References() []string {
	refs := make([]string, 0, len(i.Items)+len(i.Components))
	refs = append(refs, i.Items...)
	for id := range i.Components {
		refs = append(refs, id)
	}
	refs = append(refs, i.RewardIDs()...)
	return refs
}

func (e RewardEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{e.ID: e.Weight})
}

func (e *RewardEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("reward entry: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("reward entry: expected a single id, got %d keys", len(raw))
	}
	for id, weight := range raw {
		e.ID = id
		e.Weight = weight
	}
	return nil
}

func (e *RewardEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("reward entry: expected a single-key mapping at line %d", value.Line)
	}
	var weight float64
	if err := value.Content[1].Decode(&weight); err != nil {
		return fmt.Errorf("reward entry %q: %w", value.Content[0].Value, err)
	}
	e.ID = value.Content[0].Value
	e.Weight = weight
	return nil
}
