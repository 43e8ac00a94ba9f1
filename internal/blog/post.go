package blog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Author is the writer of a post.
type Author struct {
	ID     string `json:"id"`
	Vanity string `json:"vanity,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Post is a community blog entry.
type Post struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Draft       bool
	Author      Author
}

type postJSON struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        int64  `json:"date"`
	Draft       bool   `json:"draft,omitempty"`
	Author      Author `json:"author"`
}

// UnmarshalJSON reads the stored shape, where the date is unix milliseconds.
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw postJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Post{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Date:        time.UnixMilli(raw.Date),
		Draft:       raw.Draft,
		Author:      raw.Author,
	}
	return nil
}

// MarshalJSON writes the stored shape.
func (p Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(postJSON{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date.UnixMilli(),
		Draft:       p.Draft,
		Author:      p.Author,
	})
}

// LoadPosts reads a JSON array of posts.
func LoadPosts(path string) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode posts %s: %w", path, err)
	}
	return posts, nil
}

// SamplePosts returns a fixed set of posts dated relative to now, used when
// no posts file is configured.
func SamplePosts(now time.Time) []Post {
	day := 24 * time.Hour
	return []Post{
		{
			ID:          "61a0c3f5e4b0a1b2c3d4e5f6",
			Title:       "Winter Update",
			Description: "Snowballs, a new seasonal loot box and a rebalanced fishing economy are live today. Read on for the full list of changes.",
			Date:        now.Add(-1 * day),
			Author:      Author{ID: "270904126974590976", Vanity: "melmsie", Name: "Melmsie"},
		},
		{
			ID:          "61a0c3f5e4b0a1b2c3d4e5f7",
			Title:       "Item directory",
			Description: "Every item, its price and what it is crafted from, in one place.",
			Date:        now.Add(-10 * day),
			Author:      Author{ID: "213466096718708737", Name: "Aetheryx"},
		},
		{
			ID:          "61a0c3f5e4b0a1b2c3d4e5f8",
			Title:       "A very long retrospective on the year",
			Description: "Looking back at everything that shipped.",
			Date:        now.Add(-40 * day),
			Draft:       true,
			Author:      Author{ID: "172571295077105664"},
		},
	}
}
