// Package blog derives the community blog post card and implements the
// read-marker contract that decides whether a card shows the NEW badge.
package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/item-directory/internal/logging/events"
	"github.com/atomicstack/item-directory/internal/store"
)

const (
	// TwoWeeks is the default for both the marker freshness window and the
	// NEW badge window.
	TwoWeeks = 14 * 24 * time.Hour

	summaryLimit = 80
	dateLayout   = "January 02, 2006"
	unknownName  = "???"
)

// TitleSize buckets titles by length for the card header.
type TitleSize int

const (
	TitleLarge TitleSize = iota
	TitleMedium
	TitleSmall
)

// Windows holds the two independent time windows applied to posts.
type Windows struct {
	// Freshness is how long a read marker stays valid, measured from the
	// post date. Older markers are deleted when read.
	Freshness time.Duration
	// NewBadge is how long after its date a post may carry the NEW badge.
	NewBadge time.Duration
}

// DefaultWindows uses two weeks for both windows.
func DefaultWindows() Windows {
	return Windows{Freshness: TwoWeeks, NewBadge: TwoWeeks}
}

// Viewer describes who is looking at the card.
type Viewer struct {
	Developer bool
}

// Card is the display form of a post.
type Card struct {
	ID           string
	Title        string
	TitleSize    TitleSize
	Draft        bool
	New          bool
	Read         bool
	AuthorName   string
	AuthorPath   string
	Date         string
	Summary      string
	ContinuePath string
	EditPath     string
}

// MarkerKey is the store key of a post's read marker.
func MarkerKey(postID string) string {
	return "read-" + postID
}

// PostPath is the route of a post.
func PostPath(postID string) string {
	return fmt.Sprintf("/community/blog/%s", postID)
}

// EditPath is the route of a post's editor.
func EditPath(postID string) string {
	return PostPath(postID) + "/edit"
}

// IsNew reports whether a post is recent enough for the NEW badge and has
// not been read.
func IsNew(post Post, now time.Time, read bool, window time.Duration) bool {
	return now.Sub(post.Date) < window && !read
}

// CheckRead applies the read-marker contract: a missing marker means unread;
// a marker on a post older than freshness is deleted and treated as missing;
// otherwise the post is read.
func CheckRead(ctx context.Context, s store.Store, post Post, now time.Time, freshness time.Duration) (bool, error) {
	key := MarkerKey(post.ID)
	present, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	if now.Sub(post.Date) > freshness {
		if err := s.Delete(ctx, key); err != nil {
			return false, err
		}
		events.Blog.MarkerExpired(post.ID)
		return false, nil
	}
	return true, nil
}

// NewCard derives the card for post.
func NewCard(post Post, viewer Viewer, read bool, now time.Time, windows Windows) Card {
	card := Card{
		ID:           post.ID,
		Title:        post.Title,
		TitleSize:    titleSize(post.Title),
		Draft:        post.Draft,
		New:          IsNew(post, now, read, windows.NewBadge),
		Read:         read,
		AuthorName:   post.Author.Name,
		AuthorPath:   authorPath(post.Author),
		Date:         post.Date.Format(dateLayout),
		Summary:      Truncate(post.Description, summaryLimit),
		ContinuePath: PostPath(post.ID),
	}
	if card.AuthorName == "" {
		card.AuthorName = unknownName
	}
	if viewer.Developer {
		card.EditPath = EditPath(post.ID)
	}
	return card
}

// Truncate shortens text to limit runes, appending "..." when cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func titleSize(title string) TitleSize {
	n := len([]rune(title))
	switch {
	case n > 25:
		return TitleSmall
	case n > 15:
		return TitleMedium
	default:
		return TitleLarge
	}
}

func authorPath(a Author) string {
	if a.Vanity != "" {
		return "/@" + a.Vanity
	}
	return "/@" + a.ID
}
