package blog

import (
	"context"
	"time"

	"github.com/atomicstack/item-directory/internal/logging/events"
	"github.com/atomicstack/item-directory/internal/store"
)

// Tracker binds the marker store, the time windows and a clock.
type Tracker struct {
	store   store.Store
	windows Windows
	now     func() time.Time
}

// NewTracker creates a tracker. A nil clock uses time.Now.
func NewTracker(s store.Store, windows Windows, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: s, windows: windows, now: now}
}

// Windows returns the configured windows.
func (t *Tracker) Windows() Windows { return t.windows }

// IsRead applies CheckRead at the current time.
func (t *Tracker) IsRead(ctx context.Context, post Post) (bool, error) {
	return CheckRead(ctx, t.store, post, t.now(), t.windows.Freshness)
}

// MarkRead records that post was opened.
func (t *Tracker) MarkRead(ctx context.Context, post Post) error {
	if err := t.store.Set(ctx, MarkerKey(post.ID)); err != nil {
		return err
	}
	events.Blog.MarkRead(post.ID)
	return nil
}

// MarkUnread removes the read marker of post.
func (t *Tracker) MarkUnread(ctx context.Context, post Post) error {
	if err := t.store.Delete(ctx, MarkerKey(post.ID)); err != nil {
		return err
	}
	events.Blog.MarkUnread(post.ID)
	return nil
}

// Card derives the card for post. Store failures degrade to an unread card
// and are returned alongside it.
func (t *Tracker) Card(ctx context.Context, post Post, viewer Viewer) (Card, error) {
	read, err := t.IsRead(ctx, post)
	return NewCard(post, viewer, read, t.now(), t.windows), err
}

// Cards derives cards for all posts. The first store error is returned with
// the full list.
func (t *Tracker) Cards(ctx context.Context, posts []Post, viewer Viewer) ([]Card, error) {
	cards := make([]Card, 0, len(posts))
	var firstErr error
	for _, post := range posts {
		card, err := t.Card(ctx, post, viewer)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		cards = append(cards, card)
	}
	return cards, firstErr
}
