package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/item-directory/internal/blog"
	"github.com/atomicstack/item-directory/internal/dropdown"
	"github.com/atomicstack/item-directory/internal/logging"
	"github.com/atomicstack/item-directory/internal/logging/events"
	uistate "github.com/atomicstack/item-directory/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type postMarkedMsg struct {
	id   string
	read bool
	err  error
}

// refreshCards re-derives every card. Marker store failures are logged and
// the affected cards show as unread.
func (m *Model) refreshCards() {
	if m.tracker == nil {
		m.cards = nil
		m.postList.SetEntries(nil)
		return
	}
	cards, err := m.tracker.Cards(context.Background(), m.posts, m.viewer)
	if err != nil {
		logging.Error(fmt.Errorf("read markers: %w", err))
		m.errMsg = "read markers: " + err.Error()
	}
	m.cards = cards
	entries := make([]uistate.Entry, len(cards))
	for i, card := range cards {
		entries[i] = uistate.Entry{ID: card.ID, Label: card.Title, Hint: card.Date}
	}
	m.postList.SetEntries(entries)
	m.syncViewport(m.postList)
}

func (m *Model) currentCard() (blog.Card, bool) {
	entry, ok := m.postList.Current()
	if !ok {
		return blog.Card{}, false
	}
	return m.cardByID(entry.ID)
}

func (m *Model) cardByID(id string) (blog.Card, bool) {
	for _, card := range m.cards {
		if card.ID == id {
			return card, true
		}
	}
	return blog.Card{}, false
}

func (m *Model) postByID(id string) (blog.Post, bool) {
	for _, post := range m.posts {
		if post.ID == id {
			return post, true
		}
	}
	return blog.Post{}, false
}

func (m *Model) openPostMenu(id string) {
	card, ok := m.cardByID(id)
	if !ok {
		return
	}
	d := dropdown.New("Post",
		&dropdown.Option{Label: "Continue Reading", Icon: "→", Target: dropdown.Link{Path: card.ContinuePath}},
		dropdown.When(card.EditPath != "", dropdown.Option{Label: "Edit", Icon: "✎", Target: dropdown.Link{Path: card.EditPath}}),
		&dropdown.Option{Label: "Mark unread", Icon: "✗", Style: dropdown.Danger, Target: dropdown.Action{Run: func() tea.Cmd {
			return m.markUnreadCmd(id)
		}}},
	)
	m.openMenu(menuPost, d, 0)
}

// followLinkCmd records the post as read, when there is one, and asks the
// program to quit with path as the destination.
func (m *Model) followLinkCmd(path, postID string) tea.Cmd {
	tracker := m.tracker
	post, hasPost := m.postByID(postID)
	return func() tea.Msg {
		var err error
		if hasPost && tracker != nil {
			if err = tracker.MarkRead(context.Background(), post); err != nil {
				logging.Error(fmt.Errorf("mark %s read: %w", post.ID, err))
			}
		}
		return navigateMsg{path: path, err: err}
	}
}

func (m *Model) markUnreadCmd(id string) tea.Cmd {
	tracker := m.tracker
	post, ok := m.postByID(id)
	return func() tea.Msg {
		if !ok || tracker == nil {
			return postMarkedMsg{id: id, err: fmt.Errorf("post %q not found", id)}
		}
		err := tracker.MarkUnread(context.Background(), post)
		if err != nil {
			logging.Error(fmt.Errorf("mark %s unread: %w", id, err))
		}
		return postMarkedMsg{id: id, read: false, err: err}
	}
}

func (m *Model) handlePostMarkedMsg(msg tea.Msg) tea.Cmd {
	marked, ok := msg.(postMarkedMsg)
	if !ok {
		return nil
	}
	if marked.err != nil {
		m.setError(marked.err)
		return nil
	}
	m.refreshCards()
	m.refreshPanel()
	card, ok := m.cardByID(marked.id)
	if !ok {
		return nil
	}
	state := "unread"
	if marked.read {
		state = "read"
	}
	info := fmt.Sprintf("Marked %q %s", card.Title, state)
	events.Action.Success(info)
	if m.verbose {
		m.setInfo(info)
	}
	return nil
}

// cardLines renders the side panel content for a card.
func cardLines(card blog.Card, width int) []string {
	title := card.Title
	switch card.TitleSize {
	case blog.TitleLarge:
		title = strings.ToUpper(title)
	case blog.TitleSmall:
		title = truncateText(title, width)
	}
	lines := []string{title}
	var tags []string
	if card.New {
		tags = append(tags, "NEW")
	}
	if card.Draft {
		tags = append(tags, "DRAFT")
	}
	if card.Read {
		tags = append(tags, "read")
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, " · "))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("by %s (%s)", card.AuthorName, card.AuthorPath),
		card.Date,
		"",
	)
	lines = append(lines, wrap(card.Summary, width)...)
	lines = append(lines, "", "enter for options")
	return lines
}
