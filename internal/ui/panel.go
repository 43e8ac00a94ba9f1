package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/item-directory/internal/detail"
	"github.com/atomicstack/item-directory/internal/format/table"
	uistate "github.com/atomicstack/item-directory/internal/ui/state"
	"github.com/muesli/reflow/wordwrap"
)

const (
	verticalPanelRows  = 8
	unsizedPanelWidth  = 60
	fallbackNoticeText = "(requested item not found, showing the default)"
)

// refreshItems rebuilds the item rows from the browser's visible list.
func (m *Model) refreshItems() {
	if m.browser == nil {
		m.items.SetEntries(nil)
		return
	}
	visible := m.browser.Visible()
	entries := make([]uistate.Entry, len(visible))
	for i, item := range visible {
		entries[i] = uistate.Entry{ID: item.ID, Label: item.Name, Hint: item.Type}
	}
	m.items.SetEntries(entries)
	m.syncViewport(m.items)
	m.refreshPanel()
}

// refreshPanel recomputes the side panel for the active screen and loads it
// into the viewport. The scroll position resets when the subject changes.
func (m *Model) refreshPanel() {
	innerW := m.panelInnerWidth()
	id, title, lines := m.panelContent(innerW)
	innerH := m.panelInnerHeight(len(lines))
	m.panel.Width = innerW
	m.panel.Height = innerH
	m.panel.SetContent(strings.Join(lines, "\n"))
	if id != m.panelID {
		m.panel.GotoTop()
		m.panelID = id
	}
	m.panelTitle = title
}

func (m *Model) panelContent(width int) (id, title string, lines []string) {
	if m.screen == ScreenBlog {
		card, ok := m.currentCard()
		if !ok {
			return "", "Post", []string{"No posts yet."}
		}
		return card.ID, "Post", cardLines(card, width)
	}
	if m.browser == nil {
		return "", "Detail", nil
	}
	d := detail.Render(m.browser.Catalog(), m.browser.SelectedID(), m.browser.DefaultID(), m.md)
	return d.ID, "Detail: " + d.Name, detailLines(d, width)
}

func (m *Model) panelInnerWidth() int {
	if w := m.panelWidth(); w > 0 {
		return w - 2
	}
	if m.width > 0 {
		return m.width
	}
	return unsizedPanelWidth
}

func (m *Model) panelInnerHeight(lineCount int) int {
	if m.hasSidePanel() {
		if h := m.contentHeight() - 2; h > 0 {
			return h
		}
		return 1
	}
	if m.height <= 0 {
		return max(lineCount, 1)
	}
	return min(max(lineCount, 1), verticalPanelRows)
}

// detailLines lays out an item detail as plain text lines.
func detailLines(d detail.Detail, width int) []string {
	lines := []string{d.Name}
	var kind []string
	if d.Rarity != "" {
		kind = append(kind, d.Rarity)
	}
	if d.Type != "" {
		kind = append(kind, d.Type)
	}
	if len(kind) > 0 {
		lines = append(lines, strings.Join(kind, " · "))
	}
	lines = append(lines, "")
	lines = append(lines, table.Format([][]string{
		{"Buy", d.Buy},
		{"Sell", d.Sell},
	}, []table.Alignment{table.AlignLeft, table.AlignLeft})...)
	if d.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrap(d.Description, width)...)
	}
	if d.Effects != "" {
		lines = append(lines, "")
		lines = append(lines, wrap("Effects: "+d.Effects, width)...)
	}
	lines = appendRefs(lines, "Contents", d.Contents)
	lines = appendRefs(lines, "Possible items", d.PossibleItems)
	lines = appendRefs(lines, "Components", d.Components)
	if d.Image != "" {
		lines = append(lines, "", "Image: "+d.Image)
	}
	if d.FellBack {
		lines = append(lines, "", fallbackNoticeText)
	}
	return lines
}

func appendRefs(lines []string, heading string, refs []detail.Ref) []string {
	if len(refs) == 0 {
		return lines
	}
	rows := make([][]string, len(refs))
	for i, ref := range refs {
		name := ref.Name
		if name == "" {
			name = ref.ID
		}
		rows[i] = []string{"  " + name, fmt.Sprintf("x%d", ref.Amount)}
	}
	lines = append(lines, "", heading)
	return append(lines, table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})...)
}

func wrap(text string, width int) []string {
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	return strings.Split(text, "\n")
}
