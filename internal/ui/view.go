package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/item-directory/internal/dropdown"
	"github.com/atomicstack/item-directory/internal/logging"
	"github.com/atomicstack/item-directory/internal/logging/events"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	bottomBarRows      = 2    // status line + search prompt
	sidePanelMinWidth  = 36   // below this the panel is drawn under the list
	sidePanelFraction  = 0.55 // share of the width given to the side panel
	infoMessageTimeout = 5 * time.Second
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries its own ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.hasSidePanel() {
		return m.viewSideBySide()
	}
	return m.viewVertical()
}

func (m *Model) hasSidePanel() bool {
	return m.panelWidth() > 0
}

// panelWidth returns the outer width of the right-hand panel, or 0 when the
// terminal is too narrow to split.
func (m *Model) panelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * sidePanelFraction)
	if w < sidePanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) listColumnWidth() int {
	return m.width - m.panelWidth()
}

// contentHeight is the number of rows above the bottom bar, or 0 when the
// terminal size is unknown.
func (m *Model) contentHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-bottomBarRows, 1)
}

func (m *Model) viewVertical() string {
	lines := m.listLines(m.width)
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.panelTitle, style: styles.PanelTitle})
	for _, row := range strings.Split(m.panel.View(), "\n") {
		lines = append(lines, styledLine{text: strings.TrimRight(row, " "), style: styles.PanelBody})
	}
	lines = append(lines, m.trailerLines()...)
	if h := m.contentHeight(); h > 0 {
		lines = limitHeight(lines, h, m.width)
	}
	lines = applyWidth(lines, m.width)
	rows := strings.Split(renderLines(lines), "\n")
	rows = m.overlayMenu(rows, m.width)
	return strings.Join(rows, "\n") + "\n" + m.bottomBar()
}

func (m *Model) viewSideBySide() string {
	listW := m.listColumnWidth()
	panelH := m.contentHeight()
	if panelH <= 0 {
		panelH = 1
	}

	lines := m.listLines(listW)
	lines = append(lines, m.trailerLines()...)
	if len(lines) > panelH {
		lines = lines[:panelH]
	}
	for len(lines) < panelH {
		lines = append(lines, styledLine{})
	}
	lines = applyWidth(lines, listW)
	leftRows := strings.Split(renderLines(lines), "\n")
	for i, row := range leftRows {
		leftRows[i] = fitWidth(row, listW)
	}
	leftRows = m.overlayMenu(leftRows, listW)

	right := m.renderPanel(m.panelWidth(), panelH)
	top := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(leftRows, "\n"), right)
	return top + "\n" + m.bottomBar()
}

// listLines builds the header, the category chips and the visible rows.
func (m *Model) listLines(width int) []styledLine {
	lines := []styledLine{{text: m.headerText(), style: styles.Header}}
	if m.screen == ScreenItems {
		if chips := m.chipsLine(); chips != "" {
			lines = append(lines, styledLine{text: chips, raw: true})
		}
	}
	current := m.currentLevel()
	visible, start := current.Window(m.maxVisibleItems())
	if len(current.Entries) == 0 {
		lines = append(lines, styledLine{text: m.emptyText(), style: styles.Info})
		return lines
	}
	for i, entry := range visible {
		lines = append(lines, m.buildEntryLine(entry.ID, m.entryLabel(entry.ID, entry.Label, entry.Hint), start+i, current, width))
	}
	return lines
}

func (m *Model) trailerLines() []styledLine {
	var lines []styledLine
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.keys.footerHelp(m.screen), style: styles.Footer})
	}
	return lines
}

func (m *Model) headerText() string {
	if m.screen == ScreenBlog {
		return fmt.Sprintf("Community blog · %d posts", len(m.cards))
	}
	if m.browser == nil {
		return "Item directory"
	}
	header := fmt.Sprintf("Item directory · %d of %d items", m.browser.VisibleLen(), m.browser.Catalog().Len())
	if category := m.browser.Category(); category != "" {
		header += " · " + category
	}
	return header
}

func (m *Model) chipsLine() string {
	if m.browser == nil {
		return ""
	}
	categories := m.browser.Categories()
	chips := make([]string, 0, len(categories))
	for i, category := range categories {
		style := styles.Chip
		if category == m.browser.Category() {
			style = styles.ChipSelected
		}
		label := category
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, category)
		}
		if style != nil {
			label = style.Render(label)
		}
		chips = append(chips, label)
	}
	return strings.Join(chips, " ")
}

func (m *Model) emptyText() string {
	if m.screen == ScreenBlog {
		return "No posts yet."
	}
	if m.browser != nil && m.browser.Search() != "" && m.browser.Category() == "" {
		return fmt.Sprintf("No items match %q", m.browser.Search())
	}
	return "(no items)"
}

func (m *Model) entryLabel(id, label, hint string) string {
	mark := "  "
	switch m.screen {
	case ScreenItems:
		if m.browser != nil && id == m.browser.SelectedID() {
			mark = "✓ "
		}
	case ScreenBlog:
		if card, ok := m.cardByID(id); ok {
			if card.New {
				mark = "● "
			}
			if card.Draft {
				hint += " · draft"
			}
		}
	}
	if hint == "" {
		return mark + label
	}
	return mark + label + " · " + hint
}

// buildEntryLine constructs one list row. The text is padded to width so the
// cursor row's background spans the column.
func (m *Model) buildEntryLine(id, label string, idx int, current *level, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	} else if m.screen == ScreenItems && m.browser != nil && id == m.browser.SelectedID() {
		lineStyle = styles.ChosenItem
	}
	fullText := "▌ " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) bottomBar() string {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	lines := applyWidth([]styledLine{status}, m.width)
	prompt := m.filterPrompt()
	if m.width > 0 && lipgloss.Width(prompt) > m.width {
		prompt = truncate.StringWithTail(prompt, uint(m.width-1), "…")
	}
	return renderLines(lines) + "\n" + prompt
}

// renderPanel draws the viewport inside a rounded box of exactly height rows
// and width columns.
func (m *Model) renderPanel(width, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	scrollSeg := ""
	if m.panel.TotalLineCount() > m.panel.Height {
		scrollSeg = fmt.Sprintf(" %d%% ", int(m.panel.ScrollPercent()*100))
	}
	titleSeg := " " + m.panelTitle + " "
	dashes := width - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(width-5, 1)), "… ")
		dashes = max(width-4-lipgloss.Width(titleSeg), 0)
	}
	border := func(s string) string { return render(styles.PanelBorder, s) }

	rows := make([]string, 0, height)
	rows = append(rows, border(tlc+hz)+render(styles.PanelTitle, titleSeg)+border(strings.Repeat(hz, dashes))+render(styles.Muted, scrollSeg)+border(hz+trc))
	body := strings.Split(m.panel.View(), "\n")
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		content = fitWidth(content, innerW)
		rows = append(rows, border(vt)+render(styles.PanelBody, content)+border(vt))
	}
	rows = append(rows, border(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

// overlayMenu draws the open dropdown over the bottom rows of a column,
// matching menuRect.
func (m *Model) overlayMenu(rows []string, columnWidth int) []string {
	if !m.menuOpen() {
		return rows
	}
	box := m.menuBox()
	r := m.menuRect()
	if r.y1 == 0 {
		return append(rows, box...)
	}
	for len(rows) < r.y1 {
		rows = append(rows, "")
	}
	for i, line := range box {
		y := r.y0 + i
		if y >= len(rows) {
			break
		}
		if columnWidth > 0 {
			rows[y] = fitWidth(line, columnWidth)
		} else {
			rows[y] = line
		}
	}
	return rows
}

func (m *Model) menuBox() []string {
	width := m.menuWidth()
	innerW := max(width-2, 1)
	border := func(s string) string { return render(styles.PanelBorder, s) }
	title := " " + m.menu.Content() + " "
	dashes := max(innerW-1-lipgloss.Width(title), 0)
	rows := []string{border("╭─") + render(styles.PanelTitle, title) + border(strings.Repeat("─", dashes)+"╮")}
	for i, opt := range m.menu.Options() {
		marker := "  "
		style := styles.MenuOption
		if opt.Style == dropdown.Danger {
			style = styles.MenuDanger
		}
		if i == m.menu.Cursor() {
			marker = "▸ "
			style = styles.MenuSelected
		}
		text := fitWidth(" "+marker+optionText(opt), innerW)
		rows = append(rows, border("│")+render(style, text)+border("│"))
	}
	rows = append(rows, border("╰"+strings.Repeat("─", innerW)+"╯"))
	return rows
}

func (m *Model) maxVisibleItems() int {
	h := m.contentHeight()
	if h <= 0 {
		return -1
	}
	used := 1 // header
	if m.screen == ScreenItems && m.chipsLine() != "" {
		used++
	}
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if !m.hasSidePanel() {
		used += 2 + m.panel.Height // blank + title + panel rows
	}
	return max(h-used, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoMessageTimeout)
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	events.Action.Error(err)
	m.errMsg = err.Error()
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// fitWidth pads or truncates an ANSI string to exactly width cells.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	w := lipgloss.Width(text)
	if w > width {
		text = truncate.StringWithTail(text, uint(max(width-1, 0)), "…")
		w = lipgloss.Width(text)
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			text = render(line.prefixStyle, head) + render(line.style, tail)
		} else {
			text = render(line.style, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
