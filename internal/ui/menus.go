package ui

import (
	"fmt"

	"github.com/atomicstack/item-directory/internal/browser"
	"github.com/atomicstack/item-directory/internal/detail"
	"github.com/atomicstack/item-directory/internal/dropdown"
	"github.com/atomicstack/item-directory/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type selectItemMsg struct {
	id string
}

type pickCategoryMsg struct {
	category string
}

type navigateMsg struct {
	path string
	err  error
}

// rect is a screen region in cells, half open on the right and bottom.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

func (m *Model) menuOpen() bool {
	return m.menu != nil && m.menu.IsOpen()
}

func (m *Model) openMenu(kind menuKind, d *dropdown.Dropdown, cursor int) {
	m.closeMenu()
	m.menu = d
	m.menuKind = kind
	d.Mount(m.source)
	d.Open()
	d.SetCursor(cursor)
}

func (m *Model) closeMenu() {
	if m.menu == nil {
		return
	}
	m.menu.Close()
	m.menu.Dispose()
	m.menu = nil
	m.menuKind = menuNone
}

// releaseDismissedMenu drops a dropdown that closed itself in response to a
// published event.
func (m *Model) releaseDismissedMenu() {
	if m.menu != nil && !m.menu.IsOpen() {
		m.closeMenu()
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	choice, chosen, handled := m.menu.HandleKey(dropdown.DefaultKeyMap, msg)
	if !handled {
		return nil
	}
	if !chosen {
		if !m.menu.IsOpen() {
			m.closeMenu()
		}
		return nil
	}
	kind := m.menuKind
	m.closeMenu()
	return m.applyChoice(kind, choice)
}

// applyChoice routes a dropdown choice through the command bus. Links on the
// blog menu mark the post as read before navigating.
func (m *Model) applyChoice(kind menuKind, choice dropdown.Choice) tea.Cmd {
	if choice.IsLink() {
		path := choice.Path
		postID := ""
		if kind == menuPost {
			if card, ok := m.currentCard(); ok {
				postID = card.ID
			}
		}
		return m.bus.Execute(command.Request{Label: choice.Label, Cmd: m.followLinkCmd(path, postID)})
	}
	return m.bus.Execute(command.Request{Label: choice.Label, Cmd: choice.Cmd})
}

func (m *Model) openCategoryMenu() {
	if m.screen != ScreenItems || m.browser == nil {
		return
	}
	categories := m.browser.Categories()
	options := make([]*dropdown.Option, 0, len(categories)+1)
	options = append(options, categoryOption(browser.AllLabel))
	cursor := 0
	for i, category := range categories {
		options = append(options, categoryOption(category))
		if category == m.browser.Category() {
			cursor = i + 1
		}
	}
	m.openMenu(menuCategory, dropdown.New("Categories", options...), cursor)
}

func categoryOption(category string) *dropdown.Option {
	return &dropdown.Option{
		Label: category,
		Target: dropdown.Action{Run: func() tea.Cmd {
			return func() tea.Msg { return pickCategoryMsg{category: category} }
		}},
	}
}

func (m *Model) openRelatedMenu() {
	if m.screen != ScreenItems || m.browser == nil {
		return
	}
	cat := m.browser.Catalog()
	d := detail.Render(cat, m.browser.SelectedID(), m.browser.DefaultID(), nil)
	refs := d.Related()
	options := make([]*dropdown.Option, 0, len(refs))
	for _, ref := range refs {
		if !cat.Has(ref.ID) {
			continue
		}
		id := ref.ID
		label := ref.Name
		if ref.Amount > 1 {
			label = fmt.Sprintf("%s x%d", ref.Name, ref.Amount)
		}
		options = append(options, &dropdown.Option{
			Label: label,
			Icon:  "›",
			Target: dropdown.Action{Run: func() tea.Cmd {
				return func() tea.Msg { return selectItemMsg{id: id} }
			}},
		})
	}
	if len(options) == 0 {
		m.setInfo(fmt.Sprintf("%s has no related items", d.Name))
		return
	}
	m.openMenu(menuRelated, dropdown.New("Related to "+d.Name, options...), 0)
}

// menuWidth is the outer width of the dropdown box.
func (m *Model) menuWidth() int {
	if m.menu == nil {
		return 0
	}
	w := lipgloss.Width(m.menu.Content()) + 6
	for _, opt := range m.menu.Options() {
		if ow := lipgloss.Width(optionText(opt)) + 6; ow > w {
			w = ow
		}
	}
	if limit := m.listColumnWidth(); limit > 0 && w > limit {
		w = limit
	}
	return w
}

// menuRect is where the open dropdown is drawn: the bottom of the list
// column, directly above the status bar.
func (m *Model) menuRect() rect {
	if m.menu == nil {
		return rect{}
	}
	h := m.menu.Len() + 2
	bottom := m.contentHeight()
	if bottom <= 0 {
		return rect{}
	}
	top := bottom - h
	if top < 0 {
		top = 0
	}
	return rect{x0: 0, y0: top, x1: m.menuWidth(), y1: bottom}
}

func optionText(opt dropdown.Option) string {
	if opt.Icon == "" {
		return opt.Label
	}
	return opt.Icon + " " + opt.Label
}
