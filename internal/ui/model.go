package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/item-directory/internal/blog"
	"github.com/atomicstack/item-directory/internal/browser"
	"github.com/atomicstack/item-directory/internal/detail"
	"github.com/atomicstack/item-directory/internal/dropdown"
	"github.com/atomicstack/item-directory/internal/theme"
	"github.com/atomicstack/item-directory/internal/ui/command"
	uistate "github.com/atomicstack/item-directory/internal/ui/state"
	"github.com/atomicstack/item-directory/internal/uievent"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// Screen selects what the main area shows.
type Screen int

const (
	ScreenItems Screen = iota
	ScreenBlog
)

func (s Screen) String() string {
	if s == ScreenBlog {
		return "blog"
	}
	return "items"
}

// ParseScreen maps a configuration value to a Screen. Unknown values select
// the items screen.
func ParseScreen(name string) Screen {
	if strings.EqualFold(strings.TrimSpace(name), "blog") {
		return ScreenBlog
	}
	return ScreenItems
}

type menuKind int

const (
	menuNone menuKind = iota
	menuCategory
	menuRelated
	menuPost
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options wires the model to its data sources.
type Options struct {
	Browser *browser.State
	// Markdown converts long descriptions for the detail panel. Nil shows
	// them as written.
	Markdown detail.Transformer
	Posts    []blog.Post
	Tracker  *blog.Tracker
	Viewer   blog.Viewer
	// Events receives resize and click-outside events. A private source is
	// created when nil.
	Events     *uievent.Source
	Screen     Screen
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the item directory.
type Model struct {
	browser *browser.State
	md      detail.Transformer
	items   *level
	search  uistate.Input

	posts    []blog.Post
	cards    []blog.Card
	postList *level
	tracker  *blog.Tracker
	viewer   blog.Viewer

	source   *uievent.Source
	menu     *dropdown.Dropdown
	menuKind menuKind

	panel      viewport.Model
	panelID    string
	panelTitle string

	screen      Screen
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
	keys     keyMap
	navigate string
}

// NewModel initialises the UI state from opts.
func NewModel(opts Options) *Model {
	source := opts.Events
	if source == nil {
		source = uievent.NewSource()
	}
	m := &Model{
		browser:    opts.Browser,
		md:         opts.Markdown,
		items:      uistate.NewLevel(ScreenItems.String(), "Item directory", nil),
		posts:      append([]blog.Post(nil), opts.Posts...),
		postList:   uistate.NewLevel(ScreenBlog.String(), "Community blog", nil),
		tracker:    opts.Tracker,
		viewer:     opts.Viewer,
		source:     source,
		panel:      viewport.New(0, 0),
		screen:     opts.Screen,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		bus:        command.New(),
		keys:       defaultKeyMap(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.refreshItems()
	if m.browser != nil {
		m.items.MoveCursorTo(m.items.IndexOf(m.browser.SelectedID()))
	}
	m.refreshCards()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// NavigatePath returns the route chosen before the program quit, or "".
func (m *Model) NavigatePath() string {
	return m.navigate
}

// Screen returns the active screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Close releases the dropdown's event subscriptions.
func (m *Model) Close() {
	if m.menu != nil {
		m.menu.Dispose()
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(selectItemMsg{}):     m.handleSelectItemMsg,
		reflect.TypeOf(pickCategoryMsg{}):   m.handlePickCategoryMsg,
		reflect.TypeOf(postMarkedMsg{}):     m.handlePostMarkedMsg,
		reflect.TypeOf(navigateMsg{}):       m.handleNavigateMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) currentLevel() *level {
	if m.screen == ScreenBlog {
		return m.postList
	}
	return m.items
}
