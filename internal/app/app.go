package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/item-directory/internal/blog"
	"github.com/atomicstack/item-directory/internal/browser"
	"github.com/atomicstack/item-directory/internal/catalog"
	"github.com/atomicstack/item-directory/internal/logging/events"
	"github.com/atomicstack/item-directory/internal/markdown"
	"github.com/atomicstack/item-directory/internal/store"
	"github.com/atomicstack/item-directory/internal/ui"
	"github.com/atomicstack/item-directory/internal/uievent"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen names accepted by Config.Screen.
const (
	ScreenItems = "items"
	ScreenBlog  = "blog"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	PostsPath   string
	// MarkersPath is the SQLite read-marker database. Empty keeps markers in
	// memory for the lifetime of the process.
	MarkersPath string
	DefaultItem string
	Developer   bool
	Screen      string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

// Environment is everything the UI model needs, loaded from Config.
type Environment struct {
	Catalog *catalog.Catalog
	Browser *browser.State
	Posts   []blog.Post
	Store   store.Store
	Tracker *blog.Tracker
	Events  *uievent.Source
}

// Close releases the marker store and the event source.
func (e *Environment) Close() error {
	if e.Events != nil {
		e.Events.Close()
	}
	if e.Store != nil {
		return e.Store.Close()
	}
	return nil
}

// Prepare loads the catalog, the posts and the marker store. now anchors the
// sample posts and the read-marker clock.
func Prepare(cfg Config, now func() time.Time) (*Environment, error) {
	if now == nil {
		now = time.Now
	}
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	defaultID := cfg.DefaultItem
	if defaultID == "" {
		defaultID = catalog.DefaultItemID
	}
	state, err := browser.New(cat, defaultID)
	if err != nil {
		return nil, err
	}
	posts, err := loadPosts(cfg.PostsPath, now())
	if err != nil {
		return nil, err
	}
	markers, err := openStore(cfg.MarkersPath)
	if err != nil {
		return nil, err
	}
	events.App.Loaded(cat.Len(), len(posts))
	return &Environment{
		Catalog: cat,
		Browser: state,
		Posts:   posts,
		Store:   markers,
		Tracker: blog.NewTracker(markers, blog.DefaultWindows(), now),
		Events:  uievent.NewSource(),
	}, nil
}

// NewModel builds the UI model for env.
func NewModel(cfg Config, env *Environment) *ui.Model {
	return ui.NewModel(ui.Options{
		Browser:    env.Browser,
		Markdown:   markdown.New(),
		Posts:      env.Posts,
		Tracker:    env.Tracker,
		Viewer:     blog.Viewer{Developer: cfg.Developer},
		Events:     env.Events,
		Screen:     ui.ParseScreen(cfg.Screen),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
}

// Run bootstraps and executes the Bubble Tea program. It returns the route
// the user chose to follow, or "" when the program exited without one.
func Run(cfg Config) (string, error) {
	env, err := Prepare(cfg, time.Now)
	if err != nil {
		return "", err
	}
	defer env.Close()

	model := NewModel(cfg, env)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return model.NavigatePath(), nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func loadPosts(path string, now time.Time) ([]blog.Post, error) {
	if path == "" {
		return blog.SamplePosts(now), nil
	}
	posts, err := blog.LoadPosts(path)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	return posts, nil
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	return store.OpenSQLite(path)
}
