package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/item-directory/internal/blog"
	"github.com/atomicstack/item-directory/internal/catalog"
	"github.com/atomicstack/item-directory/internal/ui"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestPrepareUsesBundledDataByDefault(t *testing.T) {
	env, err := Prepare(Config{}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer env.Close()
	if env.Catalog.Len() == 0 {
		t.Fatalf("expected bundled catalog items")
	}
	if got := env.Browser.SelectedID(); got != catalog.DefaultItemID {
		t.Fatalf("expected default selection %q, got %q", catalog.DefaultItemID, got)
	}
	if len(env.Posts) != len(blog.SamplePosts(fixedNow())) {
		t.Fatalf("expected sample posts, got %d", len(env.Posts))
	}
	if env.Tracker == nil || env.Events == nil {
		t.Fatalf("expected tracker and event source to be wired")
	}
}

func TestPrepareRejectsUnknownDefaultItem(t *testing.T) {
	_, err := Prepare(Config{DefaultItem: "nope"}, fixedNow)
	if err == nil {
		t.Fatalf("expected error for unknown default item")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected error to name the item, got %v", err)
	}
}

func TestPrepareReportsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Prepare(Config{CatalogPath: filepath.Join(dir, "missing.json")}, fixedNow); err == nil {
		t.Fatalf("expected catalog load error")
	}
	if _, err := Prepare(Config{PostsPath: filepath.Join(dir, "missing.json")}, fixedNow); err == nil {
		t.Fatalf("expected posts load error")
	}
}

func TestPrepareOpensSQLiteMarkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "markers.db")
	env, err := Prepare(Config{MarkersPath: path}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	post := env.Posts[0]
	if err := env.Tracker.MarkRead(context.Background(), post); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := env.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected marker database on disk: %v", err)
	}

	reopened, err := Prepare(Config{MarkersPath: path}, fixedNow)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	read, err := reopened.Tracker.IsRead(context.Background(), post)
	if err != nil {
		t.Fatalf("is read: %v", err)
	}
	if !read {
		t.Fatalf("expected marker to survive a reopen")
	}
}

func TestNewModelAppliesScreen(t *testing.T) {
	env, err := Prepare(Config{}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer env.Close()
	model := NewModel(Config{Screen: ScreenBlog, Width: 100, Height: 30}, env)
	defer model.Close()
	if model.Screen() != ui.ScreenBlog {
		t.Fatalf("expected blog screen, got %v", model.Screen())
	}
	if model.NavigatePath() != "" {
		t.Fatalf("expected no navigation before the program runs")
	}
}
