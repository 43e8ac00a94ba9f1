package blog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadPosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	body := `[{"_id":"p1","title":"Hi","description":"d","date":1767225600000,"author":{"id":"7","name":"Ann"}}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	posts, err := LoadPosts(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	want := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !posts[0].Date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, posts[0].Date)
	}
	if posts[0].Author.Name != "Ann" || posts[0].ID != "p1" {
		t.Fatalf("unexpected post %+v", posts[0])
	}
}

func TestLoadPostsErrors(t *testing.T) {
	if _, err := LoadPosts(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not":"a list"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPosts(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSamplePostsAreRelativeToNow(t *testing.T) {
	posts := SamplePosts(testNow)
	if len(posts) == 0 {
		t.Fatal("expected sample posts")
	}
	if !IsNew(posts[0], testNow, false, TwoWeeks) {
		t.Fatal("expected the first sample post to be NEW")
	}
	if IsNew(posts[len(posts)-1], testNow, false, TwoWeeks) {
		t.Fatal("expected the last sample post to be old")
	}
}
