package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewSideBySideLayout(t *testing.T) {
	env := newTestEnv(t, Options{})
	view := env.harness.View()
	if !strings.Contains(view, "Item directory · 11 of 11 items") {
		t.Fatalf("expected header in view:\n%s", view)
	}
	for _, want := range []string{"╭", "Detail: A Plus", "Not Buyable", "✓ A Plus"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	rows := strings.Split(view, "\n")
	if len(rows) != env.model.height {
		t.Fatalf("expected %d rows, got %d", env.model.height, len(rows))
	}
	for i, row := range rows[:len(rows)-2] {
		if w := lipgloss.Width(row); w != env.model.width {
			t.Fatalf("row %d: expected width %d, got %d (%q)", i, env.model.width, w, row)
		}
	}
}

func TestViewVerticalLayoutOnNarrowTerminal(t *testing.T) {
	env := newTestEnv(t, Options{Width: 50, Height: 30})
	if env.model.hasSidePanel() {
		t.Fatalf("expected no side panel at width 50")
	}
	view := env.harness.View()
	if !strings.Contains(view, "Detail: A Plus") {
		t.Fatalf("expected detail title below the list:\n%s", view)
	}
	if strings.Contains(view, "╭") {
		t.Fatalf("expected no boxed panel in the vertical layout:\n%s", view)
	}
}

func TestViewShowsChipsAndCategory(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.harness.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3"), Alt: true})
	view := env.harness.View()
	for _, want := range []string{"1 Collectable", "3 Loot Box", "1 of 11 items · Loot Box", "Daily Box"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewShowsEmptySearch(t *testing.T) {
	env := newTestEnv(t, Options{})
	typeText(env.harness, "qqq")
	view := env.harness.View()
	if !strings.Contains(view, `No items match "qqq"`) {
		t.Fatalf("expected empty notice:\n%s", view)
	}
}

func TestViewRendersOpenMenu(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.harness.Send(keyType(tea.KeyCtrlO))
	view := env.harness.View()
	for _, want := range []string{" Categories ", "▸ All", "Item Pack"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewBlogScreen(t *testing.T) {
	env := newTestEnv(t, Options{Screen: ScreenBlog})
	view := env.harness.View()
	for _, want := range []string{"Community blog · 3 posts", "● Winter Update", "draft", "enter for options"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewShowsErrorAndFooter(t *testing.T) {
	env := newTestEnv(t, Options{ShowFooter: true, Width: 200})
	env.model.errMsg = "boom"
	view := env.harness.View()
	if !strings.Contains(view, "Error: boom") {
		t.Fatalf("expected error line:\n%s", view)
	}
	if !strings.Contains(view, "ctrl+o categories") {
		t.Fatalf("expected footer help:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "h"},
		{"hello", 0, "hello"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.text, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d): expected %q, got %q", tc.text, tc.width, tc.want, got)
		}
	}
}

func TestFitWidthPadsAndTruncates(t *testing.T) {
	if got := fitWidth("ab", 4); got != "ab  " {
		t.Fatalf("expected padded text, got %q", got)
	}
	if got := lipgloss.Width(fitWidth("abcdefgh", 4)); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected two lines ending in an ellipsis, got %+v", got)
	}
	if got := limitHeight(lines, 5, 10); len(got) != 3 {
		t.Fatalf("expected lines untouched, got %d", len(got))
	}
}

func TestInfoMessageExpires(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.model.setInfo("hello")
	if env.model.currentInfo() != "hello" {
		t.Fatalf("expected info message")
	}
	env.model.infoExpire = env.model.infoExpire.Add(-2 * infoMessageTimeout)
	if env.model.currentInfo() != "" {
		t.Fatalf("expected info message to expire")
	}
}
