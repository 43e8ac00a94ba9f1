package state

import "testing"

func TestInputInsertAtCursor(t *testing.T) {
	var in Input
	in.Insert("apl")
	in.MoveRuneBackward()
	in.Insert("p")
	if in.Text != "appl" || in.CursorPos() != 3 {
		t.Fatalf("expected appl with cursor 3, got %q/%d", in.Text, in.CursorPos())
	}
	if in.Insert("") {
		t.Fatal("empty insert should be a no-op")
	}
}

func TestInputDeleteRuneBackward(t *testing.T) {
	in := Input{}
	in.Set("fish", 4)
	if !in.DeleteRuneBackward() || in.Text != "fis" {
		t.Fatalf("expected fis, got %q", in.Text)
	}
	in.MoveStart()
	if in.DeleteRuneBackward() {
		t.Fatal("expected no delete at start")
	}
}

func TestInputDeleteWordBackward(t *testing.T) {
	in := Input{}
	in.Set("fishing pole  ", 14)
	if !in.DeleteWordBackward() {
		t.Fatal("expected delete")
	}
	if in.Text != "fishing " || in.CursorPos() != 8 {
		t.Fatalf("expected %q at 8, got %q at %d", "fishing ", in.Text, in.CursorPos())
	}
}

func TestInputWordMovement(t *testing.T) {
	in := Input{}
	in.Set("bank note box", 0)
	if !in.MoveWordForward() || in.CursorPos() != 5 {
		t.Fatalf("expected cursor 5, got %d", in.CursorPos())
	}
	in.MoveEnd()
	if !in.MoveWordBackward() || in.CursorPos() != 10 {
		t.Fatalf("expected cursor 10, got %d", in.CursorPos())
	}
	if in.MoveRuneForward(); in.CursorPos() != 11 {
		t.Fatalf("expected cursor 11, got %d", in.CursorPos())
	}
}

func TestInputClear(t *testing.T) {
	in := Input{}
	if in.Clear() {
		t.Fatal("clearing empty input should report no change")
	}
	in.Set("héllo", 99)
	if in.CursorPos() != 5 {
		t.Fatalf("expected cursor clamped to 5, got %d", in.CursorPos())
	}
	if !in.Clear() || in.Text != "" {
		t.Fatal("expected cleared input")
	}
}
