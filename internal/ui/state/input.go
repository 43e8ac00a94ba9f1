package state

import "unicode"

// Input is a single line of editable text with a rune cursor.
type Input struct {
	Text string
	Pos  int
}

// CursorPos returns the clamped rune offset of the cursor.
func (in *Input) CursorPos() int {
	n := len([]rune(in.Text))
	if in.Pos < 0 {
		return 0
	}
	if in.Pos > n {
		return n
	}
	return in.Pos
}

// Set replaces the text and cursor.
func (in *Input) Set(text string, pos int) {
	in.Text = text
	in.Pos = pos
	in.Pos = in.CursorPos()
}

// Clear empties the input. It reports whether anything changed.
func (in *Input) Clear() bool {
	if in.Text == "" && in.Pos == 0 {
		return false
	}
	in.Set("", 0)
	return true
}

// Insert adds text at the cursor.
func (in *Input) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(in.Text)
	pos := in.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	in.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward removes the rune before the cursor.
func (in *Input) DeleteRuneBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	in.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward removes the word preceding the cursor along with any
// whitespace between them.
func (in *Input) DeleteWordBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i:i], runes[pos:]...)
	in.Set(string(updated), i)
	return true
}

func (in *Input) MoveStart() bool { return in.moveTo(0) }

func (in *Input) MoveEnd() bool { return in.moveTo(len([]rune(in.Text))) }

func (in *Input) MoveRuneBackward() bool { return in.moveTo(in.CursorPos() - 1) }

func (in *Input) MoveRuneForward() bool { return in.moveTo(in.CursorPos() + 1) }

func (in *Input) MoveWordBackward() bool {
	return in.moveTo(wordStart([]rune(in.Text), in.CursorPos()))
}

func (in *Input) MoveWordForward() bool {
	runes := []rune(in.Text)
	i := in.CursorPos()
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return in.moveTo(i)
}

func (in *Input) moveTo(pos int) bool {
	before := in.CursorPos()
	in.Pos = pos
	in.Pos = in.CursorPos()
	return in.Pos != before
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
