package state

// Entry is one row of a list: an item, a post card or a menu option.
type Entry struct {
	ID    string
	Label string
	// Hint is drawn dimmed after the label.
	Hint string
}

// Level holds the rows of one screen together with its cursor and viewport.
type Level struct {
	ID             string
	Title          string
	Entries        []Entry
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first entry.
func NewLevel(id, title string, entries []Entry) *Level {
	l := &Level{ID: id, Title: title}
	l.SetEntries(entries)
	return l
}

// IndexOf returns the index of the entry with the given id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, entry := range l.Entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (l *Level) Current() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Entries) {
		return Entry{}, false
	}
	return l.Entries[l.Cursor], true
}

// SetEntries replaces the rows. The cursor follows the entry it was on when
// that entry is still present and is clamped otherwise.
func (l *Level) SetEntries(entries []Entry) {
	var keep string
	if current, ok := l.Current(); ok {
		keep = current.ID
	}
	l.Entries = append([]Entry(nil), entries...)
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
	l.clamp()
}

func (l *Level) clamp() {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Entries) {
		l.Cursor = len(l.Entries) - 1
	}
	if l.ViewportOffset > len(l.Entries)-1 {
		l.ViewportOffset = 0
	}
}
