package state

// MoveCursorUp moves one row up, wrapping to the last entry.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Entries)
	if n == 0 {
		return false
	}
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = n - 1
	}
	return n > 1
}

// MoveCursorDown moves one row down, wrapping to the first entry.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Entries)
	if n == 0 {
		return false
	}
	if l.Cursor < n-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return n > 1
}

// MoveCursorTo places the cursor on index, clamped to the entries.
func (l *Level) MoveCursorTo(index int) bool {
	old := l.Cursor
	l.Cursor = index
	l.clamp()
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first entry.
func (l *Level) MoveCursorHome() bool {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return false
	}
	return l.MoveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last entry.
func (l *Level) MoveCursorEnd() bool {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return false
	}
	return l.MoveCursorTo(len(l.Entries) - 1)
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return false
	}
	return l.MoveCursorTo(l.Cursor + delta)
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Entries)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays inside
// a window of maxVisible rows.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	l.clamp()
	if len(l.Entries) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Entries) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}

// Window returns the entries visible in a viewport of maxVisible rows and
// the index of the first one.
func (l *Level) Window(maxVisible int) ([]Entry, int) {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(l.Entries) <= maxVisible {
		return l.Entries, 0
	}
	start := l.ViewportOffset
	return l.Entries[start : start+maxVisible], start
}
