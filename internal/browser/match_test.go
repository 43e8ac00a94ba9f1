package browser

import "testing"

func TestBestMatchIndex(t *testing.T) {
	s := newTestState(t)
	items := s.Visible()
	cases := []struct {
		term string
		want string
	}{
		{"apple", "apple"},
		{"bank", "banknote"},
		{"boxd", "boxdaily"},
		{"rifle", "huntingrifle"},
		{"tphy", "trophy"},
	}
	for _, tc := range cases {
		idx := BestMatchIndex(items, tc.term)
		if idx < 0 || items[idx].ID != tc.want {
			t.Fatalf("%q: expected %s, got index %d", tc.term, tc.want, idx)
		}
	}
	if idx := BestMatchIndex(items, "qqqq"); idx != 0 {
		t.Fatalf("expected fallback 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for no items, got %d", idx)
	}
}

func TestBestMatchUsesVisibleItems(t *testing.T) {
	s := newTestState(t)
	s.SetSearch("fish")
	if idx := s.BestMatch("fishing"); idx != 1 {
		t.Fatalf("expected Fishing Pole at 1, got %d", idx)
	}
}
