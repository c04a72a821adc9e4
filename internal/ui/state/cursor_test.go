package state

import (
	"testing"

	"github.com/atomicstack/quirks/internal/menu"
)

func newTestLevel(labels ...string) *Level {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = menu.Item{ID: label, Label: label}
	}
	return NewLevel("test", "Test", items)
}

func TestNewLevelHighlightsFirstItem(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	item, ok := l.Current()
	if !ok || item.Label != "a" {
		t.Fatalf("expected current item a, got %#v (ok=%v)", item, ok)
	}

	empty := newTestLevel()
	if _, ok := empty.Current(); ok {
		t.Fatalf("expected no current item for empty level")
	}
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}

	single := newTestLevel("only")
	if single.MoveCursorDown() {
		t.Fatalf("expected no movement with a single item")
	}

	empty := newTestLevel()
	empty.Cursor = 4
	if empty.MoveCursorUp() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected end to set cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected home to set cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() || empty.Cursor != 0 {
		t.Fatalf("expected empty level to stay at 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
	l.Cursor = 1
	if !l.MoveCursorPageDown(0) || l.Cursor != 4 {
		t.Fatalf("expected jump to end with unknown page size, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestVisibleRange(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if start, end := l.Visible(0); start != 0 || end != 5 {
		t.Fatalf("expected full range, got %d..%d", start, end)
	}
	l.Cursor = 4
	if start, end := l.Visible(3); start != 2 || end != 5 {
		t.Fatalf("expected trailing window 2..5, got %d..%d", start, end)
	}
	l.Cursor = 0
	if start, end := l.Visible(3); start != 0 || end != 3 {
		t.Fatalf("expected leading window 0..3, got %d..%d", start, end)
	}
}
