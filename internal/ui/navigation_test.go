package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCursorWrapsAround(t *testing.T) {
	h := NewHarness(newTestModel("a", "b", "c"))
	h.Press(tea.KeyUp)
	if got := h.Model().currentLevel().Cursor; got != 2 {
		t.Fatalf("expected wrap to last item, got %d", got)
	}
	h.Press(tea.KeyDown)
	if got := h.Model().currentLevel().Cursor; got != 0 {
		t.Fatalf("expected wrap to first item, got %d", got)
	}
}

func TestPagingKeys(t *testing.T) {
	m := NewModel("Pick", itemsFor("a", "b", "c", "d", "e", "f"), ModelConfig{MaxVisible: 2})
	h := NewHarness(m)
	h.Press(tea.KeyPgDown)
	if got := m.currentLevel().Cursor; got != 2 {
		t.Fatalf("expected page down to 2, got %d", got)
	}
	h.Press(tea.KeyEnd)
	if got := m.currentLevel().Cursor; got != 5 {
		t.Fatalf("expected end to 5, got %d", got)
	}
	if m.currentLevel().ViewportOffset != 4 {
		t.Fatalf("expected viewport to follow cursor, got %d", m.currentLevel().ViewportOffset)
	}
	h.Press(tea.KeyPgUp)
	if got := m.currentLevel().Cursor; got != 3 {
		t.Fatalf("expected page up to 3, got %d", got)
	}
	h.Press(tea.KeyHome)
	if got := m.currentLevel().Cursor; got != 0 {
		t.Fatalf("expected home to 0, got %d", got)
	}
}

func TestClearingQueryRestoresCursor(t *testing.T) {
	h := NewHarness(newTestModel(quirkCategories...))
	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	h.Type("nil")
	if got := h.Model().currentLevel().Items; len(got) != 1 {
		t.Fatalf("expected one match for nil, got %#v", got)
	}
	h.Press(tea.KeyCtrlU)
	current := h.Model().currentLevel()
	if len(current.Items) != len(quirkCategories) {
		t.Fatalf("expected all items back, got %#v", current.Items)
	}
	if current.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", current.Cursor)
	}
}

func TestMaxVisibleItems(t *testing.T) {
	m := NewModel("Pick", itemsFor("a", "b", "c"), ModelConfig{})
	if got := m.maxVisibleItems(); got != -1 {
		t.Fatalf("expected unbounded, got %d", got)
	}
	m = NewModel("Pick", itemsFor("a", "b", "c"), ModelConfig{MaxVisible: 10, Height: 6})
	if got := m.maxVisibleItems(); got != 4 {
		t.Fatalf("expected height to cap rows at 4, got %d", got)
	}
	m = NewModel("Pick", itemsFor("a", "b", "c"), ModelConfig{MaxVisible: 2, Height: 20, ShowFooter: true})
	if got := m.maxVisibleItems(); got != 2 {
		t.Fatalf("expected configured cap of 2, got %d", got)
	}
	m = NewModel("Pick", itemsFor("a"), ModelConfig{Height: 1})
	if got := m.maxVisibleItems(); got != 1 {
		t.Fatalf("expected at least one row, got %d", got)
	}
}

func TestWindowSizeMsgRespectsFixedHeight(t *testing.T) {
	m := NewModel("Pick", itemsFor("a"), ModelConfig{Height: 5})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 30})
	if m.height != 5 || m.width != 40 {
		t.Fatalf("expected fixed height and dynamic width, got %dx%d", m.width, m.height)
	}
}
