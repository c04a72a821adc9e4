package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/quirks/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func viewLines(m *Model) []string {
	return strings.Split(testutil.StripANSI(m.View()), "\n")
}

func TestViewListsItemsInOrder(t *testing.T) {
	m := NewModel("Select an item to explore", itemsFor("Sort int", "Sort float"), ModelConfig{})
	lines := viewLines(m)
	want := []string{
		"Select an item to explore",
		"▌ Sort int",
		"▌ Sort float",
		"» (type to search)",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestViewWindowFollowsCursor(t *testing.T) {
	m := NewModel("Pick", itemsFor("a", "b", "c", "d", "e"), ModelConfig{Height: 4})
	h := NewHarness(m)
	lines := viewLines(m)
	if len(lines) != 4 || lines[1] != "▌ a" || lines[2] != "▌ b" {
		t.Fatalf("expected first two items, got %q", lines)
	}
	h.Press(tea.KeyEnd)
	lines = viewLines(m)
	if lines[1] != "▌ d" || lines[2] != "▌ e" {
		t.Fatalf("expected last two items, got %q", lines)
	}
}

func TestViewNoMatches(t *testing.T) {
	h := NewHarness(newTestModel("Sort"))
	h.Type("zz")
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected no-match notice, got:\n%s", view)
	}
}

func TestViewFooter(t *testing.T) {
	m := NewModel("Pick", itemsFor("a"), ModelConfig{ShowFooter: true})
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "esc cancel") {
		t.Fatalf("expected footer hint, got:\n%s", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	m := NewModel("Pick", itemsFor("Sort float with sort.Slice"), ModelConfig{Width: 10})
	for _, line := range viewLines(m) {
		if w := len([]rune(line)); w > 10 {
			t.Fatalf("expected lines within 10 columns, got %q (%d)", line, w)
		}
	}
}

func TestSummaryAfterConfirm(t *testing.T) {
	h := NewHarness(newTestModel(quirkCategories...))
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)
	got := testutil.StripANSI(h.View())
	if got != "✔ Select a Quirk · Sort\n" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestNothingLeftAfterCancel(t *testing.T) {
	h := NewHarness(newTestModel(quirkCategories...))
	h.Press(tea.KeyEsc)
	if got := h.View(); got != "" {
		t.Fatalf("expected empty view after cancel, got %q", got)
	}
}
