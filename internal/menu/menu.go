package menu

import (
	"strings"
	"unicode"
)

// Item represents a selectable menu entry as seen by the selection widget.
type Item struct {
	ID    string
	Label string
}

// Action is the single capability every menu entry carries.
type Action interface {
	Invoke() error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func() error

// Invoke calls f.
func (f ActionFunc) Invoke() error {
	if f == nil {
		return nil
	}
	return f()
}

// Entry is a labelled, invocable menu entry.
type Entry struct {
	ID     string
	Label  string
	Action Action
}

// Item projects the entry onto its display form.
func (e Entry) Item() Item {
	return Item{ID: e.ID, Label: e.Label}
}

// Selection captures the outcome of a single prompt.
type Selection struct {
	Index int
	OK    bool
}

// Cancelled is the outcome reported when nothing was chosen.
var Cancelled = Selection{Index: -1}

// Chosen returns a confirmed selection for index i.
func Chosen(i int) Selection {
	return Selection{Index: i, OK: true}
}

// Selector presents items and resolves to one choice or a cancellation.
type Selector interface {
	Select(prompt string, items []Item) (Selection, error)
}

// Items projects entries onto their display form, preserving order.
func Items(entries []Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.Item())
	}
	return items
}

// Slug derives an identifier from a label: lower-case words joined by dashes.
func Slug(label string) string {
	fields := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}
