package menu

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyLabel is returned when a category is registered without a label.
var ErrEmptyLabel = errors.New("category label must not be empty")

// Category is a named, ordered group of entries.
type Category struct {
	ID      string
	Label   string
	Entries []Entry
}

// Node is a category or an entry addressed by ID. Exactly one of Category
// and Entry is set.
type Node struct {
	ID       string
	Label    string
	Category *Category
	Entry    *Entry
}

// Registry holds the catalog in registration order.
type Registry struct {
	categories []*Category
	nodes      map[string]*Node
}

// NewRegistry returns an empty catalog.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Register appends a category holding entries. Entry IDs left empty are
// derived from their labels and scoped under the category ID.
func (r *Registry) Register(label string, entries ...Entry) (*Category, error) {
	if strings.TrimSpace(label) == "" {
		return nil, ErrEmptyLabel
	}
	cat := &Category{
		ID:      r.uniqueID(Slug(label)),
		Label:   label,
		Entries: make([]Entry, len(entries)),
	}
	copy(cat.Entries, entries)
	r.nodes[cat.ID] = &Node{ID: cat.ID, Label: label, Category: cat}
	for i := range cat.Entries {
		entry := &cat.Entries[i]
		key := entry.ID
		if key == "" {
			key = Slug(entry.Label)
		}
		id := r.uniqueID(cat.ID + ":" + key)
		entry.ID = id
		r.nodes[id] = &Node{ID: id, Label: entry.Label, Entry: entry}
	}
	r.categories = append(r.categories, cat)
	return cat, nil
}

// Categories returns the registered categories in registration order.
func (r *Registry) Categories() []*Category {
	out := make([]*Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

func (r *Registry) uniqueID(id string) string {
	if id == "" || strings.HasSuffix(id, ":") {
		id += "item"
	}
	if _, taken := r.nodes[id]; !taken {
		return id
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := r.nodes[candidate]; !taken {
			return candidate
		}
	}
}
