package dispatcher

import (
	"github.com/atomicstack/quirks/internal/menu"
	"github.com/pkg/errors"
)

// ErrUnknownMenu is returned by Open for an ID that names no category or entry.
var ErrUnknownMenu = errors.New("unknown menu")

// State is the loop's position.
type State int

const (
	AtTopMenu State = iota
	RunningCategory
)

func (s State) String() string {
	switch s {
	case AtTopMenu:
		return "top-menu"
	case RunningCategory:
		return "running-category"
	default:
		return "unknown"
	}
}

// Loop repeatedly offers the categories and runs the chosen one.
type Loop struct {
	d       *Dispatcher
	reg     *menu.Registry
	entries []menu.Entry
	state   State
}

// NewLoop snapshots reg's categories. Categories registered afterwards are
// not offered.
func NewLoop(d *Dispatcher, reg *menu.Registry) *Loop {
	cats := reg.Categories()
	l := &Loop{
		d:       d,
		reg:     reg,
		entries: make([]menu.Entry, 0, len(cats)),
		state:   AtTopMenu,
	}
	for _, cat := range cats {
		l.entries = append(l.entries, d.Submenu(cat))
	}
	return l
}

// State reports where the loop is.
func (l *Loop) State() State {
	return l.state
}

// Step shows the top prompt once and runs the chosen category, if any.
func (l *Loop) Step() error {
	sel, err := l.d.Select(TopPrompt, l.entries)
	if err != nil {
		return err
	}
	if !sel.OK {
		return l.d.notice()
	}
	return l.run(l.entries[sel.Index])
}

// Open runs a registry node directly: a category ID opens its sub-menu, an
// entry ID such as "sort:sort-int" runs that entry alone.
func (l *Loop) Open(id string) error {
	node, ok := l.reg.Find(id)
	switch {
	case !ok:
		return errors.Wrapf(ErrUnknownMenu, "%q", id)
	case node.Category != nil:
		return l.run(l.d.Submenu(node.Category))
	default:
		return l.run(*node.Entry)
	}
}

func (l *Loop) run(entry menu.Entry) error {
	l.state = RunningCategory
	defer func() { l.state = AtTopMenu }()
	return l.d.Invoke(entry)
}

// Run steps until a step fails. It never returns nil.
func (l *Loop) Run() error {
	for {
		if err := l.Step(); err != nil {
			return err
		}
	}
}
