package dispatcher

import (
	"fmt"
	"io"

	"github.com/atomicstack/quirks/internal/command"
	"github.com/atomicstack/quirks/internal/menu"
	"github.com/pkg/errors"
)

const (
	// TopPrompt heads the category list.
	TopPrompt = "Select a Quirk"
	// SubPrompt heads the entries of one category.
	SubPrompt = "Select an item to explore"
	// NothingSelected is printed when a prompt is cancelled.
	NothingSelected = "You didn't select anything"
)

// Dispatcher presents entries through a Selector and invokes the chosen one.
type Dispatcher struct {
	selector menu.Selector
	out      io.Writer
	bus      *command.Bus
}

// New returns a Dispatcher writing notices to out. A nil bus gets a fresh one.
func New(selector menu.Selector, out io.Writer, bus *command.Bus) *Dispatcher {
	if bus == nil {
		bus = command.New()
	}
	return &Dispatcher{selector: selector, out: out, bus: bus}
}

// Select shows entries under prompt. An out-of-range answer from the
// selector is treated as an error.
func (d *Dispatcher) Select(prompt string, entries []menu.Entry) (menu.Selection, error) {
	sel, err := d.selector.Select(prompt, menu.Items(entries))
	if err != nil {
		return menu.Cancelled, err
	}
	if sel.OK && (sel.Index < 0 || sel.Index >= len(entries)) {
		return menu.Cancelled, errors.Errorf("selection %d out of range for %d entries", sel.Index, len(entries))
	}
	return sel, nil
}

// Invoke runs entry through the command bus.
func (d *Dispatcher) Invoke(entry menu.Entry) error {
	return d.bus.Execute(command.Request{ID: entry.ID, Label: entry.Label, Action: entry.Action})
}

// Dispatch selects one of entries and invokes it. A cancellation prints the
// notice and is not an error.
func (d *Dispatcher) Dispatch(prompt string, entries []menu.Entry) (menu.Selection, error) {
	sel, err := d.Select(prompt, entries)
	if err != nil {
		return sel, err
	}
	if !sel.OK {
		return sel, d.notice()
	}
	return sel, d.Invoke(entries[sel.Index])
}

// Submenu wraps cat as an entry that opens its own prompt. A blank line
// follows any entry that ran.
func (d *Dispatcher) Submenu(cat *menu.Category) menu.Entry {
	return menu.Entry{
		ID:    cat.ID,
		Label: cat.Label,
		Action: menu.ActionFunc(func() error {
			sel, err := d.Dispatch(SubPrompt, cat.Entries)
			if err != nil {
				return err
			}
			if sel.OK {
				_, err = fmt.Fprintln(d.out)
				return errors.Wrap(err, "write separator")
			}
			return nil
		}),
	}
}

func (d *Dispatcher) notice() error {
	_, err := fmt.Fprintln(d.out, NothingSelected)
	return errors.Wrap(err, "write notice")
}
