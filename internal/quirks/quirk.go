// Package quirks holds the puzzle catalog: small Go programs whose output
// tends to surprise, each shown as source and then executed in-process.
package quirks

import (
	"github.com/atomicstack/quirks/internal/logging/events"
	"github.com/atomicstack/quirks/internal/menu"
	"github.com/atomicstack/quirks/internal/terminal"
	"github.com/pkg/errors"
)

// Puzzle is one runnable quiz question.
type Puzzle struct {
	Label   string
	Snippet string
	// Wait pauses for a key between the question and the answer. Puzzles
	// that read their own input leave it unset.
	Wait bool
	Run  func(c *terminal.Console) error
}

// Play asks the question, optionally waits for a key, then runs the puzzle.
func (p Puzzle) Play(c *terminal.Console) error {
	events.Quirk.Run(p.Label)
	if err := c.Question(p.Snippet); err != nil {
		return err
	}
	if p.Wait {
		if err := c.WaitKey(); err != nil {
			return err
		}
	}
	if p.Run == nil {
		return nil
	}
	return p.Run(c)
}

// Entry binds the puzzle to c as a menu entry.
func (p Puzzle) Entry(c *terminal.Console) menu.Entry {
	return menu.Entry{
		Label:  p.Label,
		Action: menu.ActionFunc(func() error { return p.Play(c) }),
	}
}

// Group is a named set of related puzzles.
type Group struct {
	Label   string
	Puzzles []Puzzle
}

// Entries binds every puzzle in the group to c.
func (g Group) Entries(c *terminal.Console) []menu.Entry {
	entries := make([]menu.Entry, 0, len(g.Puzzles))
	for _, p := range g.Puzzles {
		entries = append(entries, p.Entry(c))
	}
	return entries
}

// Groups returns the catalog in menu order.
func Groups() []Group {
	return []Group{
		{Label: "Input End-of-line Parsing", Puzzles: inputPuzzles()},
		{Label: "Sort", Puzzles: sortPuzzles()},
		{Label: "Stack Overflow", Puzzles: stackPuzzles()},
		{Label: "Concurrency", Puzzles: concurrencyPuzzles()},
		{Label: "Nil interface", Puzzles: nilPuzzles()},
	}
}

// Register adds every group to reg as a category bound to c.
func Register(reg *menu.Registry, c *terminal.Console) error {
	for _, g := range Groups() {
		if _, err := reg.Register(g.Label, g.Entries(c)...); err != nil {
			return errors.Wrapf(err, "register %q", g.Label)
		}
	}
	return nil
}
