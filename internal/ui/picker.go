package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/quirks/internal/logging/events"
	"github.com/atomicstack/quirks/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// ErrInterrupted is returned when ctrl+c ends a prompt.
var ErrInterrupted = fmt.Errorf("selection interrupted: %w", tea.ErrInterrupted)

// PickerConfig configures a Picker.
type PickerConfig struct {
	// Input defaults to stdin, Output to stderr.
	Input       io.Reader
	Output      io.Writer
	MaxVisible  int
	ShowFooter  bool
	BlinkCursor bool
	// Options are appended to the program options, mainly for tests.
	Options []tea.ProgramOption
}

// Picker is the interactive menu.Selector.
type Picker struct {
	cfg PickerConfig
}

var _ menu.Selector = (*Picker)(nil)

// NewPicker returns a Picker drawing on cfg.Output.
func NewPicker(cfg PickerConfig) *Picker {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Picker{cfg: cfg}
}

// Select shows prompt over items and blocks until the user confirms, cancels
// or interrupts. An empty list is cancelled without drawing anything.
func (p *Picker) Select(prompt string, items []menu.Item) (menu.Selection, error) {
	if len(items) == 0 {
		events.UI.Empty(prompt)
		return menu.Cancelled, nil
	}
	events.UI.MenuOpen(prompt, len(items))
	model := NewModel(prompt, items, ModelConfig{
		MaxVisible:  p.cfg.MaxVisible,
		ShowFooter:  p.cfg.ShowFooter,
		BlinkCursor: p.cfg.BlinkCursor,
	})
	opts := []tea.ProgramOption{tea.WithOutput(p.cfg.Output)}
	if p.cfg.Input != nil {
		opts = append(opts, tea.WithInput(p.cfg.Input))
	}
	opts = append(opts, p.cfg.Options...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return menu.Cancelled, errors.WithStack(ErrInterrupted)
		}
		return menu.Cancelled, errors.Wrapf(err, "run prompt %q", prompt)
	}
	result, ok := final.(*Model)
	if !ok {
		return menu.Cancelled, errors.Errorf("unexpected model type %T", final)
	}
	if result.Interrupted() {
		return menu.Cancelled, errors.WithStack(ErrInterrupted)
	}
	return result.Selection(), nil
}
