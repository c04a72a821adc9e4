package app

import (
	"io"
	"os"

	"github.com/atomicstack/quirks/internal/command"
	"github.com/atomicstack/quirks/internal/dispatcher"
	"github.com/atomicstack/quirks/internal/logging"
	"github.com/atomicstack/quirks/internal/menu"
	"github.com/atomicstack/quirks/internal/quirks"
	"github.com/atomicstack/quirks/internal/terminal"
	"github.com/atomicstack/quirks/internal/ui"
	"github.com/pkg/errors"
)

// Config describes user-provided application options.
type Config struct {
	MaxVisible   int
	ShowFooter   bool
	SnippetStyle string
	RootMenu     string
}

// Streams are the process streams the application talks to. The menu draws
// on Menu; puzzles read In and write Out.
type Streams struct {
	In   io.Reader
	Out  io.Writer
	Menu io.Writer
}

// StdStreams returns stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Menu: os.Stderr}
}

// Build wires the catalog, console, picker and loop together without
// starting anything.
func Build(cfg Config, streams Streams, selector menu.Selector) (*dispatcher.Loop, error) {
	console := terminal.New(terminal.Config{
		In:           streams.In,
		Out:          streams.Out,
		SnippetStyle: cfg.SnippetStyle,
	})
	if selector == nil {
		selector = ui.NewPicker(ui.PickerConfig{
			Input:       streams.In,
			Output:      streams.Menu,
			MaxVisible:  cfg.MaxVisible,
			ShowFooter:  cfg.ShowFooter,
			BlinkCursor: true,
		})
	}
	reg := menu.NewRegistry()
	if err := quirks.Register(reg, console); err != nil {
		return nil, err
	}
	d := dispatcher.New(selector, console, command.New())
	return dispatcher.NewLoop(d, reg), nil
}

// Run opens the requested start menu, if any, then loops over the top-level
// menu until an error or interrupt ends it.
func Run(cfg Config, streams Streams, selector menu.Selector) error {
	loop, err := Build(cfg, streams, selector)
	if err != nil {
		return errors.Wrap(err, "build menu")
	}
	if cfg.RootMenu != "" {
		logging.Debugf("opening start menu %q", cfg.RootMenu)
		if err := loop.Open(cfg.RootMenu); err != nil {
			return err
		}
	}
	return loop.Run()
}
