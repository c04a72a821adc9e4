package ui

import (
	"reflect"
	"strconv"

	"github.com/atomicstack/quirks/internal/menu"
	"github.com/atomicstack/quirks/internal/theme"
	uistate "github.com/atomicstack/quirks/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// ModelConfig tunes how a prompt is drawn.
type ModelConfig struct {
	// MaxVisible caps the number of item rows. Zero or less means no cap
	// beyond the terminal height.
	MaxVisible int
	ShowFooter bool
	// Width and Height pin the layout instead of following resize messages.
	Width  int
	Height int
	// BlinkCursor enables the blinking filter caret.
	BlinkCursor bool
}

// Model implements the Bubble Tea model for one selection prompt.
type Model struct {
	level             *level
	selection         menu.Selection
	chosenLabel       string
	done              bool
	interrupted       bool
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	maxVisible        int
	showFooter        bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel prepares a prompt over items. Each item is tracked by its
// position so that duplicate labels still resolve to the exact entry.
func NewModel(prompt string, items []menu.Item, cfg ModelConfig) *Model {
	positional := make([]menu.Item, len(items))
	for i, item := range items {
		positional[i] = menu.Item{ID: strconv.Itoa(i), Label: item.Label}
	}
	m := &Model{
		level:      uistate.NewLevel(prompt, prompt, positional),
		selection:  menu.Cancelled,
		maxVisible: cfg.MaxVisible,
		showFooter: cfg.ShowFooter,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	if !cfg.BlinkCursor {
		c.SetMode(cursor.CursorStatic)
	}
	m.filterCursor = c
	m.syncViewport(m.level)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Selection reports the outcome once the prompt has finished. Positions refer
// to the items passed to NewModel.
func (m *Model) Selection() menu.Selection {
	return m.selection
}

// Done reports whether the prompt was confirmed or cancelled.
func (m *Model) Done() bool {
	return m.done
}

// Interrupted reports whether ctrl+c ended the prompt.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) currentLevel() *level {
	if m.done {
		return nil
	}
	return m.level
}
