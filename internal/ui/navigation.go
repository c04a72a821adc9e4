package ui

import (
	"strconv"

	"github.com/atomicstack/quirks/internal/logging/events"
	"github.com/atomicstack/quirks/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m.handleInterrupt()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursor(m.level.MoveCursorUp)
	case "down", "ctrl+n":
		m.moveCursor(m.level.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.level.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.level.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor(m.level.MoveCursorHome)
	case "end":
		m.moveCursor(m.level.MoveCursorEnd)
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	idx, err := strconv.Atoi(item.ID)
	if err != nil {
		return nil
	}
	events.UI.MenuEnter(m.level.ID, idx, item.Label, current.Filter)
	m.selection = menu.Chosen(idx)
	m.chosenLabel = item.Label
	m.done = true
	return tea.Quit
}

func (m *Model) handleEscapeKey() tea.Cmd {
	events.UI.MenuCancel(m.level.ID)
	m.selection = menu.Cancelled
	m.done = true
	return tea.Quit
}

func (m *Model) handleInterrupt() tea.Cmd {
	m.selection = menu.Cancelled
	m.done = true
	m.interrupted = true
	return tea.Interrupt
}

func (m *Model) moveCursor(move func() bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if move() {
		events.UI.MenuCursor(m.level.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
