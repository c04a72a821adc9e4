package ui

import (
	"unicode"

	"github.com/atomicstack/quirks/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const filterPlaceholder = "(type to search)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// moveFilterCursor applies a query-cursor movement and traces it.
func (m *Model) moveFilterCursor(move func() bool, word bool) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	if word {
		events.Filter.CursorWord(current.ID, current.FilterCursor)
	} else {
		events.Filter.Cursor(current.ID, current.FilterCursor)
	}
	return true
}

// editFilter applies a query edit, traces it and keeps the highlighted row
// on screen.
func (m *Model) editFilter(edit func() bool, trace func(id, filter string)) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !edit() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	trace(current.ID, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		return m.editFilter(func() bool {
			current.SetFilter("", 0)
			return true
		}, func(id, _ string) { events.Filter.Cleared(id) })
	case "ctrl+w":
		return m.editFilter(current.DeleteFilterWordBackward, events.Filter.WordBackspace)
	case "ctrl+a":
		return m.moveFilterCursor(current.MoveFilterCursorStart, false)
	case "ctrl+e":
		return m.moveFilterCursor(current.MoveFilterCursorEnd, false)
	case "alt+b":
		return m.moveFilterCursor(current.MoveFilterCursorWordBackward, true)
	case "alt+f":
		return m.moveFilterCursor(current.MoveFilterCursorWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(current.DeleteFilterRuneBackward, events.Filter.Backspace)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.moveFilterCursor(current.MoveFilterCursorRuneBackward, false)
	case tea.KeyRight:
		return m.moveFilterCursor(current.MoveFilterCursorRuneForward, false)
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || text == "" {
		return false
	}
	return m.editFilter(func() bool {
		return current.InsertFilterText(text)
	}, events.Filter.Append)
}

func (m *Model) filterPrompt() string {
	prompt := render(styles.FilterPrompt, "» ")
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if current.Filter == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Render(char)
	}
	return base.Reverse(true).Render(char)
}
