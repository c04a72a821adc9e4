package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "↑/↓ move  enter select  backspace edit  esc cancel  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. Once the prompt has finished it leaves a single
// summary line for a confirmed choice and nothing for a cancellation.
func (m *Model) View() string {
	if m.done {
		return m.summaryView()
	}
	lines := make([]styledLine, 0, 16)
	if m.level.Title != "" {
		lines = append(lines, styledLine{text: m.level.Title, style: styles.Header})
	}
	current := m.currentLevel()
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start, end := current.Visible(m.maxVisibleItems())
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildItemLine(current.Items[idx].Label, idx, current, m.width))
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)
	out := renderLines(lines)
	prompt := m.filterPrompt()
	if m.width > 0 && lipgloss.Width(prompt) > m.width {
		prompt = truncate.StringWithTail(prompt, uint(m.width), "…")
	}
	return out + "\n" + prompt
}

// summaryView ends with a newline because the renderer clears the last line
// when the program stops.
func (m *Model) summaryView() string {
	if !m.selection.OK || m.interrupted {
		return ""
	}
	line := render(styles.ChosenMark, "✔") + " " + render(styles.Header, m.level.Title) +
		" · " + render(styles.ChosenLabel, m.chosenLabel)
	return line + "\n"
}

// buildItemLine constructs a single styledLine for a menu item.
// width is the target column width; when > 0 the text is padded so that
// the selected item's background spans the full container.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := "▌ " + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

// maxVisibleItems returns how many item rows fit, or -1 when unbounded.
func (m *Model) maxVisibleItems() int {
	limit := m.maxVisible
	if m.height > 0 {
		used := 1 // filter prompt
		if m.level.Title != "" {
			used++
		}
		if m.showFooter {
			used += 2
		}
		remain := m.height - used
		if remain < 1 {
			remain = 1
		}
		if limit <= 0 || remain < limit {
			limit = remain
		}
	}
	if limit <= 0 {
		return -1
	}
	return limit
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			text = render(line.prefixStyle, string(runes[:line.highlightFrom])) +
				render(line.style, string(runes[line.highlightFrom:]))
		} else {
			text = render(line.style, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
