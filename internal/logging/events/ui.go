package events

import "github.com/atomicstack/quirks/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuOpen(prompt string, count int) {
	logging.Trace("menu.open", map[string]interface{}{"prompt": prompt, "items": count})
}

func (UITracer) MenuEnter(prompt string, index int, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"prompt": prompt,
		"index":  index,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(prompt string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"prompt": prompt, "cursor": cursor})
}

func (UITracer) MenuCancel(prompt string) {
	logging.Trace("menu.cancel", map[string]interface{}{"prompt": prompt})
}

func (UITracer) Empty(prompt string) {
	logging.Trace("menu.empty", map[string]interface{}{"prompt": prompt})
}

func (FilterTracer) Cleared(prompt string) {
	logging.Trace("filter.clear", map[string]interface{}{"prompt": prompt})
}

func (FilterTracer) WordBackspace(prompt, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"prompt": prompt, "filter": filter})
}

func (FilterTracer) Cursor(prompt string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"prompt": prompt, "cursor": pos})
}

func (FilterTracer) CursorWord(prompt string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"prompt": prompt, "cursor": pos})
}

func (FilterTracer) Append(prompt, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"prompt": prompt, "filter": filter})
}

func (FilterTracer) Backspace(prompt, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"prompt": prompt, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
