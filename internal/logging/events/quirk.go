package events

import "github.com/atomicstack/quirks/internal/logging"

type QuirkTracer struct{}

var Quirk = QuirkTracer{}

func (QuirkTracer) Run(label string) {
	logging.Trace("quirk.run", map[string]interface{}{"label": label})
}

func (QuirkTracer) Input(label string, line string) {
	logging.Trace("quirk.input", map[string]interface{}{"label": label, "line": line})
}
