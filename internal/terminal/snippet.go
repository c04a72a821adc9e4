package terminal

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
)

const defaultWrapWidth = 80

// Snippet styles accepted by NewSnippetRenderer.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
	StylePlain = "plain"
)

// SnippetStyles lists the accepted snippet styles.
var SnippetStyles = []string{StyleAuto, StyleDark, StyleLight, StyleNoTTY, StylePlain}

// ValidSnippetStyle reports whether style is one of SnippetStyles.
func ValidSnippetStyle(style string) bool {
	for _, s := range SnippetStyles {
		if s == style {
			return true
		}
	}
	return false
}

// SnippetRenderer draws Go source as a highlighted markdown code block.
type SnippetRenderer struct {
	style string
	width int

	once sync.Once
	tr   *glamour.TermRenderer
	err  error
}

// NewSnippetRenderer returns a renderer for style. An empty style means auto.
func NewSnippetRenderer(style string, width int) *SnippetRenderer {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = StyleAuto
	}
	if width <= 0 {
		width = defaultWrapWidth
	}
	return &SnippetRenderer{style: style, width: width}
}

// Style reports the configured style.
func (s *SnippetRenderer) Style() string {
	return s.style
}

// Render returns the snippet ready for printing, ending with a newline.
func (s *SnippetRenderer) Render(code string) (string, error) {
	code = strings.Trim(code, "\n")
	if s.style == StylePlain {
		return code + "\n\n", nil
	}
	s.once.Do(func() {
		s.tr, s.err = glamour.NewTermRenderer(s.styleOption(), glamour.WithWordWrap(s.width))
	})
	if s.err != nil {
		return "", errors.Wrapf(s.err, "create %s snippet renderer", s.style)
	}
	out, err := s.tr.Render("```go\n" + code + "\n```\n")
	if err != nil {
		return "", errors.Wrap(err, "render snippet")
	}
	return out, nil
}

func (s *SnippetRenderer) styleOption() glamour.TermRendererOption {
	if s.style == StyleAuto {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(s.style)
}
