// Package terminal owns the stdout side of the program: puzzle text, code
// snippets and results, plus the raw-key and line reads the puzzles need.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atomicstack/quirks/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const questionText = "What's the output of the following program?"

var (
	// ErrInterrupted is returned when ctrl+c is pressed while waiting for a key.
	ErrInterrupted = errors.New("interrupted while waiting for a key")
	// ErrNotInteractive is returned when stdin is not a terminal.
	ErrNotInteractive = errors.New("stdin is not a terminal")
)

// Config describes the streams and presentation of a Console.
type Config struct {
	In  io.Reader
	Out io.Writer
	// SnippetStyle selects how code is drawn: auto, dark, light, notty or plain.
	SnippetStyle string
	// WrapWidth limits snippet width. Zero picks the terminal width.
	WrapWidth int
}

// Console serialises writes to the output stream and reads from the input
// stream on behalf of puzzles.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	in       *bufio.Reader
	inFile   *os.File
	styles   theme.Output
	snippets *SnippetRenderer
}

// New builds a Console. Nil streams default to stdin and stdout.
func New(cfg Config) *Console {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:    out,
		in:     bufio.NewReader(in),
		styles: theme.NewOutput(lipgloss.NewRenderer(out)),
	}
	if f, ok := in.(*os.File); ok {
		c.inFile = f
	}
	width := cfg.WrapWidth
	if width <= 0 {
		width = outputWidth(out)
	}
	c.snippets = NewSnippetRenderer(cfg.SnippetStyle, width)
	return c
}

// Write implements io.Writer. It is safe for concurrent use.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// Printf formats to the output stream.
func (c *Console) Printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(c, format, args...)
	return errors.Wrap(err, "write output")
}

// Println writes its operands followed by a newline.
func (c *Console) Println(args ...interface{}) error {
	_, err := fmt.Fprintln(c, args...)
	return errors.Wrap(err, "write output")
}

// Question prints the puzzle header and the code snippet.
func (c *Console) Question(snippet string) error {
	rendered, err := c.snippets.Render(snippet)
	if err != nil {
		return err
	}
	if err := c.Println(c.styles.Question.Render(questionText)); err != nil {
		return err
	}
	if err := c.Println(); err != nil {
		return err
	}
	_, err = io.WriteString(c, rendered)
	return errors.Wrap(err, "write snippet")
}

// ReadLine reads up to and including the next newline. A final line without
// a newline is returned as is; an input that is already exhausted is an error.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", errors.Wrap(err, "read line")
	}
	return line, nil
}

// WaitKey blocks for a single key. On a terminal the key is read in raw mode
// so no enter is needed, and ctrl+c returns ErrInterrupted. Otherwise one
// byte is consumed from the input.
func (c *Console) WaitKey() error {
	if c.inFile != nil && c.in.Buffered() == 0 && IsTerminal(c.inFile) {
		return c.waitRawKey()
	}
	if _, err := c.in.ReadByte(); err != nil {
		return errors.Wrap(err, "read key")
	}
	return nil
}

func (c *Console) waitRawKey() error {
	fd := int(c.inFile.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "enter raw mode")
	}
	defer func() { _ = term.Restore(fd, state) }()
	var buf [1]byte
	if _, err := c.inFile.Read(buf[:]); err != nil {
		return errors.Wrap(err, "read key")
	}
	if buf[0] == 3 {
		return errors.WithStack(ErrInterrupted)
	}
	return nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// RequireInteractive fails with ErrNotInteractive unless f is a terminal.
func RequireInteractive(f *os.File) error {
	if !IsTerminal(f) {
		return errors.WithStack(ErrNotInteractive)
	}
	return nil
}

// StyleOutput points the default Lip Gloss renderer, which the menu styles
// use, at w so that colours follow that stream's capabilities.
func StyleOutput(w io.Writer) {
	output := termenv.NewOutput(w)
	r := lipgloss.DefaultRenderer()
	r.SetOutput(output)
	r.SetColorProfile(output.ColorProfile())
}

func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWrapWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWrapWidth
	}
	return width
}

// Bold renders s in the emphasis style.
func (c *Console) Bold(s string) string {
	return c.styles.Emphasis.Render(s)
}

// Good renders s in the success style.
func (c *Console) Good(s string) string {
	return c.styles.Success.Render(s)
}

// Bad renders s in the failure style.
func (c *Console) Bad(s string) string {
	return c.styles.Failure.Render(s)
}
