package terminal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"

	"github.com/atomicstack/quirks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(Config{In: strings.NewReader(input), Out: &out, SnippetStyle: StylePlain})
	return c, &out
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, syscall.EIO }

func TestQuestionPrintsHeaderAndSnippet(t *testing.T) {
	c, out := newPlainConsole("")
	require.NoError(t, c.Question("\nfunc main() {}\n"))
	assert.Equal(t, questionText+"\n\nfunc main() {}\n\n", testutil.StripANSI(out.String()))
}

func TestReadLineKeepsNewline(t *testing.T) {
	c, _ := newPlainConsole("2\nlast")
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "2\n", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.ReadLine()
	assert.Error(t, err)
}

func TestWaitKeyConsumesOneByteFromStream(t *testing.T) {
	c, _ := newPlainConsole("x2\n")
	require.NoError(t, c.WaitKey())
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "2\n", line)
}

func TestWaitKeyFailsOnExhaustedInput(t *testing.T) {
	c, _ := newPlainConsole("")
	assert.Error(t, c.WaitKey())
}

func TestConcurrentWritesStayWhole(t *testing.T) {
	c, out := newPlainConsole("")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, c.Printf("worker %d\n", i))
		}(i)
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		var n int
		_, err := fmt.Sscanf(line, "worker %d", &n)
		assert.NoError(t, err, "line %q", line)
	}
}

func TestStylesRenderPlainForBuffers(t *testing.T) {
	c, _ := newPlainConsole("")
	assert.Equal(t, "2", testutil.StripANSI(c.Good("2")))
	assert.Equal(t, "2", testutil.StripANSI(c.Bad("2")))
	assert.Equal(t, "1+1", testutil.StripANSI(c.Bold("1+1")))
}

func TestWritesReportOutputErrors(t *testing.T) {
	c := New(Config{In: strings.NewReader(""), Out: failingWriter{}, SnippetStyle: StylePlain})
	assert.ErrorIs(t, c.Println("x"), syscall.EIO)
	assert.ErrorIs(t, c.Printf("%d\n", 1), syscall.EIO)
	assert.ErrorIs(t, c.Question("package main"), syscall.EIO)
}

func TestRequireInteractiveRejectsFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	defer f.Close()

	assert.ErrorIs(t, RequireInteractive(f), ErrNotInteractive)
	assert.ErrorIs(t, RequireInteractive(nil), ErrNotInteractive)
	assert.False(t, IsTerminal(f))
}

func TestWaitKeyReadsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys")
	require.NoError(t, os.WriteFile(path, []byte("k"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	c := New(Config{In: f, Out: &bytes.Buffer{}, SnippetStyle: StylePlain})
	assert.NoError(t, c.WaitKey())
	assert.Error(t, c.WaitKey())
}
