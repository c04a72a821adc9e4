package terminal

import (
	"strings"
	"testing"

	"github.com/atomicstack/quirks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `package main

import "fmt"

func main() {
	fmt.Println("hi")
}`

func TestPlainSnippetIsVerbatim(t *testing.T) {
	r := NewSnippetRenderer(StylePlain, 0)
	out, err := r.Render("\n" + sample + "\n")
	require.NoError(t, err)
	assert.Equal(t, sample+"\n\n", out)
}

func TestNoTTYSnippetKeepsCode(t *testing.T) {
	r := NewSnippetRenderer(StyleNoTTY, 80)
	out, err := r.Render(sample)
	require.NoError(t, err)
	plain := testutil.StripANSI(out)
	assert.Contains(t, plain, "func main()")
	assert.Contains(t, plain, `fmt.Println("hi")`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestBlankStyleMeansAuto(t *testing.T) {
	assert.Equal(t, StyleAuto, NewSnippetRenderer("  ", 0).Style())
	assert.Equal(t, StyleDark, NewSnippetRenderer("Dark", 0).Style())
}

func TestValidSnippetStyle(t *testing.T) {
	for _, style := range SnippetStyles {
		assert.True(t, ValidSnippetStyle(style), style)
	}
	assert.False(t, ValidSnippetStyle("neon"))
}
