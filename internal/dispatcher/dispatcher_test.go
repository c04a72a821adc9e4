package dispatcher

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/atomicstack/quirks/internal/command"
	"github.com/atomicstack/quirks/internal/menu"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	prompt string
	items  []menu.Item
}

// scriptedSelector answers prompts from a fixed script and records them.
type scriptedSelector struct {
	t       *testing.T
	answers []menu.Selection
	errs    map[int]error
	calls   []call
	onCall  func(n int)
}

func (s *scriptedSelector) Select(prompt string, items []menu.Item) (menu.Selection, error) {
	n := len(s.calls)
	s.calls = append(s.calls, call{prompt: prompt, items: items})
	if s.onCall != nil {
		s.onCall(n)
	}
	if err := s.errs[n]; err != nil {
		return menu.Cancelled, err
	}
	if len(items) == 0 {
		return menu.Cancelled, nil
	}
	if n >= len(s.answers) {
		s.t.Fatalf("unexpected prompt %d %q", n, prompt)
	}
	return s.answers[n], nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, syscall.EIO }

func recordingEntry(label string, ran *[]string) menu.Entry {
	return menu.Entry{Label: label, Action: menu.ActionFunc(func() error {
		*ran = append(*ran, label)
		return nil
	})}
}

func TestDispatchInvokesChosenEntry(t *testing.T) {
	var ran []string
	sel := &scriptedSelector{t: t, answers: []menu.Selection{menu.Chosen(1)}}
	var out bytes.Buffer
	d := New(sel, &out, command.New())

	got, err := d.Dispatch(SubPrompt, []menu.Entry{recordingEntry("a", &ran), recordingEntry("b", &ran)})
	require.NoError(t, err)
	assert.Equal(t, menu.Chosen(1), got)
	assert.Equal(t, []string{"b"}, ran)
	assert.Empty(t, out.String())
	require.Len(t, sel.calls, 1)
	assert.Equal(t, SubPrompt, sel.calls[0].prompt)
	assert.Equal(t, []menu.Item{{Label: "a"}, {Label: "b"}}, sel.calls[0].items)
}

func TestDispatchCancelPrintsNotice(t *testing.T) {
	var ran []string
	sel := &scriptedSelector{t: t, answers: []menu.Selection{menu.Cancelled}}
	var out bytes.Buffer
	d := New(sel, &out, nil)

	got, err := d.Dispatch(SubPrompt, []menu.Entry{recordingEntry("a", &ran)})
	require.NoError(t, err)
	assert.False(t, got.OK)
	assert.Empty(t, ran)
	assert.Equal(t, NothingSelected+"\n", out.String())
}

func TestDispatchCancelReportsNoticeWriteError(t *testing.T) {
	sel := &scriptedSelector{t: t, answers: []menu.Selection{menu.Cancelled}}
	got, err := New(sel, failingWriter{}, nil).Dispatch(SubPrompt, []menu.Entry{{Label: "a"}})
	assert.ErrorIs(t, err, syscall.EIO)
	assert.False(t, got.OK)
}

func TestDispatchEmptyListIsCancelled(t *testing.T) {
	sel := &scriptedSelector{t: t}
	var out bytes.Buffer
	got, err := New(sel, &out, nil).Dispatch(SubPrompt, nil)
	require.NoError(t, err)
	assert.Equal(t, menu.Cancelled, got)
	assert.Equal(t, NothingSelected+"\n", out.String())
}

func TestDispatchPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	sel := &scriptedSelector{t: t, answers: []menu.Selection{menu.Chosen(0)}}
	d := New(sel, &bytes.Buffer{}, nil)
	_, err := d.Dispatch(SubPrompt, []menu.Entry{{Label: "fails", Action: menu.ActionFunc(func() error { return boom })}})
	assert.ErrorIs(t, err, boom)

	sel = &scriptedSelector{t: t, errs: map[int]error{0: boom}}
	_, err = New(sel, &bytes.Buffer{}, nil).Dispatch(SubPrompt, []menu.Entry{{Label: "a"}})
	assert.ErrorIs(t, err, boom)
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	sel := &scriptedSelector{t: t, answers: []menu.Selection{menu.Chosen(3)}}
	_, err := New(sel, &bytes.Buffer{}, nil).Select(SubPrompt, []menu.Entry{{Label: "a"}})
	assert.Error(t, err)
}

func TestSubmenuAddsBlankLineAfterRun(t *testing.T) {
	var ran []string
	cat := &menu.Category{ID: "sort", Label: "Sort", Entries: []menu.Entry{recordingEntry("Sort int", &ran)}}
	sel := &scriptedSelector{t: t, answers: []menu.Selection{menu.Chosen(0), menu.Cancelled}}
	var out bytes.Buffer
	entry := New(sel, &out, nil).Submenu(cat)

	assert.Equal(t, "sort", entry.ID)
	assert.Equal(t, "Sort", entry.Label)
	require.NoError(t, entry.Action.Invoke())
	assert.Equal(t, "\n", out.String())
	assert.Equal(t, []string{"Sort int"}, ran)

	out.Reset()
	require.NoError(t, entry.Action.Invoke())
	assert.Equal(t, NothingSelected+"\n", out.String())
}
