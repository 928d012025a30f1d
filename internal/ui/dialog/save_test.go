package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompt struct {
	shown []string
	done  func(path string, err error)
}

func (f *fakePrompt) Show(_ context.Context, initialDir, name string, done func(path string, err error)) {
	f.shown = append(f.shown, initialDir+"/"+name)
	f.done = done
}

func (f *fakePrompt) respond(path string, err error) {
	done := f.done
	f.done = nil
	done(path, err)
}

func TestSaveDialog_PassesChoiceThrough(t *testing.T) {
	prompt := &fakePrompt{}
	d := NewSaveDialog(prompt)

	var got string
	d.PickSavePath(context.Background(), "/home/u/Downloads", "a.pdf", func(path string, err error) {
		require.NoError(t, err)
		got = path
	})

	assert.Equal(t, []string{"/home/u/Downloads/a.pdf"}, prompt.shown)
	prompt.respond("/home/u/Downloads/a.pdf", nil)
	assert.Equal(t, "/home/u/Downloads/a.pdf", got)
}

func TestSaveDialog_QueuesWhileOpen(t *testing.T) {
	prompt := &fakePrompt{}
	d := NewSaveDialog(prompt)

	var results []string
	record := func(path string, _ error) { results = append(results, path) }

	d.PickSavePath(context.Background(), "/d", "one.zip", record)
	d.PickSavePath(context.Background(), "/d", "two.zip", record)

	require.Len(t, prompt.shown, 1, "second request waits")

	prompt.respond("", nil)
	require.Len(t, prompt.shown, 2, "second dialog opens after the first closes")
	assert.Equal(t, "/d/two.zip", prompt.shown[1])

	prompt.respond("/d/two.zip", nil)
	assert.Equal(t, []string{"", "/d/two.zip"}, results)

	d.PickSavePath(context.Background(), "/d", "three.zip", record)
	assert.Len(t, prompt.shown, 3, "idle dialog opens immediately")
}

func TestSaveDialog_PropagatesError(t *testing.T) {
	prompt := &fakePrompt{}
	d := NewSaveDialog(prompt)

	var gotErr error
	d.PickSavePath(context.Background(), "", "x", func(_ string, err error) { gotErr = err })
	prompt.respond("", errors.New("portal unavailable"))

	assert.EqualError(t, gotErr, "portal unavailable")
}

func TestSaveDialog_NoPromptCancels(t *testing.T) {
	d := NewSaveDialog(nil)

	called := 0
	d.PickSavePath(context.Background(), "", "x", func(path string, err error) {
		called++
		assert.Empty(t, path)
		assert.NoError(t, err)
	})
	d.PickSavePath(context.Background(), "", "y", func(string, error) { called++ })

	assert.Equal(t, 2, called)
}
