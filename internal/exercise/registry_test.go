package exercise

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(s string) Func {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s+"\n")
		return err
	}
}

//
// -----------------------------------------------------------------------------
// Handle / Names
// -----------------------------------------------------------------------------

// TestRegistry_NamesInOrder verifies Names follows registration order and is a copy.
func TestRegistry_NamesInOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Handle("b", write("b")).Handle("a", write("a"))
	names := r.Names()
	require.Equal(t, []string{"b", "a"}, names)

	names[0] = "changed"
	assert.Equal(t, []string{"b", "a"}, r.Names())
}

// TestRegistry_DuplicatePanics verifies a second registration under one name panics.
func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Handle("a", write("a"))
	assert.Panics(t, func() { r.Handle("a", write("again")) })
	assert.Panics(t, func() { r.Handle("nil", nil) })
}

//
// -----------------------------------------------------------------------------
// Run
// -----------------------------------------------------------------------------

// TestRegistry_RunUnknown verifies unknown names wrap ErrUnknownExercise.
func TestRegistry_RunUnknown(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Run("missing", io.Discard)
	require.ErrorIs(t, err, ErrUnknownExercise)
}

// TestRegistry_RunAll verifies every exercise runs, separated by blank lines.
func TestRegistry_RunAll(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Handle("one", write("1")).Handle("two", write("2"))

	var buf bytes.Buffer
	require.NoError(t, r.RunAll(&buf))
	assert.Equal(t, "1\n\n2\n", buf.String())
}

// TestRegistry_RunSelected verifies the caller's order wins and empty means all.
func TestRegistry_RunSelected(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Handle("one", write("1")).Handle("two", write("2"))

	var buf bytes.Buffer
	require.NoError(t, r.RunSelected([]string{"two", "one"}, &buf))
	assert.Equal(t, "2\n\n1\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RunSelected(nil, &buf))
	assert.Equal(t, "1\n\n2\n", buf.String())
}

// TestRegistry_RunSelectedUnknownFirst verifies a bad name fails before any output.
func TestRegistry_RunSelectedUnknownFirst(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Handle("one", write("1"))

	var buf bytes.Buffer
	err := r.RunSelected([]string{"one", "typo"}, &buf)
	require.ErrorIs(t, err, ErrUnknownExercise)
	assert.Empty(t, buf.String())
}

// TestRegistry_StopsAtFirstFailure verifies later exercises do not run.
func TestRegistry_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ran := false

	r := NewRegistry().
		Handle("fail", func(io.Writer) error { return boom }).
		Handle("after", func(io.Writer) error { ran = true; return nil })

	err := r.RunAll(io.Discard)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "exercise fail")
	assert.False(t, ran)
}
