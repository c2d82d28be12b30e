package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("writes through to the system clipboard", func(t *testing.T) {
		t.Parallel()

		var written string
		c := &Clipboard{writeAll: func(text string) error {
			written = text
			return nil
		}}

		require.NoError(t, c.WriteText("{\n  \"a\": 1\n}"))
		assert.Equal(t, "{\n  \"a\": 1\n}", written)
	})

	t.Run("reports unsupported platform", func(t *testing.T) {
		t.Parallel()

		c := &Clipboard{unsupported: true, writeAll: func(string) error {
			t.Error("unexpected write")
			return nil
		}}

		assert.ErrorIs(t, c.WriteText("x"), ErrUnsupported)
	})

	t.Run("propagates write failure", func(t *testing.T) {
		t.Parallel()

		c := &Clipboard{writeAll: func(string) error {
			return errors.New("exit status 1")
		}}

		assert.EqualError(t, c.WriteText("x"), "exit status 1")
	})
}
