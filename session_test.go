package pdfx_test

import (
	"testing"

	"github.com/fwojciec/pdfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := [][2]pdfx.State{
		{pdfx.StateIdle, pdfx.StateUploading},
		{pdfx.StateUploading, pdfx.StateExtracting},
		{pdfx.StateUploading, pdfx.StateIdle},
		{pdfx.StateExtracting, pdfx.StateDone},
		{pdfx.StateExtracting, pdfx.StateIdle},
		{pdfx.StateDone, pdfx.StateIdle},
	}
	for _, tr := range allowed {
		assert.True(t, pdfx.CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]pdfx.State{
		{pdfx.StateIdle, pdfx.StateDone},
		{pdfx.StateUploading, pdfx.StateDone},
		{pdfx.StateUploading, pdfx.StateUploading},
		{pdfx.StateDone, pdfx.StateUploading},
		{pdfx.StateExtracting, pdfx.StateUploading},
	}
	for _, tr := range denied {
		assert.False(t, pdfx.CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestSession_Transition(t *testing.T) {
	t.Parallel()

	t.Run("walks the happy path", func(t *testing.T) {
		t.Parallel()

		var s pdfx.Session
		require.NoError(t, s.Transition(pdfx.StateUploading))
		s.FileID = "abc123"
		require.NoError(t, s.Transition(pdfx.StateExtracting))
		require.NoError(t, s.Transition(pdfx.StateDone))
		require.NoError(t, s.Transition(pdfx.StateIdle))
		assert.Equal(t, pdfx.StateIdle, s.State)
	})

	t.Run("rejects illegal move", func(t *testing.T) {
		t.Parallel()

		var s pdfx.Session
		err := s.Transition(pdfx.StateDone)

		assert.Equal(t, pdfx.ESTATE, pdfx.ErrorCode(err))
		assert.Equal(t, pdfx.StateIdle, s.State)
	})

	t.Run("extracting requires a file id", func(t *testing.T) {
		t.Parallel()

		var s pdfx.Session
		err := s.Transition(pdfx.StateExtracting)

		assert.Equal(t, pdfx.ESTATE, pdfx.ErrorCode(err))
		assert.Equal(t, "No file has been uploaded", pdfx.ErrorMessage(err))
	})
}

func TestSession_Clear(t *testing.T) {
	t.Parallel()

	s := pdfx.Session{State: pdfx.StateDone, FileID: "abc123", FileName: "report.pdf", FileSize: 42}
	s.Clear()
	s.Clear()

	assert.Equal(t, pdfx.Session{}, s)
	assert.Equal(t, "idle", s.State.String())
}
