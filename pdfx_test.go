package pdfx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pdfx"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pdfx.Errorf(pdfx.EUPLOAD, "upload of %q failed", "report.pdf")

	assert.Equal(t, pdfx.EUPLOAD, pdfx.ErrorCode(err))
	assert.Equal(t, "upload of \"report.pdf\" failed", pdfx.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pdfx.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pdfx.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pdfx.EINTERNAL, pdfx.ErrorCode(err))
	assert.Equal(t, "Internal error.", pdfx.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := fmt.Errorf("running extract: %w", pdfx.WrapError(pdfx.EEXTRACT, "Failed to extract data", cause))

	assert.Equal(t, pdfx.EEXTRACT, pdfx.ErrorCode(err))
	assert.Equal(t, "Failed to extract data", pdfx.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
