package term_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/pdfx"
	"github.com/fwojciec/pdfx/term"
	"github.com/stretchr/testify/assert"
)

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("writes result to stdout and progress to stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		v := term.NewView(&stdout, &stderr)

		v.ShowLoading(pdfx.RegionUpload)
		v.ShowFile(&pdfx.File{Name: "report.pdf", Size: 2 * 1024 * 1024, Pages: 3})
		v.ShowLoading(pdfx.RegionExtract)
		v.ShowResult("{\n  \"invoice_total\": 42.5\n}")
		v.ShowCopied()

		assert.Equal(t, "{\n  \"invoice_total\": 42.5\n}\n", stdout.String())
		assert.Equal(t, "Uploading...\nFile: report.pdf (2 MB, 3 pages)\nExtracting data...\nCopied!\n", stderr.String())
	})

	t.Run("omits unknown page count", func(t *testing.T) {
		t.Parallel()

		var stderr bytes.Buffer
		v := term.NewView(&bytes.Buffer{}, &stderr)

		v.ShowFile(&pdfx.File{Name: "a.pdf", Size: 1536})
		v.ShowFile(&pdfx.File{Name: "b.pdf", Size: 500, Pages: 1})

		assert.Equal(t, "File: a.pdf (1.5 KB)\nFile: b.pdf (500 Bytes, 1 page)\n", stderr.String())
	})

	t.Run("prefixes errors", func(t *testing.T) {
		t.Parallel()

		var stderr bytes.Buffer
		v := term.NewView(&bytes.Buffer{}, &stderr)

		v.ShowError(pdfx.RegionExtract, "parser timeout")
		v.HideError(pdfx.RegionExtract)
		v.Reset()

		assert.Equal(t, "error: parser timeout\n", stderr.String())
	})

	t.Run("quiet keeps errors and results only", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		v := term.NewView(&stdout, &stderr, term.WithQuiet(true))

		v.ShowLoading(pdfx.RegionUpload)
		v.ShowFile(&pdfx.File{Name: "report.pdf", Size: 10})
		v.ShowError(pdfx.RegionUpload, "Failed to upload file")
		v.ShowResult("{}")

		assert.Equal(t, "{}\n", stdout.String())
		assert.Equal(t, "error: Failed to upload file\n", stderr.String())
	})

	t.Run("hiding and reset write nothing", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		v := term.NewView(&stdout, &stderr)

		v.HideLoading(pdfx.RegionUpload)
		v.HideError(pdfx.RegionUpload)
		v.HideLoading(pdfx.RegionExtract)
		v.HideError(pdfx.RegionExtract)
		v.Reset()

		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})
}
