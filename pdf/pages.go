// Package pdf inspects PDF documents locally using github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fwojciec/pdfx"
	"github.com/ledongthuc/pdf"
)

// Ensure PageCounter implements pdfx.PageCounter at compile time.
var _ pdfx.PageCounter = (*PageCounter)(nil)

// PageCounter reads the page count from a PDF's document catalog.
type PageCounter struct{}

// NewPageCounter creates a new PageCounter.
func NewPageCounter() *PageCounter {
	return &PageCounter{}
}

// CountPages returns the number of pages in f. Files that would fail
// upload validation are not read.
func (c *PageCounter) CountPages(f *pdfx.File) (n int, err error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	if f.Open == nil {
		return 0, fmt.Errorf("file %q has no content", f.Name)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, pdfx.MaxFileSize+1))
	if err != nil {
		return 0, err
	}

	// The parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}
