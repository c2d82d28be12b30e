// Package term provides a line-oriented terminal implementation of pdfx.View.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/pdfx"
)

// Ensure View implements pdfx.View at compile time.
var _ pdfx.View = (*View)(nil)

// View writes progress and errors to stderr and results to stdout, so the
// JSON output can be piped. Lines cannot be taken back, so hiding is a no-op.
type View struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	quiet  bool
}

// Option configures a View.
type Option func(*View)

// WithQuiet suppresses progress and informational lines. Errors and
// results are still written.
func WithQuiet(quiet bool) Option {
	return func(v *View) {
		v.quiet = quiet
	}
}

// NewView creates a new View.
func NewView(stdout, stderr io.Writer, opts ...Option) *View {
	v := &View{stdout: stdout, stderr: stderr}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ShowLoading prints a progress line for region.
func (v *View) ShowLoading(region pdfx.Region) {
	switch region {
	case pdfx.RegionUpload:
		v.info("Uploading...")
	case pdfx.RegionExtract:
		v.info("Extracting data...")
	}
}

// HideLoading is a no-op; a printed line cannot be taken back.
func (v *View) HideLoading(pdfx.Region) {}

// ShowError prints message to stderr. It is written even in quiet mode.
func (v *View) ShowError(_ pdfx.Region, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.stderr, "error: %s\n", message)
}

// HideError is a no-op; a printed line cannot be taken back.
func (v *View) HideError(pdfx.Region) {}

// ShowFile prints a summary line such as "File: report.pdf (2 MB, 3 pages)".
func (v *View) ShowFile(f *pdfx.File) {
	summary := pdfx.FormatFileSize(f.Size)
	switch {
	case f.Pages == 1:
		summary += ", 1 page"
	case f.Pages > 1:
		summary += fmt.Sprintf(", %d pages", f.Pages)
	}
	v.info(fmt.Sprintf("File: %s (%s)", f.Name, summary))
}

// ShowResult prints the rendered result to stdout.
func (v *View) ShowResult(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.stdout, text)
}

// ShowCopied confirms a clipboard copy.
func (v *View) ShowCopied() {
	v.info("Copied!")
}

// Reset is a no-op. Earlier output stays on the terminal.
func (v *View) Reset() {}

func (v *View) info(line string) {
	if v.quiet {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.stderr, line)
}
