// Package clipboard provides a pdfx.Clipboard backed by the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/pdfx"
)

// Ensure Clipboard implements pdfx.Clipboard at compile time.
var _ pdfx.Clipboard = (*Clipboard)(nil)

// ErrUnsupported is returned when no clipboard utility is available,
// e.g. on a headless Linux machine without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Clipboard writes to the system clipboard.
type Clipboard struct {
	unsupported bool
	writeAll    func(text string) error
}

// NewClipboard creates a new Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{
		unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
	}
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	if c.unsupported {
		return ErrUnsupported
	}
	return c.writeAll(text)
}
