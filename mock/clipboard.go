package mock

import "github.com/fwojciec/pdfx"

var _ pdfx.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of pdfx.Clipboard.
type Clipboard struct {
	WriteTextFn func(text string) error
}

func (c *Clipboard) WriteText(text string) error {
	return c.WriteTextFn(text)
}
