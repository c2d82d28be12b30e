package mock

import "github.com/fwojciec/pdfx"

var _ pdfx.FileOpener = (*FileOpener)(nil)

// FileOpener is a mock implementation of pdfx.FileOpener.
type FileOpener struct {
	OpenFileFn func(path string) (*pdfx.File, error)
}

func (o *FileOpener) OpenFile(path string) (*pdfx.File, error) {
	return o.OpenFileFn(path)
}

var _ pdfx.PageCounter = (*PageCounter)(nil)

// PageCounter is a mock implementation of pdfx.PageCounter.
type PageCounter struct {
	CountPagesFn func(f *pdfx.File) (int, error)
}

func (c *PageCounter) CountPages(f *pdfx.File) (int, error) {
	return c.CountPagesFn(f)
}
