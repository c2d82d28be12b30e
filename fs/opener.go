// Package fs provides access to local files for upload and for saving results.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/fwojciec/pdfx"
	"github.com/gabriel-vasile/mimetype"
)

// Ensure Opener implements pdfx.FileOpener at compile time.
var _ pdfx.FileOpener = (*Opener)(nil)

// Opener resolves local paths to pdfx.File handles. The media type is
// sniffed from the file content rather than taken from the extension.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile stats the file at path and detects its media type.
// The returned File reopens path each time its content is read.
func (o *Opener) OpenFile(path string) (*pdfx.File, error) {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, pdfx.Errorf(pdfx.EINVALID, "file %q not found", path)
	} else if err != nil {
		return nil, pdfx.WrapError(pdfx.EINVALID, "cannot read file", err)
	}
	if info.IsDir() {
		return nil, pdfx.Errorf(pdfx.EINVALID, "%q is a directory", path)
	}

	mediaType, err := detectMediaType(path)
	if err != nil {
		return nil, pdfx.WrapError(pdfx.EINVALID, "cannot read file", err)
	}

	return &pdfx.File{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Size:      info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// detectMediaType returns the bare media type of the file, without parameters.
func detectMediaType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}

	mediaType, _, err := mime.ParseMediaType(mtype.String())
	if err != nil {
		return mtype.String(), nil
	}
	return mediaType, nil
}
