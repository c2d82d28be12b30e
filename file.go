package pdfx

import "io"

// MediaTypePDF is the only media type accepted for upload.
const MediaTypePDF = "application/pdf"

// MaxFileSize is the largest file accepted for upload (10 MiB).
const MaxFileSize = 10 * 1024 * 1024

// File is a handle to a file selected for upload.
type File struct {
	Name      string `json:"name"`
	MediaType string `json:"mediaType"`
	Size      int64  `json:"size"`

	// Pages is the page count when known, zero otherwise.
	Pages int `json:"pages,omitempty"`

	// Open returns a reader for the file content. It is not called until
	// the file has passed validation.
	Open func() (io.ReadCloser, error) `json:"-"`
}

// Validate returns an error if the file cannot be uploaded.
func (f *File) Validate() error {
	if f.MediaType != MediaTypePDF {
		return Errorf(EINVALID, "Please select a valid PDF file")
	}
	if f.Size > MaxFileSize {
		return Errorf(EINVALID, "File size exceeds the 10MB limit")
	}
	return nil
}

// FileOpener resolves a path to a File handle.
type FileOpener interface {
	// OpenFile stats the file and determines its media type.
	// Returns EINVALID if the path does not name a readable regular file.
	OpenFile(path string) (*File, error)
}

// PageCounter counts the pages of a PDF file.
type PageCounter interface {
	CountPages(f *File) (int, error)
}
