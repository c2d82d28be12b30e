package pdfx

import (
	"context"
	"encoding/json"
)

// UploadResult is the server's acknowledgement of an uploaded file.
type UploadResult struct {
	FileID    string `json:"file_id"`
	FileName  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
}

// ExtractOptions configures a single extraction request.
type ExtractOptions struct {
	// DocumentType is an optional hint such as "invoice" or "receipt".
	DocumentType string `json:"document_type,omitempty"`
}

// ExtractionService is the remote upload/extract API.
type ExtractionService interface {
	// Upload sends the file content to the server.
	// Returns EUPLOAD with the server-provided message on failure.
	Upload(ctx context.Context, f *File) (*UploadResult, error)

	// Extract converts a previously uploaded file into structured data.
	// The returned payload is the server's JSON body, unmodified.
	// Returns EEXTRACT with the server-provided message on failure.
	Extract(ctx context.Context, fileID string, opts ExtractOptions) (json.RawMessage, error)

	// Health checks whether the server is reachable.
	Health(ctx context.Context) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}
