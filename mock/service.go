package mock

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/pdfx"
)

var _ pdfx.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of pdfx.ExtractionService.
type ExtractionService struct {
	UploadFn  func(ctx context.Context, f *pdfx.File) (*pdfx.UploadResult, error)
	ExtractFn func(ctx context.Context, fileID string, opts pdfx.ExtractOptions) (json.RawMessage, error)
	HealthFn  func(ctx context.Context) error
}

func (s *ExtractionService) Upload(ctx context.Context, f *pdfx.File) (*pdfx.UploadResult, error) {
	return s.UploadFn(ctx, f)
}

func (s *ExtractionService) Extract(ctx context.Context, fileID string, opts pdfx.ExtractOptions) (json.RawMessage, error) {
	return s.ExtractFn(ctx, fileID, opts)
}

func (s *ExtractionService) Health(ctx context.Context) error {
	return s.HealthFn(ctx)
}
