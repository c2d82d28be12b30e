// Package slog provides logging decorators for pdfx services.
package slog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fwojciec/pdfx"
)

// Ensure LoggingService implements pdfx.ExtractionService.
var _ pdfx.ExtractionService = (*LoggingService)(nil)

// LoggingService wraps an ExtractionService with debug logging.
type LoggingService struct {
	next   pdfx.ExtractionService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next pdfx.ExtractionService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Upload delegates to the wrapped service and logs the operation.
func (s *LoggingService) Upload(ctx context.Context, f *pdfx.File) (result *pdfx.UploadResult, err error) {
	defer func(begin time.Time) {
		var fileID string
		if result != nil {
			fileID = result.FileID
		}
		s.logger.Info("upload",
			"file", f.Name,
			"size", f.Size,
			"file_id", fileID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Upload(ctx, f)
}

// Extract delegates to the wrapped service and logs the operation.
func (s *LoggingService) Extract(ctx context.Context, fileID string, opts pdfx.ExtractOptions) (payload json.RawMessage, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract",
			"file_id", fileID,
			"document_type", opts.DocumentType,
			"bytes", len(payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Extract(ctx, fileID, opts)
}

// Health delegates to the wrapped service and logs the operation.
func (s *LoggingService) Health(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("health",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Health(ctx)
}
