package pdfx_test

import (
	"testing"

	"github.com/fwojciec/pdfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    pdfx.File
		wantErr string
	}{
		{
			name: "accepts pdf under the limit",
			file: pdfx.File{Name: "report.pdf", MediaType: pdfx.MediaTypePDF, Size: 2 * 1024 * 1024},
		},
		{
			name: "accepts pdf exactly at the limit",
			file: pdfx.File{Name: "big.pdf", MediaType: pdfx.MediaTypePDF, Size: pdfx.MaxFileSize},
		},
		{
			name:    "rejects png",
			file:    pdfx.File{Name: "photo.png", MediaType: "image/png", Size: 1024},
			wantErr: "Please select a valid PDF file",
		},
		{
			name:    "rejects missing media type",
			file:    pdfx.File{Name: "unknown", Size: 1024},
			wantErr: "Please select a valid PDF file",
		},
		{
			name:    "rejects pdf over the limit",
			file:    pdfx.File{Name: "huge.pdf", MediaType: pdfx.MediaTypePDF, Size: 12 * 1024 * 1024},
			wantErr: "File size exceeds the 10MB limit",
		},
		{
			name:    "rejects one byte over the limit",
			file:    pdfx.File{Name: "huge.pdf", MediaType: pdfx.MediaTypePDF, Size: pdfx.MaxFileSize + 1},
			wantErr: "File size exceeds the 10MB limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.file.Validate()

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, pdfx.EINVALID, pdfx.ErrorCode(err))
			assert.Equal(t, tt.wantErr, pdfx.ErrorMessage(err))
		})
	}
}
