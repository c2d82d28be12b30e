package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	main "github.com/fwojciec/pdfx/cmd/pdfx"
	"github.com/fwojciec/pdfx/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints ok when reachable", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Service: &mock.ExtractionService{
				HealthFn: func(ctx context.Context) error {
					return nil
				},
			},
		}

		cmd := &main.HealthCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "ok\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("reports unreachable API", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			APIURL: "http://localhost:9",
			Service: &mock.ExtractionService{
				HealthFn: func(ctx context.Context) error {
					return errors.New("connection refused")
				},
			},
		}

		cmd := &main.HealthCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "http://localhost:9 is unreachable: connection refused")
		assert.Contains(t, stderr.String(), "PDFX_API_URL")
	})
}
