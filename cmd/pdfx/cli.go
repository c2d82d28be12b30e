package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pdfx"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	APIURL    string
	Service   pdfx.ExtractionService
	Files     pdfx.FileOpener
	Pages     pdfx.PageCounter
	Clipboard pdfx.Clipboard
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL  string        `name:"api-url" env:"PDFX_API_URL" default:"http://localhost:8000" help:"Base URL of the extraction API"`
	Timeout time.Duration `env:"PDFX_TIMEOUT" default:"0s" help:"Per-request timeout (0 leaves it to the HTTP client)"`
	Verbose bool          `short:"v" help:"Log requests and state changes"`

	Extract ExtractCmd `cmd:"" help:"Upload a PDF and print the extracted data"`
	Health  HealthCmd  `cmd:"" help:"Check that the extraction API is reachable"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File         string `arg:"" help:"PDF file to upload"`
	Output       string `short:"o" help:"Also write the result to this file"`
	Copy         bool   `short:"c" help:"Copy the result to the clipboard"`
	DocumentType string `short:"t" name:"document-type" help:"Document type hint, e.g. invoice"`
	Quiet        bool   `short:"q" help:"Only print the result and errors"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}
