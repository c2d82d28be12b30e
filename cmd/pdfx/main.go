package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pdfx"
	"github.com/fwojciec/pdfx/clipboard"
	"github.com/fwojciec/pdfx/fs"
	pdfxhttp "github.com/fwojciec/pdfx/http"
	"github.com/fwojciec/pdfx/pdf"
	pdfxslog "github.com/fwojciec/pdfx/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Nil fields are wired with defaults.
	Service   pdfx.ExtractionService
	Clipboard pdfx.Clipboard
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdfx"),
		kong.Description("Extract structured data from PDF files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdfx --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	service := m.Service
	if service == nil {
		service = pdfxhttp.NewClient(cli.APIURL, pdfxhttp.WithTimeout(cli.Timeout))
	}
	if cli.Verbose {
		service = pdfxslog.NewLoggingService(service, logger)
	}

	clip := m.Clipboard
	if clip == nil {
		clip = clipboard.NewClipboard()
	}

	deps.APIURL = cli.APIURL
	deps.Logger = logger
	deps.Service = service
	deps.Files = fs.NewOpener()
	deps.Pages = pdf.NewPageCounter()
	deps.Clipboard = clip

	return kongCtx.Run(deps)
}
