package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/pdfx"
	"github.com/fwojciec/pdfx/fs"
	"github.com/fwojciec/pdfx/term"
	"github.com/fwojciec/pdfx/ui"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	view := term.NewView(deps.Stdout, deps.Stderr, term.WithQuiet(c.Quiet))
	ctrl := ui.NewController(deps.Service, view, deps.Clipboard,
		ui.WithLogger(deps.Logger),
		ui.WithExtractOptions(pdfx.ExtractOptions{DocumentType: c.DocumentType}),
	)
	defer ctrl.Reset()

	// Best-effort; a failure is only logged.
	probeCtx, cancelProbe := context.WithCancel(deps.Ctx)
	probe := ctrl.HealthProbe(probeCtx)
	defer func() {
		cancelProbe()
		<-probe
	}()

	f, err := deps.Files.OpenFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfx.ErrorMessage(err))
		return err
	}

	if deps.Pages != nil {
		if n, err := deps.Pages.CountPages(f); err == nil {
			f.Pages = n
		} else {
			deps.Logger.Debug("page count unavailable", "file", f.Name, "err", err)
		}
	}

	if err := ctrl.Upload(deps.Ctx, f); err != nil {
		return err
	}

	if c.Output != "" {
		if err := fs.WriteResult(c.Output, ctrl.Output()); err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", c.Output, err)
			return err
		}
	}

	if c.Copy {
		return ctrl.CopyResult()
	}
	return nil
}
