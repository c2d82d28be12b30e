// Package ui mediates between user actions, the extraction API and a View.
package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/pdfx"
)

// DefaultErrorDismiss is how long an error stays on screen.
const DefaultErrorDismiss = 8 * time.Second

// Controller drives a single upload/extract session and reflects its
// progress into a View. It is safe for concurrent use.
//
// A new Upload or a Reset supersedes any operation still in flight: the
// older operation's context is canceled and its result is discarded.
type Controller struct {
	service   pdfx.ExtractionService
	view      pdfx.View
	clipboard pdfx.Clipboard
	logger    *slog.Logger
	dismiss   time.Duration
	opts      pdfx.ExtractOptions

	mu      sync.Mutex
	session pdfx.Session
	output  string
	gen     uint64
	cancel  context.CancelFunc
	timers  map[pdfx.Region]*time.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to discarding all output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithErrorDismiss sets how long errors are displayed before being hidden.
// Defaults to DefaultErrorDismiss.
func WithErrorDismiss(d time.Duration) Option {
	return func(c *Controller) {
		c.dismiss = d
	}
}

// WithExtractOptions sets the options sent with every extraction request.
func WithExtractOptions(opts pdfx.ExtractOptions) Option {
	return func(c *Controller) {
		c.opts = opts
	}
}

// NewController creates a Controller. clipboard may be nil, in which
// case CopyResult always fails.
func NewController(service pdfx.ExtractionService, view pdfx.View, clipboard pdfx.Clipboard, opts ...Option) *Controller {
	c := &Controller{
		service:   service,
		view:      view,
		clipboard: clipboard,
		logger:    slog.New(slog.DiscardHandler),
		dismiss:   DefaultErrorDismiss,
		timers:    make(map[pdfx.Region]*time.Timer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a copy of the current session.
func (c *Controller) Session() pdfx.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// State returns the current session state.
func (c *Controller) State() pdfx.State {
	return c.Session().State
}

// Output returns the rendered extraction result, or "" if there is none.
func (c *Controller) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output
}

// Upload validates f, uploads it and, on success, immediately extracts it.
// Validation failures make no network call. Any error is shown in the View
// and returned.
func (c *Controller) Upload(ctx context.Context, f *pdfx.File) error {
	if err := f.Validate(); err != nil {
		c.mu.Lock()
		c.showErrorLocked(pdfx.RegionUpload, err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.resetLocked()
	gen, ctx := c.beginLocked(ctx)
	c.transitionLocked(pdfx.StateUploading)
	c.view.ShowLoading(pdfx.RegionUpload)
	c.mu.Unlock()

	result, err := c.service.Upload(ctx, f)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return errSuperseded()
	}
	c.view.HideLoading(pdfx.RegionUpload)
	if err != nil {
		c.cancelLocked()
		c.transitionLocked(pdfx.StateIdle)
		c.showErrorLocked(pdfx.RegionUpload, err)
		c.mu.Unlock()
		return err
	}

	c.session.FileID = result.FileID
	c.session.FileName = f.Name
	c.session.FileSize = f.Size
	c.view.ShowFile(f)

	// Extraction starts before the lock is released so nothing can slip
	// in between the upload response and the extract request.
	fileID, err := c.startExtractLocked()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runExtract(ctx, gen, fileID)
}

// Extract requests extraction for the uploaded file and renders the result.
// Returns ESTATE if no file has been uploaded.
func (c *Controller) Extract(ctx context.Context) error {
	c.mu.Lock()
	if c.session.FileID == "" {
		err := pdfx.Errorf(pdfx.ESTATE, "No file has been uploaded")
		c.showErrorLocked(pdfx.RegionExtract, err)
		c.mu.Unlock()
		return err
	}

	if c.session.State == pdfx.StateExtracting {
		c.transitionLocked(pdfx.StateIdle)
	}
	gen, ctx := c.beginLocked(ctx)
	fileID, err := c.startExtractLocked()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runExtract(ctx, gen, fileID)
}

// startExtractLocked moves the session into StateExtracting and returns
// the file ID to extract.
func (c *Controller) startExtractLocked() (string, error) {
	from := c.session.State
	if err := c.session.Transition(pdfx.StateExtracting); err != nil {
		c.cancelLocked()
		c.showErrorLocked(pdfx.RegionExtract, err)
		return "", err
	}
	c.logger.Debug("state", "from", from, "to", pdfx.StateExtracting)

	c.output = ""
	c.hideErrorLocked(pdfx.RegionExtract)
	c.view.ShowLoading(pdfx.RegionExtract)
	return c.session.FileID, nil
}

func (c *Controller) runExtract(ctx context.Context, gen uint64, fileID string) error {
	payload, err := c.service.Extract(ctx, fileID, c.opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return errSuperseded()
	}
	c.cancelLocked()
	c.view.HideLoading(pdfx.RegionExtract)

	var text string
	if err == nil {
		text, err = pdfx.FormatJSON(payload)
		if err != nil {
			err = pdfx.WrapError(pdfx.EEXTRACT, "Failed to extract data", err)
		}
	}
	if err != nil {
		c.transitionLocked(pdfx.StateIdle)
		c.showErrorLocked(pdfx.RegionExtract, err)
		return err
	}

	c.output = text
	c.transitionLocked(pdfx.StateDone)
	c.view.ShowResult(text)
	return nil
}

// Reset cancels any operation in flight, clears the session and restores
// the initial View. It is safe to call in any state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.cancelLocked()
	c.gen++
	for region, t := range c.timers {
		t.Stop()
		delete(c.timers, region)
	}
	c.session.Clear()
	c.output = ""
	c.view.Reset()
}

// CopyResult copies the rendered result to the clipboard.
// Returns ESTATE if nothing has been rendered and ECLIPBOARD if the
// clipboard rejects the write.
func (c *Controller) CopyResult() error {
	c.mu.Lock()
	text := c.output
	if text == "" {
		err := pdfx.Errorf(pdfx.ESTATE, "No result to copy")
		c.showErrorLocked(pdfx.RegionExtract, err)
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	var err error
	if c.clipboard == nil {
		err = pdfx.Errorf(pdfx.ECLIPBOARD, "Failed to copy to clipboard")
	} else if werr := c.clipboard.WriteText(text); werr != nil {
		err = pdfx.WrapError(pdfx.ECLIPBOARD, "Failed to copy to clipboard", werr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.showErrorLocked(pdfx.RegionExtract, err)
		return err
	}
	c.view.ShowCopied()
	return nil
}

// HealthProbe checks API reachability in the background. Failures are
// logged and never shown in the View; a probe stopped by canceling ctx is
// not a failure. The returned channel is closed when the probe finishes.
func (c *Controller) HealthProbe(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.service.Health(ctx); err != nil && ctx.Err() == nil {
			c.logger.Warn("Could not connect to the API. Please ensure the API server is running.", "err", err)
		}
	}()
	return done
}

// beginLocked supersedes the operation in flight and returns the
// generation and context for a new one.
func (c *Controller) beginLocked(parent context.Context) (uint64, context.Context) {
	c.cancelLocked()
	c.gen++
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	return c.gen, ctx
}

func (c *Controller) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// transitionLocked applies a transition the caller knows to be legal.
func (c *Controller) transitionLocked(to pdfx.State) {
	from := c.session.State
	if err := c.session.Transition(to); err != nil {
		c.logger.Error("illegal transition", "from", from, "to", to, "err", err)
		return
	}
	c.logger.Debug("state", "from", from, "to", to)
}

// showErrorLocked displays err in region and schedules its dismissal.
// A newer error in the same region replaces the pending dismissal.
func (c *Controller) showErrorLocked(region pdfx.Region, err error) {
	c.logger.Debug("error shown", "region", region, "err", err)
	c.view.ShowError(region, pdfx.ErrorMessage(err))

	if t := c.timers[region]; t != nil {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(c.dismiss, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.timers[region] != t {
			return
		}
		delete(c.timers, region)
		c.view.HideError(region)
	})
	c.timers[region] = t
}

func (c *Controller) hideErrorLocked(region pdfx.Region) {
	if t := c.timers[region]; t != nil {
		t.Stop()
		delete(c.timers, region)
	}
	c.view.HideError(region)
}

func errSuperseded() error {
	return pdfx.Errorf(pdfx.ECANCELED, "Operation canceled")
}
