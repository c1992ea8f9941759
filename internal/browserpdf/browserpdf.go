// Package browserpdf prints the HTML preview of a resume to PDF with headless Chrome.
// Output follows the browser's layout engine and is not byte-stable across runs.
package browserpdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

// A4 in inches
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// DefaultTimeout bounds a single print including browser start-up
const DefaultTimeout = 60 * time.Second

// Renderer drives a headless Chrome instance per call
type Renderer struct {
	chromePath string
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithChromePath sets the Chrome or Chromium binary. Empty means chromedp's lookup.
func WithChromePath(path string) Option {
	return func(r *Renderer) { r.chromePath = path }
}

// WithTimeout sets the per-print timeout
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer
func New(opts ...Option) *Renderer {
	r := &Renderer{timeout: DefaultTimeout, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render composes the snapshot with the configured template and prints its HTML preview.
func (r *Renderer) Render(ctx context.Context, snapshot *types.ProfileSnapshot, cfg *types.StyleConfig) ([]byte, error) {
	html, err := rendering.RenderHTML(snapshot, cfg)
	if err != nil {
		return nil, err
	}
	return r.PrintHTML(ctx, html)
}

// PrintHTML loads a standalone HTML page and prints it to an A4 PDF with backgrounds.
func (r *Renderer) PrintHTML(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-engine-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write HTML: %w", err)
	}

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &rendering.RenderError{Message: "browser print failed", Cause: err}
	}

	r.logger.Debug("printed HTML with chrome", "bytes", len(pdf), "duration", time.Since(start))
	return pdf, nil
}
