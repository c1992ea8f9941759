package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-engine/internal/browserpdf"
	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

// Output formats and PDF engines
const (
	formatPDF    = "pdf"
	formatHTML   = "html"
	engineNative = "native"
	engineChrome = "chrome"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to PDF or HTML",
	Long: `Renders a profile snapshot with a style config. With --all-templates, --out is a
directory and one file per template is written concurrently.`,
	RunE: runRender,
}

var (
	renderSnapshotFile string
	renderStyleFile    string
	renderOutput       string
	renderTemplate     string
	renderFormat       string
	renderEngine       string
	renderAll          bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderSnapshotFile, "snapshot", "s", "", "Path to profile snapshot (JSON or YAML)")
	renderCmd.Flags().StringVar(&renderStyleFile, "style", "", "Path to style config (JSON or YAML); defaults to style_path from config")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file, or directory with --all-templates")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template override: harvard, modern or classic")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatPDF, "Output format: pdf or html")
	renderCmd.Flags().StringVar(&renderEngine, "engine", engineNative, "PDF engine: native or chrome")
	renderCmd.Flags().BoolVar(&renderAll, "all-templates", false, "Render every template into the --out directory")

	_ = renderCmd.MarkFlagRequired("snapshot")
	_ = renderCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(renderCmd)
}

// renderOptions holds everything one render invocation needs
type renderOptions struct {
	SnapshotPath string
	StylePath    string
	OutPath      string
	Template     types.TemplateID
	Format       string
	Engine       string
	AllTemplates bool
	ChromePath   string
}

func (o renderOptions) validate() error {
	switch o.Format {
	case formatPDF, formatHTML:
	default:
		return fmt.Errorf("unsupported format %q (want pdf or html)", o.Format)
	}
	switch o.Engine {
	case engineNative:
	case engineChrome:
		if o.Format != formatPDF {
			return fmt.Errorf("--engine chrome only produces pdf")
		}
	default:
		return fmt.Errorf("unsupported engine %q (want native or chrome)", o.Engine)
	}
	if o.AllTemplates && o.Template != "" {
		return fmt.Errorf("cannot use --template with --all-templates")
	}
	return nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	stylePath := renderStyleFile
	if stylePath == "" {
		stylePath = appConfig.StylePath
	}

	summaries, err := renderFiles(cmd.Context(), renderOptions{
		SnapshotPath: renderSnapshotFile,
		StylePath:    stylePath,
		OutPath:      renderOutput,
		Template:     types.TemplateID(renderTemplate),
		Format:       renderFormat,
		Engine:       renderEngine,
		AllTemplates: renderAll,
		ChromePath:   appConfig.ChromePath,
	})
	if err != nil {
		return err
	}

	if appConfig.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRender(summaries)
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", s.Path, s.Bytes)
	}
	return nil
}

type renderJob struct {
	template types.TemplateID
	path     string
}

// renderFiles loads the inputs once and writes one file per job. Files are replaced atomically.
func renderFiles(ctx context.Context, opts renderOptions) ([]observability.RenderSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	snapshot, err := config.LoadProfileSnapshot(opts.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	style := types.DefaultStyleConfig()
	if opts.StylePath != "" {
		loaded, err := config.LoadStyleConfig(opts.StylePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load style: %w", err)
		}
		style = *loaded
	}
	if opts.Template != "" {
		style.Template = opts.Template
	}

	if appConfig.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSnapshot(snapshot)
		printer.PrintStyle(&style)
	}

	jobs := []renderJob{{template: style.Template, path: opts.OutPath}}
	if opts.AllTemplates {
		if err := os.MkdirAll(opts.OutPath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		jobs = jobs[:0]
		for _, id := range types.TemplateIDs {
			jobs = append(jobs, renderJob{template: id, path: filepath.Join(opts.OutPath, string(id)+"."+opts.Format)})
		}
	}

	var chrome *browserpdf.Renderer
	if opts.Engine == engineChrome {
		chrome = browserpdf.New(browserpdf.WithChromePath(opts.ChromePath), browserpdf.WithLogger(logger))
	}

	summaries := make([]observability.RenderSummary, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		g.Go(func() error {
			cfg := style
			cfg.Template = job.template

			start := time.Now()
			data, err := produce(ctx, chrome, opts.Format, snapshot, &cfg)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", job.template, err)
			}
			if err := atomic.WriteFile(job.path, bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to write %s: %w", job.path, err)
			}

			summaries[i] = observability.RenderSummary{
				Template: job.template,
				Format:   opts.Format,
				Engine:   opts.Engine,
				Path:     job.path,
				Bytes:    len(data),
				Duration: time.Since(start),
			}
			logger.Debug("rendered resume", "template", job.template, "path", job.path, "bytes", len(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// produce renders one output. A nil chrome renderer selects the native PDF writer.
func produce(ctx context.Context, chrome *browserpdf.Renderer, format string, snapshot *types.ProfileSnapshot, cfg *types.StyleConfig) ([]byte, error) {
	switch {
	case format == formatHTML:
		return rendering.RenderHTML(snapshot, cfg)
	case chrome != nil:
		return chrome.Render(ctx, snapshot, cfg)
	default:
		return rendering.Render(snapshot, cfg)
	}
}
