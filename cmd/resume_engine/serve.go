package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/db"
	"github.com/jonathan/resume-engine/internal/server"
	"github.com/jonathan/resume-engine/internal/server/ratelimit"
)

var (
	servePort        int
	serveDatabaseURL string
	serveStyleFile   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that renders resumes on request. With a database URL the
per-user profile endpoints are backed by PostgreSQL; without one they answer 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or 8080)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL URL (default DATABASE_URL)")
	serveCmd.Flags().StringVar(&serveStyleFile, "style", "", "Default style config for requests without one")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDatabaseURL != "" {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if serveStyleFile != "" {
		cfg.StylePath = serveStyleFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := server.Options{
		Config:  cfg,
		Logger:  logger,
		Limiter: ratelimit.NewLimiter(ratelimit.NewConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)),
	}

	if cfg.StylePath != "" {
		style, err := config.LoadStyleConfig(cfg.StylePath)
		if err != nil {
			return fmt.Errorf("failed to load default style: %w", err)
		}
		opts.DefaultStyle = style
		logger.Info("default style loaded", "path", cfg.StylePath, "template", style.Template)
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		opts.Store = database
		logger.Info("profile store connected")
	} else {
		logger.Warn("no database configured, profile endpoints are disabled")
	}

	return server.New(opts).Start(ctx)
}

var _ server.ProfileStore = (*db.DB)(nil)

