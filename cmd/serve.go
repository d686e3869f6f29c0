package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/metrics"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with the live pages API",
	Long: `Builds the static site, then serves it together with the pages API:
JSON state and HTML fragments under /api/pages, live websocket sessions,
health and Prometheus metrics. With --watch the site is rebuilt whenever the
data or static directories change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the config port)")
	serveCmd.Flags().Bool("watch", false, "rebuild the site when data files change")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-build", false, "serve the existing output directory without building")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	gen := newGenerator(cfg, logger, progress.Nop())
	rebuild := func(ctx context.Context) {
		res, err := gen.Generate(ctx)
		m.ObserveBuild(err)
		if err != nil {
			logger.Error("site build failed", zap.Error(err))
			return
		}
		logger.Info("site built",
			zap.Int("pages", res.Pages),
			zap.Int("project_pages", res.DetailPages),
			zap.Strings("failed", res.Failed))
	}

	if noBuild, _ := cmd.Flags().GetBool("no-build"); !noBuild {
		rebuild(ctx)
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		SiteDir:  cfg.OutputDir,
		AllowAll: cfg.AllowAllOrigins,
		Env:      newEnv(cfg, logger),
	}, logger, m)

	if w, _ := cmd.Flags().GetBool("watch"); w {
		if cfg.DataURL != "" {
			logger.Warn("--watch ignored: data is fetched from data_url")
		} else {
			watcher := &watch.Watcher{
				Dirs:   []string{cfg.DataDir, cfg.StaticDir},
				Logger: logger,
				OnChange: func(ctx context.Context, paths []string) {
					logger.Info("change detected, rebuilding", zap.Strings("paths", paths))
					rebuild(ctx)
				},
			}
			go func() {
				if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("watcher stopped", zap.Error(err))
				}
			}()
		}
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "folio %s serving %s at %s (Ctrl+C to stop)\n", Version, cfg.OutputDir, url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
