package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/pages"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger; --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level, string(cfg.LogFormat))
}

// newFetcher reads resources from data_url when set, otherwise from data_dir.
func newFetcher(cfg *config.Config) loader.Fetcher {
	if cfg.DataURL != "" {
		return loader.NewHTTPFetcher(cfg.DataURL, nil)
	}
	return loader.NewFSFetcher(cfg.DataDir)
}

// newEnv assembles the page environment shared by every command.
func newEnv(cfg *config.Config, logger *zap.Logger) pages.Env {
	return pages.Env{
		Fetcher:          newFetcher(cfg),
		DeadlineSoonDays: cfg.DeadlineSoonDays,
		Concurrency:      cfg.FetchConcurrency,
		Logger:           logger,
	}
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
