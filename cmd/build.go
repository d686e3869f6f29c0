package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static portfolio site",
	Long: `Loads every page's data and writes the initial view of each page, one
detail page per project, a search index and the static assets to the output
directory. Pages whose data fails to load are written with an error notice.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("strict", false, "exit with an error when any page fails to load")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := newGenerator(cfg, logger, progress.NewReporter()).Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages, %d project pages, %d assets)\n",
		cfg.OutputDir, res.Pages, res.DetailPages, res.Assets)
	if len(res.Failed) > 0 {
		fmt.Printf("Pages with load errors: %s\n", strings.Join(res.Failed, ", "))
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return fmt.Errorf("%d page(s) failed to load", len(res.Failed))
		}
	}
	return nil
}

func newGenerator(cfg *config.Config, logger *zap.Logger, reporter progress.Reporter) *site.SiteGenerator {
	dataDir := cfg.DataDir
	if cfg.DataURL != "" {
		dataDir = ""
	}
	return &site.SiteGenerator{
		Env:           newEnv(cfg, logger),
		OutputDir:     cfg.OutputDir,
		SiteTitle:     cfg.Title(),
		DataDir:       dataDir,
		StaticDir:     cfg.StaticDir,
		StaticInclude: cfg.StaticInclude,
		StaticExclude: cfg.StaticExclude,
		Reporter:      reporter,
		Logger:        logger,
	}
}
