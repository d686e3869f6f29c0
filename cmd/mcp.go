package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/folio/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list the portfolio pages and select their records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Stdout carries the protocol; the logger writes to stderr.
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		mcpserver.Version = Version

		source := cfg.DataDir
		if cfg.DataURL != "" {
			source = cfg.DataURL
		}
		fmt.Fprintf(os.Stderr, "folio MCP server started on stdio (data=%s)\n", source)

		srv := mcpserver.NewServer(newEnv(cfg, logger), logger)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
