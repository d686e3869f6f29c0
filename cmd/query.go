package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/progress"
)

var queryCmd = &cobra.Command{
	Use:   "query [page]",
	Short: "Select records from one page from the command line",
	Long: `Loads one page, applies the primary filter, tags and search term exactly as
the site's controls would, and prints the visible records in display order.

Pages: home, projects, students, teaching, conferences.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: pages.Names(),
	RunE:      runQuery,
}

func init() {
	queryCmd.Flags().String("filter", "", "primary filter (default all)")
	queryCmd.Flags().StringSlice("tag", nil, "tag to require (repeatable)")
	queryCmd.Flags().String("search", "", "case-insensitive search term")
	queryCmd.Flags().Int("limit", 0, "maximum number of records to print")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("filter")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	search, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	p, err := pages.Lookup(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	env := newEnv(cfg, logger)
	if p.Name == "projects" && !jsonOutput {
		env.OnProgress = progress.ItemProgress(progress.NewReporter())
	}

	v, err := p.Open(context.Background(), env)
	if err != nil {
		return err
	}
	if err := interact.Replay(v, interact.QueryEvents(filter, tags, search)...); err != nil {
		return err
	}

	records := v.Visible()
	snap := v.Snapshot()
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	if jsonOutput {
		return printQueryJSON(snap, records)
	}
	if len(records) == 0 {
		fmt.Println("No results match the current filters.")
		return nil
	}
	printQueryTable(snap, records)
	return nil
}

type queryOutputJSON struct {
	State   collection.Snapshot `json:"state"`
	Records []pages.Entry       `json:"records"`
}

func printQueryJSON(snap collection.Snapshot, records []pages.Entry) error {
	if records == nil {
		records = []pages.Entry{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(queryOutputJSON{State: snap, Records: records})
}

func printQueryTable(snap collection.Snapshot, records []pages.Entry) {
	fmt.Printf("Showing %d of %d (filter: %s)\n\n", snap.Visible, snap.Total, snap.Primary)
	for i, e := range records {
		fmt.Printf("  %d. %s [%s]\n", i+1, e.Title, e.ID)
		if e.Summary != "" {
			fmt.Printf("     %s\n", truncate(e.Summary, 120))
		}
		if e.Path != "" {
			fmt.Printf("     %s\n", e.Path)
		}
		fmt.Println()
	}
}
