package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// dataMarkers are the page resources that identify a data directory.
var dataMarkers = []string{
	"content.json",
	"conferences.json",
	"students.json",
	"teaching.json",
	"projects/projects.json",
}

// detectDataDir checks the usual places for a directory holding page data.
func detectDataDir() (dir string, found int) {
	for _, candidate := range []string{"data", ".", "site/data", "public/data"} {
		n := 0
		for _, marker := range dataMarkers {
			if _, err := os.Stat(filepath.Join(candidate, marker)); err == nil {
				n++
			}
		}
		if n > 0 {
			return candidate, n
		}
	}
	return "data", 0
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	dataDir, found := detectDataDir()
	if found > 0 {
		fmt.Printf("Found %d of %d page resources in %s\n\n", found, len(dataMarkers), dataDir)
	}

	// 1. Titles.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: "Academic Portfolio",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	ownerPrompt := promptui.Prompt{
		Label: "Owner name (shown in the header)",
	}
	owner, err := ownerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}

	// 2. Data source.
	sourcePrompt := promptui.Select{
		Label: "Where is the page data?",
		Items: []string{"local directory", "remote URL"},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}

	var dataURL string
	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:   "Data directory",
			Default: dataDir,
		}
		if dataDir, err = dirPrompt.Run(); err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Data base URL",
			Validate: func(s string) error {
				c := Config{DataURL: s}
				return c.validateDataURL()
			},
		}
		if dataURL, err = urlPrompt.Run(); err != nil {
			return nil, fmt.Errorf("data url: %w", err)
		}
		dataDir = ""
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: "public",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Extra static excludes.
	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	exclude := DefaultStaticExclude
	if excludeStr != "" {
		exclude = append(append([]string{}, exclude...), splitAndTrim(excludeStr)...)
	}

	// 5. Deadline threshold.
	soonPrompt := promptui.Prompt{
		Label:   "Flag conference deadlines closing within (days)",
		Default: "30",
		Validate: func(s string) error {
			if n, err := strconv.Atoi(s); err != nil || n < 1 {
				return fmt.Errorf("enter a positive number of days")
			}
			return nil
		},
	}
	soonStr, err := soonPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("deadline days: %w", err)
	}
	soon, _ := strconv.Atoi(soonStr)

	cfg := DefaultConfig()
	cfg.SiteTitle = title
	cfg.Owner = owner
	cfg.DataDir = dataDir
	cfg.DataURL = dataURL
	cfg.OutputDir = outputDir
	cfg.StaticExclude = exclude
	cfg.DeadlineSoonDays = soon

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(FileName); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", FileName)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
