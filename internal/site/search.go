package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ziadkadry99/folio/internal/pages"
)

// maxContent caps the searchable text stored per entry.
const maxContent = 2000

// SearchEntry represents a single searchable record of the site.
type SearchEntry struct {
	Page    string `json:"page"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex turns the records of one page into search entries.
func BuildSearchIndex(page pages.Page, entries []pages.Entry) []SearchEntry {
	out := make([]SearchEntry, 0, len(entries))
	for _, e := range entries {
		content := strings.Join(strings.Fields(e.Content), " ")
		if len(content) > maxContent {
			content = truncate(content, maxContent)
		}
		title := e.Title
		if title == "" {
			title = e.ID
		}
		out = append(out, SearchEntry{
			Page:    page.Title,
			Path:    e.Path,
			Title:   title,
			Summary: e.Summary,
			Content: content,
		})
	}
	return out
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	for n > 0 && n < len(s) && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	if entries == nil {
		entries = []SearchEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
