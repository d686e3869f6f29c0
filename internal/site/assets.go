package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// copyMatching copies every file of srcDir matched by one of include and by
// none of exclude into dstDir, keeping relative paths. A missing srcDir
// copies nothing.
func copyMatching(srcDir, dstDir string, include, exclude []string) (int, error) {
	if _, err := os.Stat(srcDir); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	fsys := os.DirFS(srcDir)

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return 0, fmt.Errorf("invalid include pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return 0, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] && !excluded(m, exclude) {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	for _, rel := range files {
		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return 0, err
		}
		out := filepath.Join(dstDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return 0, err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}

func excluded(rel string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
