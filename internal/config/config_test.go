package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.DeadlineSoonDays != 30 {
		t.Errorf("expected default deadline_soon_days 30, got %d", cfg.DeadlineSoonDays)
	}
	if cfg.FetchConcurrency != 4 {
		t.Errorf("expected default fetch_concurrency 4, got %d", cfg.FetchConcurrency)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.SiteTitle = "Research Group"
	original.Owner = "Dr. Jane Doe"
	original.DataDir = "site/data"
	original.StaticInclude = []string{"css/**", "img/*.png"}
	original.Port = 9000
	original.LogFormat = LogFormatJSON

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteTitle != original.SiteTitle {
		t.Errorf("site_title: got %q, want %q", loaded.SiteTitle, original.SiteTitle)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.LogFormat != LogFormatJSON {
		t.Errorf("log_format: got %q, want json", loaded.LogFormat)
	}
	if len(loaded.StaticInclude) != len(original.StaticInclude) {
		t.Fatalf("static_include length: got %d, want %d", len(loaded.StaticInclude), len(original.StaticInclude))
	}
	for i, v := range loaded.StaticInclude {
		if v != original.StaticInclude[i] {
			t.Errorf("static_include[%d]: got %q, want %q", i, v, original.StaticInclude[i])
		}
	}
	if got := loaded.Title(); got != "Dr. Jane Doe | Research Group" {
		t.Errorf("Title() = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_DATA_URL", "https://example.org/data")
	t.Setenv("FOLIO_DEADLINE_SOON_DAYS", "14")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataURL != "https://example.org/data" {
		t.Errorf("env override failed: got %q", loaded.DataURL)
	}
	if loaded.DeadlineSoonDays != 14 {
		t.Errorf("deadline_soon_days: got %d, want 14", loaded.DeadlineSoonDays)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"remote data only", func(c *Config) { c.DataDir = ""; c.DataURL = "https://example.org/data" }, false},
		{"no data source", func(c *Config) { c.DataDir = "" }, true},
		{"relative data url", func(c *Config) { c.DataURL = "data/" }, true},
		{"ftp data url", func(c *Config) { c.DataURL = "ftp://example.org" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"zero deadline days", func(c *Config) { c.DeadlineSoonDays = 0 }, true},
		{"negative concurrency", func(c *Config) { c.FetchConcurrency = -1 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"upper-case log level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"bad log format", func(c *Config) { c.LogFormat = "logfmt" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.map", []string{"**/*.map"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestDetectDataDir(t *testing.T) {
	t.Chdir(t.TempDir())
	if dir, n := detectDataDir(); dir != "data" || n != 0 {
		t.Errorf("detectDataDir() = %q, %d; want data, 0", dir, n)
	}
}
