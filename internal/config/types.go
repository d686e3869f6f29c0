package config

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	SiteTitle string `yaml:"site_title" koanf:"site_title"`
	Owner     string `yaml:"owner" koanf:"owner"`

	// DataDir holds the page JSON resources. DataURL, when set, is fetched
	// over HTTP instead.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`
	DataURL string `yaml:"data_url" koanf:"data_url"`

	OutputDir     string   `yaml:"output_dir" koanf:"output_dir"`
	StaticDir     string   `yaml:"static_dir" koanf:"static_dir"`
	StaticInclude []string `yaml:"static_include" koanf:"static_include"`
	StaticExclude []string `yaml:"static_exclude" koanf:"static_exclude"`

	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	DeadlineSoonDays int `yaml:"deadline_soon_days" koanf:"deadline_soon_days"`
	FetchConcurrency int `yaml:"fetch_concurrency" koanf:"fetch_concurrency"`

	LogLevel  string    `yaml:"log_level" koanf:"log_level"`
	LogFormat LogFormat `yaml:"log_format" koanf:"log_format"`
}
