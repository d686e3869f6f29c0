package config

// FileName is the default config file in the working directory.
const FileName = ".folio.yml"

// DefaultStaticInclude are the asset globs copied into the built site.
var DefaultStaticInclude = []string{
	"css/**",
	"js/**",
	"images/**",
	"fonts/**",
	"*.ico",
}

// DefaultStaticExclude are asset globs never copied.
var DefaultStaticExclude = []string{
	"**/.DS_Store",
	"**/*.psd",
	"**/*.map",
	"**/.*.swp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:        "Academic Portfolio",
		DataDir:          "data",
		OutputDir:        "public",
		StaticDir:        "static",
		StaticInclude:    DefaultStaticInclude,
		StaticExclude:    DefaultStaticExclude,
		Port:             8080,
		DeadlineSoonDays: 30,
		FetchConcurrency: 4,
		LogLevel:         "info",
		LogFormat:        LogFormatConsole,
	}
}
