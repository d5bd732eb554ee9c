// Package config provides configuration loading and management.
package config

// DefaultAuthor is the author stamped into licenses and package metadata
// when no override is configured.
const DefaultAuthor = "Jeremy"

// LogSettings holds logging-related configuration.
type LogSettings struct {
	// Timestamps controls timestamp reporting. Nil means default (true).
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config is the user configuration for the scaffolding CLI.
type Config struct {
	// Author is the name stamped into LICENSE files and package metadata.
	Author string `mapstructure:"author"`

	// BasePath is the default base path used when --path is omitted.
	BasePath string `mapstructure:"basePath"`

	// Log holds logging settings.
	Log LogSettings `mapstructure:"log"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Author == "" {
		out.Author = DefaultAuthor
	}
	return &out
}
