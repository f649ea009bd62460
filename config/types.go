package config

// Config represents the complete configuration structure
type Config struct {
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OMDbConfig holds OMDb API connection details
type OMDbConfig struct {
	APIKey string `mapstructure:"api_key"`
	// TimeoutMS is the per-request deadline in milliseconds.
	TimeoutMS int `mapstructure:"timeout_ms"`
}

// FilterConfig contains the default filter expression and named presets
type FilterConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
