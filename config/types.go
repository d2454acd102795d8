package config

// Config represents the complete configuration structure
type Config struct {
	Holodex HolodexConfig `mapstructure:"holodex"`
	Presets PresetConfig  `mapstructure:"presets"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// HolodexConfig holds Holodex API connection details
type HolodexConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `mapstructure:"timeout_seconds"`
	// Orgs are the default organizations for the live command.
	Orgs []string `mapstructure:"orgs"`
}

// PresetConfig maps preset names to filter expressions
type PresetConfig map[string]string

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
