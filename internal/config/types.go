package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest precedence first.
	Files []string
}

// Default values.
const (
	DefaultFileName        = ".tasklist"
	DefaultPriority        = "min"
	DefaultColor           = ColorAuto
	DefaultDateFormat      = "Mon, 02 Jan 2006 15:04:05 MST"
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "text"
	DefaultConfigName      = "tasklist.toml"
	DefaultUserConfigDir   = "tasklist"
	DefaultProjectConfig   = "tasklist.toml"
	DefaultProjectConfigRC = ".tasklist.toml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the full configuration for tasklist.
type Config struct {
	// FileName is the task list file name searched for from the working directory upward.
	FileName string `toml:"file_name"`

	// DefaultPriority is used by add when -p is not given.
	DefaultPriority string `toml:"default_priority"`

	// Output
	Color      string `toml:"color"`
	DateFormat string `toml:"date_format"`

	// AssumeYes answers yes to confirmation prompts.
	AssumeYes bool `toml:"assume_yes"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// WorkDir is the working directory (computed)
	WorkDir string `toml:"-"`

	// Warnings collected while loading, such as unknown keys in config files.
	Warnings []string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"file_name",
		"default_priority",
		"color",
		"date_format",
		"assume_yes",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}
