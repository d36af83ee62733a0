package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from TASKLIST_* environment variables.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TASKLIST_FILE"); v != "" {
		cfg.FileName = v
		setEnv("file_name")
	}
	if v := os.Getenv("TASKLIST_DEFAULT_PRIORITY"); v != "" {
		cfg.DefaultPriority = v
		setEnv("default_priority")
	}
	if v := os.Getenv("TASKLIST_COLOR"); v != "" {
		cfg.Color = v
		setEnv("color")
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok && os.Getenv("TASKLIST_COLOR") == "" {
		cfg.Color = ColorNever
		setEnv("color")
	}
	if v := os.Getenv("TASKLIST_DATE_FORMAT"); v != "" {
		cfg.DateFormat = v
		setEnv("date_format")
	}
	if v := os.Getenv("TASKLIST_ASSUME_YES"); v != "" {
		cfg.AssumeYes = boolFromString(v)
		setEnv("assume_yes")
	}

	// Logging configuration
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("TASKLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("TASKLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
