package config

import (
	"flag"
)

// parseFlags defines the global flags on fs, parses args and applies the
// flags that were set explicitly.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasklist", flag.ContinueOnError)
	}

	var (
		fileName      string
		color         string
		dateFormat    string
		assumeYes     bool
		logLevel      string
		logFormat     string
		logTimestamps bool
		logCaller     bool
		debug         bool
	)

	fs.StringVar(&fileName, "file", cfg.FileName, "Task list file name")
	fs.StringVar(&color, "color", cfg.Color, "Color output (auto, always, never)")
	fs.StringVar(&dateFormat, "date-format", cfg.DateFormat, "Go time layout for creation dates")
	fs.BoolVar(&assumeYes, "y", cfg.AssumeYes, "Answer yes to confirmation prompts")
	fs.BoolVar(&assumeYes, "yes", cfg.AssumeYes, "Answer yes to confirmation prompts")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&logCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
	fs.BoolVar(&debug, "debug", false, "Shorthand for -log-level debug")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Map flag names to source field names
	flagToSource := map[string]string{
		"file":           "file_name",
		"color":          "color",
		"date-format":    "date_format",
		"y":              "assume_yes",
		"yes":            "assume_yes",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
		"debug":          "log_level",
	}

	flagSet := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		flagSet[f.Name] = true
		if sources == nil {
			return
		}
		if fieldName, ok := flagToSource[f.Name]; ok {
			sources[fieldName] = SourceFlag
		}
	})

	if flagSet["file"] {
		cfg.FileName = fileName
	}
	if flagSet["color"] {
		cfg.Color = color
	}
	if flagSet["date-format"] {
		cfg.DateFormat = dateFormat
	}
	if flagSet["y"] || flagSet["yes"] {
		cfg.AssumeYes = assumeYes
	}
	if flagSet["log-level"] {
		cfg.LogLevel = logLevel
	}
	if flagSet["log-format"] {
		cfg.LogFormat = logFormat
	}
	if flagSet["log-timestamps"] {
		cfg.LogTimestamps = logTimestamps
	}
	if flagSet["log-caller"] {
		cfg.LogCaller = logCaller
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	return nil
}
