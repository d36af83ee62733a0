package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// findProjectConfigFile looks for a config file in the given directory.
func findProjectConfigFile(dir string) string {
	names := []string{DefaultProjectConfig, DefaultProjectConfigRC}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// TASKLIST_CONFIG wins when set. Otherwise the OS-specific config directory
// is checked. The user directory must not share the task list file name.
func findUserConfigFile() string {
	if explicit := os.Getenv("TASKLIST_CONFIG"); explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, DefaultUserConfigDir, DefaultConfigName)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.FileName = DefaultFileName
	cfg.DefaultPriority = DefaultPriority
	cfg.Color = DefaultColor
	cfg.DateFormat = DefaultDateFormat
	cfg.AssumeYes = false
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
