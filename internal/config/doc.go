// Package config resolves the settings of a tasklist run.
//
// The settings are few: file_name is the task list file looked up from the
// working directory upward, default_priority is what add uses without -p,
// date_format is the Go layout info prints creation dates with, and
// assume_yes skips the init overwrite question. color and the log_* keys
// shape output only.
//
// Later layers win: built-in defaults, the user file, the project file
// (tasklist.toml or .tasklist.toml in the working directory), TASKLIST_*
// variables and finally the global flags. LoadWithSources records which
// layer supplied every value so "tasklist config" can show it.
//
// The user file is tasklist/tasklist.toml under the OS config directory:
// $XDG_CONFIG_HOME or ~/.config on Linux and the BSDs,
// ~/Library/Application Support on macOS and %APPDATA% on Windows.
// TASKLIST_CONFIG names an explicit file and skips the search.
package config
