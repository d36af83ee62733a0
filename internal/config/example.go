package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by TASKLIST_* environment variables or CLI flags.

# Name of the task list file, searched for from the working directory upward
file_name = ".tasklist"

# Priority used by "add" when -p is not given: min, max or a whole number
default_priority = "min"

# Color output: auto, always or never (NO_COLOR is honored)
color = "auto"

# Go time layout used by "info" for creation dates
date_format = "Mon, 02 Jan 2006 15:04:05 MST"

# Skip the overwrite confirmation of "init"
assume_yes = false

# Diagnostics on stderr
log_level = "warn"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
