package task

import (
	"strings"
	"time"
	"unicode"
)

// Task is a single entry of a task list.
type Task struct {
	Priority Priority
	Message  string
	// CreatedOn is zero for tasks written without a timestamp.
	CreatedOn time.Time
}

// New creates a task with a sanitized message, stamped with now.
func New(priority Priority, message string, now time.Time) Task {
	return Task{
		Priority:  priority,
		Message:   SanitizeMessage(message),
		CreatedOn: now,
	}
}

// HasCreatedOn reports whether the creation time is known.
func (t Task) HasCreatedOn() bool {
	return !t.CreatedOn.IsZero()
}

// Equal reports whether two tasks hold the same priority, message and
// creation instant.
func (t Task) Equal(other Task) bool {
	return t.Priority.Equal(other.Priority) &&
		t.Message == other.Message &&
		t.CreatedOn.Equal(other.CreatedOn)
}

// SanitizeMessage replaces every control character, including the record
// and field separators of the task file, with a space.
func SanitizeMessage(message string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, message)
}
