package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidOrdinal is returned when an ordinal does not address a task.
	ErrInvalidOrdinal = errors.New("invalid task ID")
	// ErrOrdinalSyntax is returned when an ordinal argument is not a non-zero whole number.
	ErrOrdinalSyntax = errors.New("expected a non-zero whole number")
	// ErrOrdinalTooLarge is returned when an ordinal argument overflows.
	ErrOrdinalTooLarge = errors.New("the number is too big to be a valid ID")
)

// OrdinalError reports an ordinal outside 1..Max.
type OrdinalError struct {
	Ordinal int
	Max     int
}

func (e *OrdinalError) Error() string {
	return fmt.Sprintf("invalid value '%d' for '<TASK_ID>': expected a value less than or equal to %d", e.Ordinal, e.Max)
}

// Unwrap returns ErrInvalidOrdinal.
func (e *OrdinalError) Unwrap() error {
	return ErrInvalidOrdinal
}

// ParseOrdinal parses a task ID argument. Surrounding whitespace is ignored.
func ParseOrdinal(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, strconv.IntSize-1)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrOrdinalTooLarge
		}
		return 0, ErrOrdinalSyntax
	}
	if n == 0 {
		return 0, ErrOrdinalSyntax
	}
	return int(n), nil
}
