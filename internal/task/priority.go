package task

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Sentinel tokens used by the textual form of a priority.
const (
	MaxToken = "max"
	MinToken = "min"
)

var (
	// ErrPriorityTooLarge is returned when a numeric priority overflows.
	ErrPriorityTooLarge = errors.New("the number is too big, you might want to use 'max' instead")
	// ErrInvalidPriority is returned for anything that is neither a sentinel nor a whole number.
	ErrInvalidPriority = errors.New("expected 'min', 'max' or a whole number")
)

// Kind identifies which variant a Priority holds.
type Kind uint8

const (
	// KindMin is the lowest possible priority. It is the zero value.
	KindMin Kind = iota
	// KindValue is a numeric priority.
	KindValue
	// KindMax is the highest possible priority.
	KindMax
)

// Priority is a totally ordered priority tag.
// The zero value is Min.
type Priority struct {
	kind  Kind
	value int
}

// Min returns the lowest priority.
func Min() Priority {
	return Priority{kind: KindMin}
}

// Max returns the highest priority.
func Max() Priority {
	return Priority{kind: KindMax}
}

// Value returns a numeric priority. Negative numbers are clamped to zero.
func Value(n int) Priority {
	if n < 0 {
		n = 0
	}
	return Priority{kind: KindValue, value: n}
}

// Compare returns -1, 0 or +1 depending on whether p is lower than, equal
// to, or higher than q.
func (p Priority) Compare(q Priority) int {
	switch {
	case p.kind < q.kind:
		return -1
	case p.kind > q.kind:
		return 1
	case p.kind != KindValue:
		return 0
	case p.value < q.value:
		return -1
	case p.value > q.value:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before q.
func (p Priority) Less(q Priority) bool {
	return p.Compare(q) < 0
}

// Equal reports whether p and q are the same priority.
func (p Priority) Equal(q Priority) bool {
	return p.Compare(q) == 0
}

// String returns "max", "min" or the decimal numeral.
func (p Priority) String() string {
	switch p.kind {
	case KindMax:
		return MaxToken
	case KindValue:
		return strconv.Itoa(p.value)
	default:
		return MinToken
	}
}

// ParsePriority parses the textual form produced by String.
// Surrounding whitespace is ignored.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	switch s {
	case MaxToken:
		return Max(), nil
	case MinToken:
		return Min(), nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Priority{}, ErrPriorityTooLarge
		}
		return Priority{}, ErrInvalidPriority
	}
	if n > math.MaxInt {
		return Priority{}, ErrPriorityTooLarge
	}
	return Value(int(n)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
