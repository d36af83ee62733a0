// Package codec reads and writes the delimited task list format.
//
// Each task is one record terminated by RecordSeparator. A record holds two
// or three fields joined by FieldSeparator:
//
//	<priority> US <message> [US <created_on>]
//
// created_on is RFC 3339 with nanoseconds and a zone offset. Messages never
// contain either separator (see task.SanitizeMessage), so every valid task
// list round-trips exactly.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nibzard/tasklist/internal/task"
)

const (
	// RecordSeparator terminates each record.
	RecordSeparator = '\n'
	// FieldSeparator is the ASCII unit separator.
	FieldSeparator = '\x1F'

	// TimeLayout is the layout of the created_on field.
	TimeLayout = time.RFC3339Nano
)

// ErrCorrupted is returned when the persisted data cannot be decoded.
var ErrCorrupted = errors.New("the task list file is corrupted")

// CorruptionError describes where decoding failed.
type CorruptionError struct {
	Record int // 1-based record number
	Reason string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s (record %d: %s)", ErrCorrupted, e.Record, e.Reason)
}

// Unwrap returns ErrCorrupted.
func (e *CorruptionError) Unwrap() error {
	return ErrCorrupted
}

// Encode serializes tasks in the order given.
func Encode(tasks []task.Task) []byte {
	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(EncodeRecord(t))
		buf.WriteByte(RecordSeparator)
	}
	return buf.Bytes()
}

// EncodeRecord serializes one task without the trailing record separator.
func EncodeRecord(t task.Task) string {
	var b strings.Builder
	b.WriteString(t.Priority.String())
	b.WriteByte(FieldSeparator)
	b.WriteString(t.Message)
	if t.HasCreatedOn() {
		b.WriteByte(FieldSeparator)
		b.WriteString(t.CreatedOn.Format(TimeLayout))
	}
	return b.String()
}

// Decode parses data into tasks, preserving file order.
// Any malformed record aborts the whole decode.
func Decode(data []byte) ([]task.Task, error) {
	text := string(data)
	text = strings.TrimSuffix(text, string(RecordSeparator))
	if text == "" {
		return []task.Task{}, nil
	}

	records := strings.Split(text, string(RecordSeparator))
	tasks := make([]task.Task, 0, len(records))
	for i, record := range records {
		// Hand edits may leave CRLF line endings behind.
		record = strings.TrimSuffix(record, "\r")
		t, err := DecodeRecord(record)
		if err != nil {
			var ce *CorruptionError
			if errors.As(err, &ce) {
				ce.Record = i + 1
			}
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// DecodeRecord parses a single record without its record separator.
func DecodeRecord(record string) (task.Task, error) {
	fields := strings.SplitN(record, string(FieldSeparator), 3)
	if len(fields) < 2 {
		return task.Task{}, &CorruptionError{Reason: "missing field separator"}
	}

	priority, err := task.ParsePriority(fields[0])
	if err != nil {
		return task.Task{}, &CorruptionError{Reason: fmt.Sprintf("bad priority %q", fields[0])}
	}

	t := task.Task{
		Priority: priority,
		Message:  fields[1],
	}

	if len(fields) == 3 {
		createdOn, err := time.Parse(TimeLayout, fields[2])
		if err != nil {
			return task.Task{}, &CorruptionError{Reason: fmt.Sprintf("bad timestamp %q", fields[2])}
		}
		t.CreatedOn = createdOn
	}

	return t, nil
}
