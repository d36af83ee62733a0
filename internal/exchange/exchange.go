// Package exchange converts a task list to and from a portable JSON or YAML
// document.
//
// The document looks like:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {"ordinal": 1, "priority": "max", "message": "buy milk", "created_on": "2024-01-01T10:00:00+01:00"}
//	  ]
//	}
//
// Tasks are listed ordinal 1 first. Input is validated against an embedded
// JSON Schema before it is decoded; YAML input is converted to JSON first.
package exchange

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	yaml "github.com/goccy/go-yaml"

	"github.com/nibzard/tasklist/internal/codec"
	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/task"
)

// SchemaVersion is the only document version understood.
const SchemaVersion = 1

// maxExactInteger is the largest integer a float64 holds exactly.
const maxExactInteger = 1 << 53

//go:embed schema.json
var schemaJSON []byte

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q: expected json or yaml", s)
	}
}

// Document is the exchange representation of a task list.
type Document struct {
	SchemaVersion int      `json:"schema_version"`
	Tasks         []Record `json:"tasks"`
}

// Record is one task of a Document.
type Record struct {
	Ordinal   int           `json:"ordinal,omitempty"`
	Priority  PriorityField `json:"priority"`
	Message   string        `json:"message"`
	CreatedOn string        `json:"created_on,omitempty"`
}

// PriorityField is a priority that decodes from either its textual form or
// a JSON number.
type PriorityField struct {
	task.Priority
}

// MarshalJSON writes the textual form.
func (p PriorityField) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Priority.String())
}

// UnmarshalJSON accepts "max", "min", "12", 12 or an integral number in
// exponent form such as 1e2.
func (p *PriorityField) UnmarshalJSON(data []byte) error {
	text := string(bytes.TrimSpace(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	} else if strings.ContainsAny(text, ".eE") {
		if f, err := strconv.ParseFloat(text, 64); err == nil && f >= 0 && f == math.Trunc(f) && f <= maxExactInteger {
			p.Priority = task.Value(int(f))
			return nil
		}
	}
	parsed, err := task.ParsePriority(text)
	if err != nil {
		return err
	}
	p.Priority = parsed
	return nil
}

// FromStore builds a document listing the store ordinal 1 first.
func FromStore(s *store.Store) Document {
	entries := s.List()
	doc := Document{SchemaVersion: SchemaVersion, Tasks: make([]Record, 0, len(entries))}
	for _, e := range entries {
		rec := Record{
			Ordinal:  e.Ordinal,
			Priority: PriorityField{e.Task.Priority},
			Message:  e.Task.Message,
		}
		if e.Task.HasCreatedOn() {
			rec.CreatedOn = e.Task.CreatedOn.Format(codec.TimeLayout)
		}
		doc.Tasks = append(doc.Tasks, rec)
	}
	return doc
}

// TaskList returns the document tasks in store order (lowest priority
// first, ordinal 1 last). Messages are sanitized.
func (d Document) TaskList() ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(d.Tasks))
	for i := len(d.Tasks) - 1; i >= 0; i-- {
		rec := d.Tasks[i]
		t := task.Task{
			Priority: rec.Priority.Priority,
			Message:  task.SanitizeMessage(rec.Message),
		}
		if rec.CreatedOn != "" {
			created, err := time.Parse(time.RFC3339Nano, rec.CreatedOn)
			if err != nil {
				return nil, &DocumentError{Problems: []*ValidationError{{
					Path: fmt.Sprintf("tasks[%d].created_on", i),
					Err:  err,
				}}}
			}
			t.CreatedOn = created
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Encode writes the document in the given format.
func (d Document) Encode(w io.Writer, f Format) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	if f == FormatYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("convert document to yaml: %w", err)
		}
	}

	_, err = w.Write(data)
	return err
}

// Decode validates and parses a document.
func Decode(data []byte, f Format) (Document, error) {
	if f == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return Document{}, fmt.Errorf("parse yaml: %w", err)
		}
		data = converted
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	if err := validate(generic); err != nil {
		return Document{}, err
	}

	var raw struct {
		SchemaVersion int `json:"schema_version"`
		Tasks         []struct {
			Ordinal   int             `json:"ordinal"`
			Priority  json.RawMessage `json:"priority"`
			Message   string          `json:"message"`
			CreatedOn string          `json:"created_on"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}

	doc := Document{SchemaVersion: raw.SchemaVersion, Tasks: make([]Record, 0, len(raw.Tasks))}
	docErr := &DocumentError{}
	for i, rec := range raw.Tasks {
		var priority PriorityField
		if err := priority.UnmarshalJSON(rec.Priority); err != nil {
			docErr.Problems = append(docErr.Problems, &ValidationError{
				Path: fmt.Sprintf("tasks[%d].priority", i),
				Err:  err,
			})
			continue
		}
		doc.Tasks = append(doc.Tasks, Record{
			Ordinal:   rec.Ordinal,
			Priority:  priority,
			Message:   rec.Message,
			CreatedOn: rec.CreatedOn,
		})
	}
	if len(docErr.Problems) > 0 {
		return Document{}, docErr
	}
	return doc, nil
}

// Import inserts every task of doc into s and returns how many were added.
// Records are inserted last to first, so tasks of equal priority keep the
// relative order they had in the document.
func Import(s *store.Store, doc Document) (int, error) {
	tasks, err := doc.TaskList()
	if err != nil {
		return 0, err
	}
	for _, t := range tasks {
		s.Insert(t)
	}
	return len(tasks), nil
}

// Replace returns a new store holding exactly the tasks of doc.
func Replace(doc Document) (*store.Store, error) {
	tasks, err := doc.TaskList()
	if err != nil {
		return nil, err
	}
	return store.New(tasks), nil
}

// ErrInvalidDocument is returned when a document fails validation.
var ErrInvalidDocument = errors.New("invalid task list document")
