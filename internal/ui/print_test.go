package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/task"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewPrinter(&out, &errOut, "never", "2006-01-02 15:04"), &out, &errOut
}

func TestPrinterList(t *testing.T) {
	p, out, _ := newTestPrinter()
	s := store.New(nil)
	s.Insert(task.Task{Priority: task.Max(), Message: "buy milk"})
	s.Insert(task.Task{Priority: task.Min(), Message: "walk dog"})

	p.List(s.List(), false)

	want := " 1 | buy milk\n 2 | walk dog\n"
	if out.String() != want {
		t.Errorf("List() = %q, want %q", out.String(), want)
	}
}

func TestPrinterListCentersOrdinals(t *testing.T) {
	p, out, _ := newTestPrinter()
	var tasks []task.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, task.Task{Priority: task.Value(i), Message: "m"})
	}
	p.List(store.New(tasks).List(), false)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != " 1  | m" {
		t.Errorf("first row = %q", lines[0])
	}
	if lines[9] != " 10 | m" {
		t.Errorf("last row = %q", lines[9])
	}
}

func TestPrinterListLong(t *testing.T) {
	p, out, _ := newTestPrinter()
	s := store.New([]task.Task{
		{Priority: task.Value(7), Message: "seven"},
		{Priority: task.Max(), Message: "top"},
	})
	p.List(s.List(), true)

	want := " 1 | max | top\n 2 |   7 | seven\n"
	if out.String() != want {
		t.Errorf("List(long) = %q, want %q", out.String(), want)
	}
}

func TestPrinterListEmpty(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.List(nil, false)
	if out.String() != EmptyListMessage+"\n" {
		t.Errorf("List(empty) = %q", out.String())
	}
}

func TestPrinterInfo(t *testing.T) {
	p, out, _ := newTestPrinter()
	created := time.Date(2024, 7, 1, 12, 0, 0, 0, time.Local)
	p.Info(store.Entry{Ordinal: 3, Task: task.Task{Priority: task.Value(5), Message: "file taxes", CreatedOn: created}})

	got := out.String()
	for _, want := range []string{"ID:       3", "Priority: 5", "Message:  file taxes", "Created:  2024-07-01 12:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Info() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatCreatedOnUnknown(t *testing.T) {
	if got := FormatCreatedOn(task.Task{}, time.RFC3339); got != "unknown" {
		t.Errorf("FormatCreatedOn() = %q", got)
	}
}

func TestPrinterStreams(t *testing.T) {
	p, out, errOut := newTestPrinter()
	p.Success("Added", "a new task")
	p.Warning("ordinals may have changed")
	p.Error(errors.New("boom"))

	if out.String() != "Added a new task\n" {
		t.Errorf("stdout = %q", out.String())
	}
	wantErr := "warning: ordinals may have changed\nerror: boom\n"
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestColorAlwaysEmitsEscapes(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, "always", time.RFC3339)
	p.Success("Added", "a new task")
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", out.String())
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"1", 1, "1"},
		{"1", 2, "1 "},
		{"1", 3, " 1 "},
		{"12", 3, "12 "},
		{"123", 2, "123"},
	}
	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
