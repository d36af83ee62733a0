// Package ui renders command output and interactive terminal views.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/task"
)

// EmptyListMessage is printed by list when there are no tasks.
const EmptyListMessage = "The task list is empty"

// Styles holds the lipgloss styles of one output stream.
type Styles struct {
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
	Ordinal  lipgloss.Style
	Message  lipgloss.Style
	Priority lipgloss.Style
	Label    lipgloss.Style
	Dim      lipgloss.Style
	Cursor   lipgloss.Style
}

// NewStyles builds styles bound to r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Prompt:   r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Ordinal:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Message:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Priority: r.NewStyle().Foreground(lipgloss.Color("5")),
		Label:    r.NewStyle().Bold(true),
		Dim:      r.NewStyle().Faint(true),
		Cursor:   r.NewStyle().Reverse(true),
	}
}

// NewRenderer returns a lipgloss renderer for w honoring the color mode
// (auto, always, never).
func NewRenderer(w io.Writer, color string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Printer writes command results to stdout and warnings/errors to stderr.
type Printer struct {
	out        io.Writer
	err        io.Writer
	outStyles  Styles
	errStyles  Styles
	dateFormat string
}

// NewPrinter creates a printer. dateFormat is a Go time layout.
func NewPrinter(out, errOut io.Writer, color, dateFormat string) *Printer {
	return &Printer{
		out:        out,
		err:        errOut,
		outStyles:  NewStyles(NewRenderer(out, color)),
		errStyles:  NewStyles(NewRenderer(errOut, color)),
		dateFormat: dateFormat,
	}
}

// Success prints "<Verb> <rest>" with the verb highlighted, e.g. "Added a new task".
func (p *Printer) Success(verb, rest string) {
	fmt.Fprintf(p.out, "%s %s\n", p.outStyles.Success.Render(verb), rest)
}

// Warning prints "warning: <msg>" on stderr.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.err, "%s %s\n", p.errStyles.Warning.Render("warning:"), msg)
}

// Error prints "error: <err>" on stderr.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.err, "%s %s\n", p.errStyles.Error.Render("error:"), err)
}

// Confirm asks question on stderr and reads the answer from in.
func (p *Printer) Confirm(in io.Reader, question string) (bool, error) {
	return Confirm(in, p.err, question, p.errStyles)
}

// Line prints text verbatim on stdout.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// List prints one row per entry, ordinal 1 first. long adds the priority column.
func (p *Printer) List(entries []store.Entry, long bool) {
	if len(entries) == 0 {
		p.Line(EmptyListMessage)
		return
	}
	var b strings.Builder
	writeRows(&b, p.outStyles, entries, long, -1)
	io.WriteString(p.out, b.String())
}

// Info prints every detail of one task.
func (p *Printer) Info(e store.Entry) {
	var b strings.Builder
	writeInfo(&b, p.outStyles, e, p.dateFormat)
	io.WriteString(p.out, b.String())
}

// FormatCreatedOn formats the creation time in the local zone, or "unknown".
func FormatCreatedOn(t task.Task, layout string) string {
	if !t.HasCreatedOn() {
		return "unknown"
	}
	return t.CreatedOn.Local().Format(layout)
}

// writeRows renders list rows. cursor marks the selected row, -1 for none.
func writeRows(b *strings.Builder, s Styles, entries []store.Entry, long bool, cursor int) {
	width := len(strconv.Itoa(len(entries)))
	prioWidth := 0
	if long {
		for _, e := range entries {
			if n := len(e.Task.Priority.String()); n > prioWidth {
				prioWidth = n
			}
		}
	}

	for i, e := range entries {
		ordinal := s.Ordinal.Render(center(strconv.Itoa(e.Ordinal), width))
		message := s.Message.Render(e.Task.Message)
		var row string
		if long {
			prio := s.Priority.Render(padLeft(e.Task.Priority.String(), prioWidth))
			row = fmt.Sprintf(" %s | %s | %s", ordinal, prio, message)
		} else {
			row = fmt.Sprintf(" %s | %s", ordinal, message)
		}
		if i == cursor {
			row = s.Cursor.Render(">") + row
		} else if cursor >= 0 {
			row = " " + row
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
}

func writeInfo(b *strings.Builder, s Styles, e store.Entry, layout string) {
	fmt.Fprintf(b, "%s %s\n", s.Label.Render("ID:      "), s.Ordinal.Render(strconv.Itoa(e.Ordinal)))
	fmt.Fprintf(b, "%s %s\n", s.Label.Render("Priority:"), s.Priority.Render(e.Task.Priority.String()))
	fmt.Fprintf(b, "%s %s\n", s.Label.Render("Message: "), s.Message.Render(e.Task.Message))
	fmt.Fprintf(b, "%s %s\n", s.Label.Render("Created: "), FormatCreatedOn(e.Task, layout))
}

// center pads s with spaces to width, putting the odd space on the right.
func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func padLeft(s string, width int) string {
	if gap := width - len(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
