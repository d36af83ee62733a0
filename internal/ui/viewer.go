package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/nibzard/tasklist/internal/store"
)

// ViewerOptions configures RunViewer.
type ViewerOptions struct {
	Color      string
	DateFormat string
	Logger     *log.Logger
}

// RunViewer shows a read-only, live-reloading browser of the task list at path.
func RunViewer(ctx context.Context, path string, opts ViewerOptions) error {
	if !IsTerminal(os.Stdout) || !IsTerminal(os.Stdin) {
		return fmt.Errorf("view requires a terminal")
	}

	model := newViewerModel(path, NewStyles(NewRenderer(os.Stdout, opts.Color)), opts.DateFormat)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching task list: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and Save replace or truncate the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	go forwardEvents(watcher, path, program, opts.Logger)

	_, err = program.Run()
	return err
}

type reloadMsg struct{}

func forwardEvents(w *fsnotify.Watcher, path string, program *tea.Program, logger *log.Logger) {
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				program.Send(reloadMsg{})
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			if logger != nil {
				logger.Warn("file watcher error", "err", err)
			}
		}
	}
}

type viewerModel struct {
	path       string
	styles     Styles
	dateFormat string
	entries    []store.Entry
	cursor     int
	showInfo   bool
	loadErr    error
}

func newViewerModel(path string, styles Styles, dateFormat string) *viewerModel {
	return &viewerModel{path: path, styles: styles, dateFormat: dateFormat}
}

func (m *viewerModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}
		case "i", "enter":
			m.showInfo = !m.showInfo
		case "r":
			m.reload()
		}
	case reloadMsg:
		m.reload()
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder
	title := "Task list: " + m.path
	b.WriteString(m.styles.Label.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString("Error loading task list:\n  " + m.loadErr.Error() + "\n\n")
	case len(m.entries) == 0:
		b.WriteString(EmptyListMessage + "\n\n")
	default:
		writeRows(&b, m.styles, m.entries, true, m.cursor)
		b.WriteString("\n")
		if m.showInfo {
			writeInfo(&b, m.styles, m.entries[m.cursor], m.dateFormat)
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Dim.Render("j/k move | i details | r reload | q quit") + "\n")
	return b.String()
}

func (m *viewerModel) reload() {
	s, err := store.Open(m.path)
	if err != nil {
		m.loadErr = err
		m.entries = nil
		m.cursor = 0
		return
	}
	m.loadErr = nil
	m.entries = s.List()
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
