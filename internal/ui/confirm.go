package ui

import (
	"bufio"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Confirm asks a yes/no question on out and reads the answer from in. Only
// an answer starting with "y" or "Y" confirms. When both streams are
// terminals the answer is a single key press; otherwise a line is read.
func Confirm(in io.Reader, out io.Writer, question string, styles Styles) (bool, error) {
	prompt := question + " " + styles.Prompt.Render("[y/N]:") + " "
	if IsTerminal(in) && IsTerminal(out) {
		return confirmKey(in, out, prompt)
	}
	return confirmLine(in, out, prompt)
}

func confirmLine(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := io.WriteString(out, prompt); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return isYes(line), nil
}

func isYes(answer string) bool {
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}

type confirmModel struct {
	prompt   string
	answered bool
	yes      bool
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.answered = true
	m.yes = isYes(key.String())
	return m, tea.Quit
}

func (m *confirmModel) View() string {
	if !m.answered {
		return m.prompt
	}
	if m.yes {
		return m.prompt + "y\n"
	}
	return m.prompt + "N\n"
}

func confirmKey(in io.Reader, out io.Writer, prompt string) (bool, error) {
	model := &confirmModel{prompt: prompt}
	final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(*confirmModel)
	return ok && m.yes, nil
}

// IsTerminal reports whether v is a file descriptor attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
