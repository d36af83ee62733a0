package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func plainStyles() Styles {
	return NewStyles(NewRenderer(&bytes.Buffer{}, "never"))
}

func TestConfirmLine(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{" y\n", false},
		{"nope\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Overwrite?", plainStyles())
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if out.String() != "Overwrite? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirmModelKeys(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, tt := range tests {
		m := &confirmModel{prompt: "Overwrite? "}
		_, cmd := m.Update(tt.key)
		if cmd == nil {
			t.Fatalf("key %q did not quit", tt.key.String())
		}
		if !m.answered || m.yes != tt.want {
			t.Errorf("key %q: answered=%v yes=%v, want yes=%v", tt.key.String(), m.answered, m.yes, tt.want)
		}
	}
}

func TestConfirmModelIgnoresOtherMessages(t *testing.T) {
	m := &confirmModel{prompt: "Overwrite? "}
	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Error("window size message quit the prompt")
	}
	if m.View() != "Overwrite? " {
		t.Errorf("View() = %q", m.View())
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}
}
