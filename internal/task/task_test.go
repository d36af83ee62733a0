package task

import (
	"testing"
	"time"
)

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "walk the dog", "walk the dog"},
		{"field separator", "a\x1Fb", "a b"},
		{"record separator", "line one\nline two", "line one line two"},
		{"carriage return and tab", "a\r\tb", "a  b"},
		{"unicode kept", "café ☕", "café ☕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeMessage(tt.input); got != tt.want {
				t.Errorf("SanitizeMessage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	got := New(Value(2), "pay\x1Frent", now)

	if got.Message != "pay rent" {
		t.Errorf("Message = %q, want %q", got.Message, "pay rent")
	}
	if !got.Priority.Equal(Value(2)) {
		t.Errorf("Priority = %s, want 2", got.Priority)
	}
	if !got.HasCreatedOn() || !got.CreatedOn.Equal(now) {
		t.Errorf("CreatedOn = %v, want %v", got.CreatedOn, now)
	}

	legacy := Task{Priority: Min(), Message: "old"}
	if legacy.HasCreatedOn() {
		t.Error("task without timestamp reported HasCreatedOn")
	}
}
