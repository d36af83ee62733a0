package listdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	listPath := filepath.Join(root, "a", DefaultFileName)
	if err := os.WriteFile(listPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := New(nested, "").Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got != listPath {
		t.Errorf("Discover() = %s, want %s", got, listPath)
	}
}

func TestDiscoverPrefersNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "inner")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{root, nested} {
		if err := os.WriteFile(filepath.Join(dir, "tasks"), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := New(nested, "tasks").Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got != filepath.Join(nested, "tasks") {
		t.Errorf("Discover() = %s", got)
	}
}

func TestDiscoverSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory with the list name is not a task list.
	name := "list-" + filepath.Base(root)
	if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := New(root, name).Discover()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Discover() error = %v, want ErrNotFound", err)
	}
}

func TestExistsAndPath(t *testing.T) {
	dir := t.TempDir()
	ws := New(dir, "")
	if ws.Path() != filepath.Join(dir, DefaultFileName) {
		t.Errorf("Path() = %s", ws.Path())
	}

	ok, err := ws.Exists()
	if err != nil || ok {
		t.Fatalf("Exists() = %v, %v before creation", ok, err)
	}
	if err := os.WriteFile(ws.Path(), nil, 0644); err != nil {
		t.Fatal(err)
	}
	ok, err = ws.Exists()
	if err != nil || !ok {
		t.Fatalf("Exists() = %v, %v after creation", ok, err)
	}
}

func TestExistsRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	ws := New(dir, "")
	if err := os.Mkdir(ws.Path(), 0755); err != nil {
		t.Fatal(err)
	}

	ok, err := ws.Exists()
	if !errors.Is(err, ErrNotAFile) {
		t.Fatalf("Exists() error = %v, want ErrNotAFile", err)
	}
	if ok {
		t.Error("Exists() reported a directory as a task list")
	}
}
