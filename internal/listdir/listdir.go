// Package listdir locates the task list file that belongs to a directory.
package listdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the default name of the task list file.
const DefaultFileName = ".tasklist"

// ErrNotFound is returned when no ancestor of the working directory holds a task list.
var ErrNotFound = errors.New("this directory has no task list associated with it")

// ErrNotAFile is returned when something other than a regular file holds the
// task list name.
var ErrNotAFile = errors.New("not a regular file")

// Workspace is the directory a command runs in and the task list file name
// to look for. It is the only process-wide state the commands depend on.
type Workspace struct {
	Dir      string
	FileName string
}

// New returns a workspace rooted at dir. An empty fileName selects DefaultFileName.
func New(dir, fileName string) Workspace {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return Workspace{Dir: dir, FileName: fileName}
}

// Path returns the task list path directly inside the workspace directory.
// This is where init creates a new list.
func (w Workspace) Path() string {
	return filepath.Join(w.Dir, w.name())
}

// Discover walks from the workspace directory up to the filesystem root and
// returns the path of the first regular file named FileName.
func (w Workspace) Discover() (string, error) {
	dir, err := filepath.Abs(w.Dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", w.Dir, err)
	}

	for {
		candidate := filepath.Join(dir, w.name())
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Exists reports whether the workspace directory itself holds a task list.
// A directory or other non-regular file under the task list name is an error.
func (w Workspace) Exists() (bool, error) {
	info, err := os.Stat(w.Path())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%s is in the way of the task list: %w", w.Path(), ErrNotAFile)
	}
	return true, nil
}

func (w Workspace) name() string {
	if w.FileName == "" {
		return DefaultFileName
	}
	return w.FileName
}
