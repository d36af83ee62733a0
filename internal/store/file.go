package store

import (
	"fmt"
	"os"
)

// Open reads and loads the task list file at path.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task list: %w", err)
	}
	return Load(data)
}

// Save overwrites the task list file at path with the store contents.
func (s *Store) Save(path string) error {
	if err := os.WriteFile(path, s.Encode(), 0644); err != nil {
		return fmt.Errorf("write task list: %w", err)
	}
	return nil
}

// Create writes an empty task list file at path, truncating any existing one.
func Create(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create task list: %w", err)
	}
	return f.Close()
}
