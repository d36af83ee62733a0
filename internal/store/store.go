package store

import (
	"sort"

	"github.com/nibzard/tasklist/internal/codec"
	"github.com/nibzard/tasklist/internal/task"
)

// Store is a task list kept in non-decreasing priority order.
type Store struct {
	tasks []task.Task
}

// Entry pairs a task with its current ordinal.
type Entry struct {
	Ordinal int
	Task    task.Task
}

// New builds a store from tasks in any order. Tasks of equal priority keep
// their relative order.
func New(tasks []task.Task) *Store {
	s := &Store{tasks: append([]task.Task(nil), tasks...)}
	s.sort()
	return s
}

// Load decodes persisted data and sorts it. The file is re-sorted even if it
// was written sorted, so hand edits are tolerated.
func Load(data []byte) (*Store, error) {
	tasks, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	s := &Store{tasks: tasks}
	s.sort()
	return s, nil
}

// Encode serializes the store in priority order.
func (s *Store) Encode() []byte {
	return codec.Encode(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// IsEmpty reports whether the store holds no tasks.
func (s *Store) IsEmpty() bool {
	return len(s.tasks) == 0
}

// Tasks returns a copy of the tasks in ascending priority order.
func (s *Store) Tasks() []task.Task {
	return append([]task.Task(nil), s.tasks...)
}

// Sorted reports whether the store is in non-decreasing priority order.
func (s *Store) Sorted() bool {
	return sort.SliceIsSorted(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority.Less(s.tasks[j].Priority)
	})
}

// Insert places t after every task of lower or equal priority and returns
// its ordinal. A new task therefore precedes older tasks of the same
// priority when listed.
func (s *Store) Insert(t task.Task) int {
	pos := s.insertionPoint(t.Priority)
	s.tasks = append(s.tasks, task.Task{})
	copy(s.tasks[pos+1:], s.tasks[pos:])
	s.tasks[pos] = t
	return s.ordinalAt(pos)
}

// insertionPoint binary searches the half-open range [begin, end) for the
// right edge of the run of tasks whose priority equals p.
func (s *Store) insertionPoint(p task.Priority) int {
	begin, end := 0, len(s.tasks)
	for begin < end {
		mid := (begin + end) / 2
		if p.Less(s.tasks[mid].Priority) {
			end = mid
		} else {
			begin = mid + 1
		}
	}
	return (begin + end) / 2
}

// Get returns the task with the given ordinal. The pointer stays valid
// until the next mutation.
func (s *Store) Get(ordinal int) (*task.Task, error) {
	i, err := s.index(ordinal)
	if err != nil {
		return nil, err
	}
	return &s.tasks[i], nil
}

// SetPriority changes the priority of a task and re-sorts the whole store.
// Ordinals of any task may change as a result.
func (s *Store) SetPriority(ordinal int, p task.Priority) error {
	i, err := s.index(ordinal)
	if err != nil {
		return err
	}
	s.tasks[i].Priority = p
	s.sort()
	return nil
}

// SetMessage replaces the message of a task. Order is unaffected.
func (s *Store) SetMessage(ordinal int, message string) error {
	i, err := s.index(ordinal)
	if err != nil {
		return err
	}
	s.tasks[i].Message = task.SanitizeMessage(message)
	return nil
}

// Remove deletes the task with the given ordinal and returns it.
func (s *Store) Remove(ordinal int) (task.Task, error) {
	i, err := s.index(ordinal)
	if err != nil {
		return task.Task{}, err
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, nil
}

// List returns every task with its ordinal, ordinal 1 first.
func (s *Store) List() []Entry {
	entries := make([]Entry, 0, len(s.tasks))
	for i := len(s.tasks) - 1; i >= 0; i-- {
		entries = append(entries, Entry{Ordinal: s.ordinalAt(i), Task: s.tasks[i]})
	}
	return entries
}

// index converts an ordinal to a slice index, validating it in the same
// step so callers never hold an unchecked index.
func (s *Store) index(ordinal int) (int, error) {
	if ordinal < 1 || ordinal > len(s.tasks) {
		return 0, &OrdinalError{Ordinal: ordinal, Max: len(s.tasks)}
	}
	return len(s.tasks) - ordinal, nil
}

func (s *Store) ordinalAt(i int) int {
	return len(s.tasks) - i
}

func (s *Store) sort() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority.Less(s.tasks[j].Priority)
	})
}
