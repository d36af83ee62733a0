// Package store keeps a task list sorted by priority and addresses tasks
// by ordinal.
//
// Tasks are held in ascending priority order. Ordinals count from the end
// of that sequence, so ordinal 1 is the highest priority task and, among
// tasks of equal priority, the most recently added one. Ordinals are never
// stored; they are recomputed from position on every lookup and listing,
// which means any mutation that re-sorts the list can renumber tasks.
//
// A Store lives for one command invocation: it is opened from the task list
// file, changed by a single operation, and saved back. It is not safe for
// concurrent use and the file is not locked; two racing invocations lose
// the earlier write.
package store
