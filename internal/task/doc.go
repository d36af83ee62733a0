// Package task defines the task record and its priority.
//
// A priority is one of two sentinels, "min" and "max", or a whole number.
// The order is total:
//
//	min < 0 < 1 < ... < max
//
// Tasks carry no identity of their own. Their position in the sorted task
// list is the only way to address them (see package store).
package task
