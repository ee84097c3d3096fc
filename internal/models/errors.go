package models

import "errors"

var (
	// ErrNotFound is returned when a record does not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a conditional update matched no rows,
	// i.e. the record changed between read and write, or when a delete is
	// refused because dependent records exist.
	ErrConflict = errors.New("conflicting state")
)
