package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks in handlers. The typed errors below unwrap
// to these, so callers can branch on the category and still read the detail.
var (
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrValidation        = errors.New("validation failed")
	ErrStorage           = errors.New("storage failure")
)

// NotFoundError reports that an entity required by the operation does not
// exist.
type NotFoundError struct {
	Kind string // "film", "user", "genre", "mpa"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ReferenceNotFoundError reports a dangling catalog reference inside a
// create/update payload (mpa id or genre id).
type ReferenceNotFoundError struct {
	Kind string // "mpa" or "genre"
	ID   int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d does not exist", e.Kind, e.ID)
}

func (e *ReferenceNotFoundError) Unwrap() error { return ErrReferenceNotFound }

// ValidationError reports a field-level invariant violation. Detected before
// any write, so state is left unchanged.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StorageError wraps an unexpected persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return ErrStorage }
