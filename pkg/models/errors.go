package models

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the requested scan root does not exist.
// It is fatal to that scan and never retried.
type NotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StorageWriteError indicates baseline persistence failed. The save leaves
// no partial record behind.
type StorageWriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to write baseline %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// ValidationError indicates an invalid configuration value
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
