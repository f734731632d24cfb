package task

import (
	"errors"
	"fmt"
)

// EmptyFieldError reports a required field that was empty after trimming.
// It is user-correctable and never changes state.
type EmptyFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError reports a mutation aimed at a task that is not in the store.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.ID)
}

// PersistenceError reports a failure reading or writing the persisted collection.
// Op is "load" or "save".
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s tasks: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsEmptyField checks if err is or wraps an EmptyFieldError and returns it.
func IsEmptyField(err error) (*EmptyFieldError, bool) {
	var e *EmptyFieldError
	ok := errors.As(err, &e)
	return e, ok
}

// IsNotFound checks if err is or wraps a NotFoundError and returns it.
func IsNotFound(err error) (*NotFoundError, bool) {
	var e *NotFoundError
	ok := errors.As(err, &e)
	return e, ok
}

// IsPersistence checks if err is or wraps a PersistenceError and returns it.
func IsPersistence(err error) (*PersistenceError, bool) {
	var e *PersistenceError
	ok := errors.As(err, &e)
	return e, ok
}
