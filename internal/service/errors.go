package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("transaction not found")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError rejects a draft before any I/O happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a mutation aimed at a record the backend no longer holds.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BackendUnavailableError wraps a storage or network failure. The mutation is not retried.
type BackendUnavailableError struct {
	Op  string
	Err error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("%s: backend unavailable: %v", e.Op, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

func (e *BackendUnavailableError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

// ForbiddenError reports a write the backend refused for the current principal. Retrying
// does not help.
type ForbiddenError struct {
	Op  string
	ID  string
	Err error
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, e.Err)
}

func (e *ForbiddenError) Unwrap() error {
	return e.Err
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}
