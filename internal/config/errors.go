// Package config loads the declarative packpath catalog from YAML files,
// applies defaults, validates it eagerly, and hands out immutable
// [catalog.Snapshot] values through a thread-safe Manager.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates the catalog root file was not found.
	ErrConfigNotFound = errors.New("config: catalog file not found")

	// ErrInvalidConfig indicates the catalog is invalid.
	ErrInvalidConfig = errors.New("config: invalid catalog")

	// ErrInvalidYAML indicates invalid YAML syntax in a catalog file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrNotInitialized indicates the Manager has not been initialized via Load().
	ErrNotInitialized = errors.New("config: manager not initialized, call Load() first")

	// ErrDuplicateID indicates two catalog entries share an identifier.
	ErrDuplicateID = errors.New("config: duplicate identifier")

	// ErrBadTemplate indicates a rule path template is internally
	// inconsistent with the rest of the catalog (the CONFIG_ERROR class:
	// caught at load time, never deferred to resolution).
	ErrBadTemplate = errors.New("config: inconsistent path template")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
