// Package resolver implements the filename resolution engine: pack
// detection, model-code detection, first-match-wins rule evaluation, and
// path-template expansion against an immutable catalog snapshot.
//
// The engine performs no I/O and keeps no state between calls; every
// function is a pure computation over its inputs, so resolutions may run
// concurrently against a shared snapshot.
package resolver

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure.
type Kind string

// Resolution failure kinds, surfaced verbatim to callers.
const (
	// KindPackNotFound: no pack's key tokens are all present in the filename.
	KindPackNotFound Kind = "PACK_NOT_FOUND"

	// KindPackAmbiguous: more than one pack's key tokens are all present.
	KindPackAmbiguous Kind = "PACK_AMBIGUOUS"

	// KindRuleNotFound: no rule's predicate holds for the filename.
	KindRuleNotFound Kind = "RULE_NOT_FOUND"

	// KindUnknownPlaceholder: a path template references a folder
	// placeholder absent from the catalog.
	KindUnknownPlaceholder Kind = "UNKNOWN_PLACEHOLDER"

	// KindModelRequiredForPath: a path template references {MODEL_FOLDER}
	// but no model code was detected.
	KindModelRequiredForPath Kind = "MODEL_REQUIRED_FOR_PATH"

	// KindConfigError: the catalog itself is internally inconsistent.
	KindConfigError Kind = "CONFIG_ERROR"
)

// ErrResolution is the sentinel all resolution failures unwrap to.
var ErrResolution = errors.New("resolver: resolution failed")

// Error is a classified resolution failure. It carries no partial result:
// resolution either yields a full Result or one Error.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the resolution sentinel for errors.Is support.
func (e *Error) Unwrap() error {
	return ErrResolution
}

// newError builds a classified Error with a formatted message.
func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from an error returned by this package.
// The second return value is false when err is not a resolution Error.
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return "", false
}
