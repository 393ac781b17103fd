package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/packpath/packpath/internal/resolver"
)

// envelope is the JSON shape of every API response. Success responses
// carry data; failure responses carry a message and, for resolution
// failures, the machine-readable error type.
type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}

// writeJSON encodes v with the given status. Encoding failures are logged
// rather than surfaced: by then the status line is already committed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeSuccess writes a success envelope around data.
func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeError writes a failure envelope with an optional error type.
func writeError(w http.ResponseWriter, status int, message, errorType string) {
	writeJSON(w, status, envelope{Success: false, Error: message, ErrorType: errorType})
}

// writeResolutionError maps a resolver failure onto an HTTP status and a
// typed failure envelope. Lookup misses are 404s, filenames the catalog
// cannot place are 422s, and an inconsistent catalog is the server's own
// fault.
func writeResolutionError(w http.ResponseWriter, err error) {
	kind, ok := resolver.KindOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	status := http.StatusUnprocessableEntity
	switch kind {
	case resolver.KindPackNotFound, resolver.KindRuleNotFound:
		status = http.StatusNotFound
	case resolver.KindConfigError:
		status = http.StatusInternalServerError
	}

	var re *resolver.Error
	errors.As(err, &re)
	writeError(w, status, re.Message, string(kind))
}
