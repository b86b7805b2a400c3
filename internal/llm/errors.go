package llm

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates no generation backend has usable credentials.
// It is fatal at startup: the assistant cannot serve without a backend.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("llm configuration error: %s", e.Message)
}

// BackendError represents a single backend call failure (timeout, rate limit,
// network error, bad credential). Recovered by advancing to the next backend.
type BackendError struct {
	Backend string
	Cause   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s failed: %v", e.Backend, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// AllBackendsError aggregates the per-backend failures of one adapter call.
// Returned only when every configured backend failed.
type AllBackendsError struct {
	Attempts []*BackendError
}

func (e *AllBackendsError) Error() string {
	if len(e.Attempts) == 0 {
		return "no generation backends configured"
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.Error())
	}
	return "all generation backends failed: " + strings.Join(parts, "; ")
}
