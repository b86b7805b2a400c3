package assistant

import (
	"errors"
	"fmt"
)

// errNoGenerator is returned when an operation requiring a generation backend
// runs without one configured.
var errNoGenerator = errors.New("no generation backend configured")

// SchemaViolationError indicates that generation output failed strict
// structural validation against the assistant response schema.
type SchemaViolationError struct {
	Cause error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %v", e.Cause)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}

// ExtractionError indicates the job-description extraction call failed.
// It is never fatal: detection still reports true with an advisory message.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("job description extraction failed: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
