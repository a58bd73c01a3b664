package datasync

import "fmt"

// The sync core reports three failure categories across its boundary.
// Row-level faults never surface as errors; they are counted in the
// ImportSummary instead.

// SetupError means the active tenant identity is missing or unusable.
type SetupError struct {
	Message string
	Err     error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("setup error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("setup error: %s", e.Message)
}

func (e *SetupError) Unwrap() error { return e.Err }

func NewSetupError(message string, err error) *SetupError {
	return &SetupError{Message: message, Err: err}
}

// ValidationError means the workbook's structure does not match the catalog.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// TransportError wraps network/object-store failures during upload, download,
// list and delete.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

func NewTransportError(message string, err error) *TransportError {
	return &TransportError{Message: message, Err: err}
}
