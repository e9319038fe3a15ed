package recipe

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEffect   = errors.New("unknown effect")
	ErrUnknownInstance = errors.New("unknown effect instance")
	ErrUnknownParam    = errors.New("unknown parameter")
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrCrossCategory   = errors.New("reorder must keep the category's instances")
	ErrTooManyColors   = errors.New("too many colors")
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrNotFound        = errors.New("saved shader not found")
)

// ValidationError reports the first field of a document that failed
// validation. It matches ErrInvalidPayload with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidPayload }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
