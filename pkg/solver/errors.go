package solver

import "fmt"

// InvalidInputError reports a malformed allocation request: mismatched slice
// lengths, an empty group set, or a negative demand, weight, or capacity.
// It is surfaced immediately to the caller and never retried.
type InvalidInputError struct {
	// Field names the offending input (e.g. "weights", "capacity").
	Field string

	// Reason describes which constraint failed.
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid allocation input: %s: %s", e.Field, e.Reason)
}

func invalidInputf(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
