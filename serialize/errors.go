package serialize

import (
	"errors"
	"fmt"
)

// ErrMaxDepth is returned when a value nests deeper than the configured
// maximum.
var ErrMaxDepth = errors.New("maximum depth exceeded")

// MarshalError represents an error while serializing a value.
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
