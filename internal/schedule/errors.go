package schedule

import "fmt"

// MissingFieldError reports a required field absent from a raw schedule
// record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("schedule record is missing required field %q", e.Field)
}

// MalformedInputError reports a document that is not the expected shape
// (no schedule key, wrong types, or not JSON at all).
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed schedule document: " + e.Reason
}
