package media

import "fmt"

// ParseError indicates a failure to decode a wire-encoded format field.
// It wraps the underlying error and records which field was being
// decoded when the error occurred.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("media: parse %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
