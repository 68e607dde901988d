package flatregex

import "fmt"

// TypeError reports input that is not a JSON object.
type TypeError struct {
	Struct string // struct being decoded
	Got    string // what the decoder saw instead of '{'
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected JSON object, got %s", e.Struct, e.Got)
}

// MissingFieldError reports a required plain field absent from the input.
type MissingFieldError struct {
	Struct string
	Field  string // JSON key of the missing field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Struct, e.Field)
}

// DuplicateFieldError reports a plain field key appearing more than once.
type DuplicateFieldError struct {
	Struct string
	Field  string // JSON key seen twice
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s: duplicate field %q", e.Struct, e.Field)
}

// KeyAccessError reports a key access function failing to produce a textual
// view of a map key. The underlying error is available via Unwrap.
type KeyAccessError struct {
	Struct string
	Key    string // wire key that failed conversion
	Err    error
}

func (e *KeyAccessError) Error() string {
	return fmt.Sprintf("%s: key access failed for %q: %v", e.Struct, e.Key, e.Err)
}

func (e *KeyAccessError) Unwrap() error {
	return e.Err
}
