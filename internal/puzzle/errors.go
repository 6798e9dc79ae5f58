// Package puzzle holds the error taxonomy shared by the puzzle input parsers.
package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks malformed input text: wrong token count, non-integer token,
	// missing delimiter.
	ErrParse = errors.New("parse error")

	// ErrInvalidInput marks input that is well formed but semantically invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// InputError reports the offending input alongside the error kind.
// errors.Is(err, ErrParse) and errors.Is(err, ErrInvalidInput) match on Kind.
type InputError struct {
	Kind   error
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s (input %q)", e.Kind, e.Reason, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

// Parse returns an ErrParse InputError for input.
func Parse(input string, format string, args ...any) error {
	return &InputError{Kind: ErrParse, Input: input, Reason: fmt.Sprintf(format, args...)}
}

// Invalid returns an ErrInvalidInput InputError for input.
func Invalid(input string, format string, args ...any) error {
	return &InputError{Kind: ErrInvalidInput, Input: input, Reason: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err was caused by bad puzzle input of either kind.
func IsInputError(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrInvalidInput)
}
