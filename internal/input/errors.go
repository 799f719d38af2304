package input

import (
	"errors"
	"fmt"
)

// Validation errors. All of them are user-input problems.
var (
	// ErrEmptyInput indicates the raw string produced no tokens.
	ErrEmptyInput = errors.New("input: array cannot be empty")

	// ErrTooLarge indicates more than MaxElements tokens.
	ErrTooLarge = errors.New("input: array too large")

	// ErrParse indicates a token that is not an integer.
	ErrParse = errors.New("input: invalid integer")
)

// User-facing messages, one per error class.
const (
	MsgEmptyInput = "Error: Array cannot be empty"
	MsgTooLarge   = "Error: Array too large (max 50 elements)"
	MsgParse      = "Error: Please enter valid integers separated by commas (e.g., 5,2,8,1,9)"
)

// TokenError wraps ErrParse with the position of the offending token.
type TokenError struct {
	Index int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: token %d %q", e.Err, e.Index, e.Token)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Message maps a validation error to the message shown to the user.
// Errors outside the taxonomy fall back to the parse message.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return MsgEmptyInput
	case errors.Is(err, ErrTooLarge):
		return MsgTooLarge
	default:
		return MsgParse
	}
}
