package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrPowerFormat reports an X^n token whose exponent is not a usable
	// non-negative integer.
	ErrPowerFormat = errors.New("malformed power")
	// ErrVariableFormat reports a variable-prefixed token that is neither
	// the bare variable nor a power of it.
	ErrVariableFormat = errors.New("malformed variable token")
	// ErrNumber reports a token that is not an operator, variable or finite
	// number.
	ErrNumber = errors.New("malformed number")
	// ErrSyntax reports equation-level problems: no terms or a repeated "=".
	ErrSyntax = errors.New("syntax error")
)

// TokenError records the token that stopped parsing.
type TokenError struct {
	Token string
	Index int // position in the token stream, -1 when not tied to a token
	Err   error
}

func (e *TokenError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", e.Err, e.Token)
	}
	return fmt.Sprintf("%v: %q (token %d)", e.Err, e.Token, e.Index+1)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
