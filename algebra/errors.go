package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedVariable is returned by Evaluate when an expression
	// references a name absent from the bindings.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrNonConstantExponent is returned by Derivative for a power
	// whose exponent is not a number literal.
	ErrNonConstantExponent = errors.New("exponent is not a constant")
)

// ParseError describes malformed textual input. Pos is the index of
// the offending token in the token stream.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: %s", e.Pos, e.Msg)
}
