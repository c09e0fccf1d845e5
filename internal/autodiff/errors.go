package autodiff

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Div when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNumericDomain is returned when an elementary function has no
	// representable result for its operand, e.g. Log of a non-positive value.
	ErrNumericDomain = errors.New("numeric domain error")
)

// OpError describes a failed node construction.
type OpError struct {
	Op      string  // operation name, e.g. "log"
	Operand float64 // offending operand value
	Err     error   // ErrDivisionByZero or ErrNumericDomain
}

func (e *OpError) Error() string {
	return fmt.Sprintf("autodiff: %s(%g): %v", e.Op, e.Operand, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
