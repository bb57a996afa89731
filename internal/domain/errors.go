package domain

import "errors"

// Calculation failure kinds. Operations wrap these with operation context,
// so callers should match with errors.Is.
var (
	// ErrInvalidNumber signals an operand or computed result that is NaN or infinite.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDivisionByZero signals a divisor of exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeSqrt signals a square root requested on a negative current value.
	ErrNegativeSqrt = errors.New("square root of negative value")
	// ErrEmptyMemory signals a recall with no stored memory value.
	ErrEmptyMemory = errors.New("memory is empty")
	// ErrInsufficientHistory signals an undo with fewer than two recorded entries.
	ErrInsufficientHistory = errors.New("insufficient history to undo")
)
