// Package quickcalc provides stateless one-shot arithmetic helpers. They
// share the engine's error kinds but keep no value, memory, or history;
// callers wanting chaining or undo should use domain.Calculator instead.
package quickcalc

import (
	"fmt"
	"math"

	"github.com/doeshing/chaincalc/internal/domain"
)

// Add returns a + b.
func Add(a, b float64) (float64, error) {
	return finish("add", a+b)
}

// Subtract returns a - b.
func Subtract(a, b float64) (float64, error) {
	return finish("subtract", a-b)
}

// Multiply returns a * b.
func Multiply(a, b float64) (float64, error) {
	return finish("multiply", a*b)
}

// Divide returns a / b, rejecting a zero divisor.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %v by zero: %w", a, domain.ErrDivisionByZero)
	}
	return finish("divide", a/b)
}

// Power returns base raised to exponent.
func Power(base, exponent float64) (float64, error) {
	return finish("power", math.Pow(base, exponent))
}

// Sqrt returns the square root of v, rejecting negative input.
func Sqrt(v float64) (float64, error) {
	if v < 0 {
		return 0, fmt.Errorf("sqrt of %v: %w", v, domain.ErrNegativeSqrt)
	}
	return finish("sqrt", math.Sqrt(v))
}

// Percentage returns value * percent / 100.
func Percentage(value, percent float64) (float64, error) {
	return finish("percentage", value*percent/100)
}

// Sum returns the validated sum of all values.
func Sum(values ...float64) (float64, error) {
	var total float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("sum: operand %v: %w", v, domain.ErrInvalidNumber)
		}
		total += v
	}
	return finish("sum", total)
}

func finish(op string, result float64) (float64, error) {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%s: result: %w", op, domain.ErrInvalidNumber)
	}
	return result, nil
}
