package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// timeNow is swapped in tests to pin history and memory timestamps.
var timeNow = time.Now

// Calculator is the stateful engine: a current value, an optional memory
// register, and an append-only history of applied operations.
//
// Mutators return the receiver so calls chain. Errors follow the sticky
// builder convention: the first failure is recorded, every later mutator
// becomes a no-op, and Err exposes the failure. A failed operation never
// touches value, memory, or history, so after any error the observable
// state is exactly what it was before the failing call.
//
// A Calculator is not safe for concurrent use; callers needing shared
// access must serialize externally.
type Calculator struct {
	value   float64
	memory  *MemoryRegister
	history []HistoryEntry
	err     error
}

// NewCalculator creates an engine with the given initial value.
func NewCalculator(initial float64) (*Calculator, error) {
	if !isFinite(initial) {
		return nil, fmt.Errorf("initial value %v: %w", initial, ErrInvalidNumber)
	}
	return &Calculator{value: initial}, nil
}

// Value returns the current value.
func (c *Calculator) Value() float64 {
	return c.value
}

// Err returns the first error recorded since the last ResetErr, or nil.
func (c *Calculator) Err() error {
	return c.err
}

// ResetErr clears the sticky error so the engine accepts operations again.
// State is already consistent: the failing operation never applied.
func (c *Calculator) ResetErr() *Calculator {
	c.err = nil
	return c
}

// History returns a snapshot of the operation history. The snapshot is
// deep-copied; mutating it cannot affect the engine.
func (c *Calculator) History() []HistoryEntry {
	out := make([]HistoryEntry, len(c.history))
	copy(out, c.history)
	for i := range out {
		if out[i].Operands != nil {
			operands := make([]float64, len(out[i].Operands))
			copy(operands, out[i].Operands)
			out[i].Operands = operands
		}
	}
	return out
}

// Memory returns the stored register and whether one is present.
func (c *Calculator) Memory() (MemoryRegister, bool) {
	if c.memory == nil {
		return MemoryRegister{}, false
	}
	return *c.memory, true
}

// LastResult returns the most recent history entry, if any.
func (c *Calculator) LastResult() (HistoryEntry, bool) {
	if len(c.history) == 0 {
		return HistoryEntry{}, false
	}
	return c.history[len(c.history)-1], true
}

// SetValue replaces the current value. Unlike the arithmetic mutators it
// records no history entry; this asymmetry is deliberate contract, so an
// undo never lands on a bare SetValue state.
func (c *Calculator) SetValue(v float64) *Calculator {
	if c.err != nil {
		return c
	}
	if !isFinite(v) {
		return c.fail(fmt.Errorf("set value %v: %w", v, ErrInvalidNumber))
	}
	c.value = v
	return c
}

// Clear resets the current value to zero and records the reset.
func (c *Calculator) Clear() *Calculator {
	if c.err != nil {
		return c
	}
	return c.commit(OpClear, nil, 0)
}

// Add adds v to the current value.
func (c *Calculator) Add(v float64) *Calculator {
	return c.applyBinary(OpAdd, v, func(cur, operand float64) float64 { return cur + operand })
}

// Subtract subtracts v from the current value.
func (c *Calculator) Subtract(v float64) *Calculator {
	return c.applyBinary(OpSubtract, v, func(cur, operand float64) float64 { return cur - operand })
}

// Multiply multiplies the current value by v.
func (c *Calculator) Multiply(v float64) *Calculator {
	return c.applyBinary(OpMultiply, v, func(cur, operand float64) float64 { return cur * operand })
}

// Divide divides the current value by v. A zero divisor is reported as
// ErrDivisionByZero before any finiteness check on v.
func (c *Calculator) Divide(v float64) *Calculator {
	if c.err != nil {
		return c
	}
	if v == 0 {
		return c.fail(fmt.Errorf("divide %v by zero: %w", c.value, ErrDivisionByZero))
	}
	return c.applyBinary(OpDivide, v, func(cur, operand float64) float64 { return cur / operand })
}

// Power raises the current value to the exponent e. Non-real results, such
// as a negative base with a fractional exponent, surface as ErrInvalidNumber.
func (c *Calculator) Power(e float64) *Calculator {
	return c.applyBinary(OpPower, e, math.Pow)
}

// Percentage sets the current value to value*p/100.
func (c *Calculator) Percentage(p float64) *Calculator {
	return c.applyBinary(OpPercentage, p, func(cur, operand float64) float64 { return cur * operand / 100 })
}

// Sqrt replaces the current value with its square root. The sign is checked
// before computing so a negative value reports ErrNegativeSqrt rather than
// the generic invalid-result error.
func (c *Calculator) Sqrt() *Calculator {
	if c.err != nil {
		return c
	}
	if c.value < 0 {
		return c.fail(fmt.Errorf("sqrt of %v: %w", c.value, ErrNegativeSqrt))
	}
	return c.commit(OpSqrt, []float64{c.value}, math.Sqrt(c.value))
}

// MemoryStore copies the current value into the memory register.
func (c *Calculator) MemoryStore() *Calculator {
	if c.err != nil {
		return c
	}
	c.memory = &MemoryRegister{Value: c.value, UpdatedAt: timeNow()}
	return c
}

// MemoryRecall replaces the current value with the stored memory value.
func (c *Calculator) MemoryRecall() *Calculator {
	if c.err != nil {
		return c
	}
	if c.memory == nil {
		return c.fail(fmt.Errorf("recall: %w", ErrEmptyMemory))
	}
	c.value = c.memory.Value
	return c
}

// MemoryClear empties the memory register.
func (c *Calculator) MemoryClear() *Calculator {
	if c.err != nil {
		return c
	}
	c.memory = nil
	return c
}

// MemoryAdd adds v (default: the current value) to the memory register,
// initializing an empty register to zero first.
func (c *Calculator) MemoryAdd(v ...float64) *Calculator {
	return c.adjustMemory("memory add", 1, v)
}

// MemorySubtract subtracts v (default: the current value) from the memory
// register, initializing an empty register to zero first.
func (c *Calculator) MemorySubtract(v ...float64) *Calculator {
	return c.adjustMemory("memory subtract", -1, v)
}

// ClearHistory discards all recorded history entries.
func (c *Calculator) ClearHistory() *Calculator {
	if c.err != nil {
		return c
	}
	c.history = nil
	return c
}

// Undo removes the most recent history entry and restores the current value
// to the result of the entry before it. History is the sole source of prior
// state, so undo needs at least two entries; undo itself is never recorded.
func (c *Calculator) Undo() *Calculator {
	if c.err != nil {
		return c
	}
	if len(c.history) < 2 {
		return c.fail(fmt.Errorf("undo with %d history entries: %w", len(c.history), ErrInsufficientHistory))
	}
	c.history = c.history[:len(c.history)-1]
	c.value = c.history[len(c.history)-1].Result
	return c
}

// Display formats the current value. With an explicit decimals argument the
// value is rendered with exactly that many fraction digits; otherwise the
// shortest string that round-trips back to the same float is returned.
func (c *Calculator) Display(decimals ...int) string {
	if len(decimals) > 0 && decimals[0] >= 0 {
		return strconv.FormatFloat(c.value, 'f', decimals[0], 64)
	}
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}

func (c *Calculator) applyBinary(op Operation, operand float64, compute func(cur, operand float64) float64) *Calculator {
	if c.err != nil {
		return c
	}
	if !isFinite(operand) {
		return c.fail(fmt.Errorf("%s: operand %v: %w", op, operand, ErrInvalidNumber))
	}
	result := compute(c.value, operand)
	if !isFinite(result) {
		return c.fail(fmt.Errorf("%s: result of %v and %v: %w", op, c.value, operand, ErrInvalidNumber))
	}
	return c.commit(op, []float64{c.value, operand}, result)
}

func (c *Calculator) adjustMemory(what string, sign float64, v []float64) *Calculator {
	if c.err != nil {
		return c
	}
	operand := c.value
	if len(v) > 0 {
		operand = v[0]
	}
	if !isFinite(operand) {
		return c.fail(fmt.Errorf("%s: operand %v: %w", what, operand, ErrInvalidNumber))
	}
	var stored float64
	if c.memory != nil {
		stored = c.memory.Value
	}
	result := stored + sign*operand
	if !isFinite(result) {
		return c.fail(fmt.Errorf("%s: result: %w", what, ErrInvalidNumber))
	}
	c.memory = &MemoryRegister{Value: result, UpdatedAt: timeNow()}
	return c
}

// commit applies a validated result and records the operation. Every
// mutation of value+history funnels through here so the two never diverge.
func (c *Calculator) commit(op Operation, operands []float64, result float64) *Calculator {
	c.value = result
	c.history = append(c.history, HistoryEntry{
		ID:        uuid.New(),
		Operation: op,
		Operands:  operands,
		Result:    result,
		Timestamp: timeNow(),
	})
	return c
}

func (c *Calculator) fail(err error) *Calculator {
	c.err = err
	return c
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
