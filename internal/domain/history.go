package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operation identifies the kind of a recorded calculator operation.
type Operation string

const (
	OpClear      Operation = "clear"
	OpAdd        Operation = "add"
	OpSubtract   Operation = "subtract"
	OpMultiply   Operation = "multiply"
	OpDivide     Operation = "divide"
	OpPower      Operation = "power"
	OpSqrt       Operation = "sqrt"
	OpPercentage Operation = "percentage"
)

// HistoryEntry captures one applied operation: its kind, the operands in the
// order they entered the computation, and the resulting current value.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	Operation Operation `json:"operation"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
