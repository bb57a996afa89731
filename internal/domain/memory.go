package domain

import "time"

// MemoryRegister holds the calculator's single stored value. Absence of a
// register means the memory is empty; zero is a legitimate stored value.
type MemoryRegister struct {
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
