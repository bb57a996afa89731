package config

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/doeshing/chaincalc/internal/domain"
)

var validate = validator.New()

// Validate ensures config structure is consistent. Struct tags cover range
// checks; semantic rules the tags cannot express are checked here.
func Validate(cfg domain.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if math.IsNaN(cfg.Engine.InitialValue) || math.IsInf(cfg.Engine.InitialValue, 0) {
		return fmt.Errorf("engine.initial_value must be a finite number, got %v", cfg.Engine.InitialValue)
	}
	return nil
}
