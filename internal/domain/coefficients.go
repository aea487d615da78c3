package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Default multipliers installed when no coefficient record exists yet.
const (
	DefaultDistanceCoefficient = 0.5
	DefaultWeightCoefficient   = 0.5
)

// ErrValidation marks caller-supplied values that fail validation.
// Handlers translate it into a client error.
var ErrValidation = errors.New("validation failed")

// Coefficients is the single persisted pair of cost multipliers.
// Exactly one record is in effect at any time.
type Coefficients struct {
	DistanceCoefficient float64
	WeightCoefficient   float64
	UpdatedAt           time.Time
}

func DefaultCoefficients() Coefficients {
	return Coefficients{
		DistanceCoefficient: DefaultDistanceCoefficient,
		WeightCoefficient:   DefaultWeightCoefficient,
		UpdatedAt:           time.Now().UTC(),
	}
}

// Validate checks that both multipliers are finite and non-negative.
func (c Coefficients) Validate() error {
	if err := checkNonNegative("distance_coefficient", c.DistanceCoefficient); err != nil {
		return err
	}

	if err := checkNonNegative("weight_coefficient", c.WeightCoefficient); err != nil {
		return err
	}

	return nil
}

func checkNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrValidation, name)
	}

	if v < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrValidation, name)
	}

	return nil
}
