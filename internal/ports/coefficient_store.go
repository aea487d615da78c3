package ports

import (
	"context"
	"delivery-cost-service/internal/domain"
)

// Port: a boundary for reading and replacing the single coefficient record.
type CoefficientStore interface {
	// Return the coefficients currently in effect. A record always
	// exists; implementations install the defaults if it is missing.
	Get(ctx context.Context) (domain.Coefficients, error)

	// Validate and atomically replace the record. Readers observe
	// either the old pair or the new pair, never a mix.
	Set(ctx context.Context, distanceCoefficient, weightCoefficient float64) (domain.Coefficients, error)
}
