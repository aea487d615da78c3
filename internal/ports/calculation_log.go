package ports

import (
	"context"
	"delivery-cost-service/internal/domain"
)

// Port: a boundary for the delivery-calculation analytics log.
type CalculationLog interface {
	// Persist one computed estimate and return it with its assigned ID.
	Record(ctx context.Context, calc domain.Calculation) (domain.Calculation, error)

	// Return one page of recorded estimates, newest first.
	// Pages are 1-based.
	ListRecent(ctx context.Context, page, perPage int) ([]domain.Calculation, error)
}
