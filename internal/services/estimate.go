package services

import (
	"context"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/ports"
	"fmt"
	"log"
	"time"
)

type EstimateRequest struct {
	Distance float64
	Weight   float64
}

// EstimateDelivery prices a delivery using the coefficients currently in
// the store and records the calculation for the admin analytics view.
// The coefficients are read on every request so updates take effect
// immediately. The analytics write is best-effort: a failure is logged
// but never fails the estimate.
func EstimateDelivery(
	ctx context.Context,
	req EstimateRequest,
	store ports.CoefficientStore,
	calcLog ports.CalculationLog,
) (domain.Quote, error) {
	coeffs, err := store.Get(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("estimate delivery: %w", err)
	}

	quote, err := domain.EstimateCost(coeffs, req.Distance, req.Weight)
	if err != nil {
		return domain.Quote{}, err
	}

	if calcLog != nil {
		calc := domain.Calculation{
			Distance:     quote.Distance,
			Weight:       quote.Weight,
			Cost:         quote.Cost,
			CalculatedAt: time.Now().UTC(),
		}
		if _, err := calcLog.Record(ctx, calc); err != nil {
			log.Printf("record calculation failed: %v", err)
		}
	}

	return quote, nil
}
