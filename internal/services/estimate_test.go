package services

import (
	"context"
	"delivery-cost-service/internal/adapters/repositories"
	"delivery-cost-service/internal/domain"
	"errors"
	"math"
	"testing"
)

func TestEstimateDeliveryUsesCurrentCoefficients(t *testing.T) {
	store := repositories.NewMemoryCoefficientStore()
	calcLog := repositories.NewMemoryCalculationLog()
	ctx := context.Background()

	quote, err := EstimateDelivery(ctx, EstimateRequest{Distance: 25, Weight: 5.0}, store, calcLog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(quote.Cost-15.0) > 1e-9 {
		t.Fatalf("cost = %v, want 15.0", quote.Cost)
	}

	// Updated coefficients must take effect on the next estimate.
	if _, err := store.Set(ctx, 1.0, 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quote, err = EstimateDelivery(ctx, EstimateRequest{Distance: 10, Weight: 3}, store, calcLog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(quote.Cost-16.0) > 1e-9 {
		t.Fatalf("cost = %v, want 16.0", quote.Cost)
	}
}

func TestEstimateDeliveryRecordsCalculation(t *testing.T) {
	store := repositories.NewMemoryCoefficientStore()
	calcLog := repositories.NewMemoryCalculationLog()
	ctx := context.Background()

	if _, err := EstimateDelivery(ctx, EstimateRequest{Distance: 8, Weight: 2}, store, calcLog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calcs, err := calcLog.ListRecent(ctx, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calcs) != 1 {
		t.Fatalf("expected 1 recorded calculation, got %d", len(calcs))
	}
	if math.Abs(calcs[0].Cost-5.0) > 1e-9 {
		t.Fatalf("recorded cost = %v, want 5.0", calcs[0].Cost)
	}
}

type failingCalculationLog struct{}

func (failingCalculationLog) Record(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	return domain.Calculation{}, errors.New("log unavailable")
}

func (failingCalculationLog) ListRecent(ctx context.Context, page, perPage int) ([]domain.Calculation, error) {
	return nil, errors.New("log unavailable")
}

func TestEstimateDeliverySurvivesLogFailure(t *testing.T) {
	store := repositories.NewMemoryCoefficientStore()

	quote, err := EstimateDelivery(context.Background(), EstimateRequest{Distance: 4, Weight: 4}, store, failingCalculationLog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(quote.Cost-4.0) > 1e-9 {
		t.Fatalf("cost = %v, want 4.0", quote.Cost)
	}
}

func TestEstimateDeliveryRejectsNegativeInput(t *testing.T) {
	store := repositories.NewMemoryCoefficientStore()

	_, err := EstimateDelivery(context.Background(), EstimateRequest{Distance: -1, Weight: 1}, store, nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
