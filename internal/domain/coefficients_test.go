package domain

import (
	"errors"
	"math"
	"testing"
)

func TestCoefficientsValidate(t *testing.T) {
	valid := Coefficients{DistanceCoefficient: 0, WeightCoefficient: 2.5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error for valid coefficients: %v", err)
	}

	negative := Coefficients{DistanceCoefficient: -0.1, WeightCoefficient: 0.5}
	if err := negative.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for negative coefficient, got %v", err)
	}

	infinite := Coefficients{DistanceCoefficient: 0.5, WeightCoefficient: math.Inf(1)}
	if err := infinite.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for infinite coefficient, got %v", err)
	}
}

func TestContactSubmissionValidate(t *testing.T) {
	valid := ContactSubmission{Name: "Jane", Email: "jane@example.com", Message: "hello"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error for valid submission: %v", err)
	}

	missingEmail := ContactSubmission{Name: "Jane", Message: "hello"}
	if err := missingEmail.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing email, got %v", err)
	}

	badEmail := ContactSubmission{Name: "Jane", Email: "not-an-email", Message: "hello"}
	if err := badEmail.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for malformed email, got %v", err)
	}
}
