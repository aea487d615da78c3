package dto

import "time"

type CoefficientsResponse struct {
	DistanceCoefficient float64    `json:"distance_coefficient"`
	WeightCoefficient   float64    `json:"weight_coefficient"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// Pointer fields distinguish "missing" from "zero".
type UpdateCoefficientsRequest struct {
	DistanceCoefficient *float64 `json:"distance_coefficient"`
	WeightCoefficient   *float64 `json:"weight_coefficient"`
}
