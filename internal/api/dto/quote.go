package dto

// Pointer fields distinguish "missing" from "zero".
type EstimateRequest struct {
	Distance *float64 `json:"distance"`
	Weight   *float64 `json:"weight"`
}

type BreakdownResponse struct {
	DistanceCost float64 `json:"distance_cost"`
	WeightCost   float64 `json:"weight_cost"`
}

type QuoteResponse struct {
	Cost             float64              `json:"cost"`
	Distance         float64              `json:"distance"`
	Weight           float64              `json:"weight"`
	Breakdown        BreakdownResponse    `json:"breakdown"`
	CoefficientsUsed CoefficientsResponse `json:"coefficients_used"`
}
