package domain

// Quote is a priced delivery estimate together with the per-term
// decomposition and the coefficients that produced it.
type Quote struct {
	Distance     float64
	Weight       float64
	Cost         float64
	DistanceCost float64
	WeightCost   float64
	Coefficients Coefficients
}

// EstimateCost applies the two-term linear formula
//
//	cost = distance_coefficient*distance + weight_coefficient*weight
//
// Inputs must be finite and non-negative. The result is not rounded;
// each term is reported separately so callers can show a breakdown.
func EstimateCost(c Coefficients, distance, weight float64) (Quote, error) {
	if err := checkNonNegative("distance", distance); err != nil {
		return Quote{}, err
	}

	if err := checkNonNegative("weight", weight); err != nil {
		return Quote{}, err
	}

	distanceCost := c.DistanceCoefficient * distance
	weightCost := c.WeightCoefficient * weight

	return Quote{
		Distance:     distance,
		Weight:       weight,
		Cost:         distanceCost + weightCost,
		DistanceCost: distanceCost,
		WeightCost:   weightCost,
		Coefficients: c,
	}, nil
}
