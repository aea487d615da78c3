package domain

import "time"

// Calculation is one recorded delivery estimate, kept for the admin
// analytics view. Recording is best-effort and never blocks a quote.
type Calculation struct {
	ID           int64
	Distance     float64
	Weight       float64
	Cost         float64
	CalculatedAt time.Time
}
