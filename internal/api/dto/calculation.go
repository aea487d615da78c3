package dto

import "time"

type CalculationResponse struct {
	ID           int64     `json:"id"`
	Distance     float64   `json:"distance"`
	Weight       float64   `json:"weight"`
	Cost         float64   `json:"cost"`
	CalculatedAt time.Time `json:"calculated_at"`
}

type ListCalculationsResponse struct {
	Page         int                   `json:"page"`
	Calculations []CalculationResponse `json:"calculations"`
}
