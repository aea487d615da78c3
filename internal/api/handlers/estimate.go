package handlers

import (
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/platform/metrics"
	"delivery-cost-service/internal/ports"
	"delivery-cost-service/internal/services"
	"encoding/json"
	"io"
	"net/http"
)

// EstimateHandler exposes the delivery cost estimator.
type EstimateHandler struct {
	Store ports.CoefficientStore
	Log   ports.CalculationLog
}

// Calculate prices a delivery from user-supplied distance and weight
// using the coefficients currently in the store.
func (h *EstimateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Distance == nil || req.Weight == nil {
		writeError(w, r, http.StatusBadRequest, "distance and weight are required")
		return
	}

	svcReq := services.EstimateRequest{
		Distance: *req.Distance,
		Weight:   *req.Weight,
	}

	quote, err := services.EstimateDelivery(r.Context(), svcReq, h.Store, h.Log)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	metrics.RecordQuoteComputed()

	res := dto.QuoteResponse{
		Cost:     quote.Cost,
		Distance: quote.Distance,
		Weight:   quote.Weight,
		Breakdown: dto.BreakdownResponse{
			DistanceCost: quote.DistanceCost,
			WeightCost:   quote.WeightCost,
		},
		CoefficientsUsed: dto.CoefficientsResponse{
			DistanceCoefficient: quote.Coefficients.DistanceCoefficient,
			WeightCoefficient:   quote.Coefficients.WeightCoefficient,
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}
