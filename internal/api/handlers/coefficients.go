package handlers

import (
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/metrics"
	"delivery-cost-service/internal/ports"
	"encoding/json"
	"io"
	"net/http"
)

// CoefficientHandler exposes read and replace operations for the single
// coefficient record. The update endpoint has no authentication: the
// original system shipped without any, and that gap is reproduced here
// rather than papered over.
type CoefficientHandler struct {
	Store ports.CoefficientStore
}

// Get returns the coefficients currently in effect.
func (h *CoefficientHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	coeffs, err := h.Store.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, coefficientsResponse(coeffs))
}

// Update validates and replaces the coefficient record.
func (h *CoefficientHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.UpdateCoefficientsRequest

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

	if req.DistanceCoefficient == nil || req.WeightCoefficient == nil {
		writeError(w, r, http.StatusBadRequest, "distance_coefficient and weight_coefficient are required")
		return
	}

	coeffs, err := h.Store.Set(r.Context(), *req.DistanceCoefficient, *req.WeightCoefficient)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	metrics.RecordCoefficientUpdate()

	writeJSON(w, r, http.StatusOK, coefficientsResponse(coeffs))
}

func coefficientsResponse(c domain.Coefficients) dto.CoefficientsResponse {
	res := dto.CoefficientsResponse{
		DistanceCoefficient: c.DistanceCoefficient,
		WeightCoefficient:   c.WeightCoefficient,
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		res.UpdatedAt = &t
	}
	return res
}
