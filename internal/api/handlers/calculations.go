package handlers

import (
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/ports"
	"net/http"
)

// Admin listings show 20 rows per page, newest first.
const listPageSize = 20

// CalculationHandler lists recorded delivery estimates for the admin view.
type CalculationHandler struct {
	Log ports.CalculationLog
}

func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	page := pageParam(r)

	calcs, err := h.Log.ListRecent(r.Context(), page, listPageSize)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListCalculationsResponse{
		Page:         page,
		Calculations: make([]dto.CalculationResponse, 0, len(calcs)),
	}
	for _, c := range calcs {
		res.Calculations = append(res.Calculations, dto.CalculationResponse{
			ID:           c.ID,
			Distance:     c.Distance,
			Weight:       c.Weight,
			Cost:         c.Cost,
			CalculatedAt: c.CalculatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
