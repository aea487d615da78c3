package handlers

import (
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/metrics"
	"delivery-cost-service/internal/ports"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// ContactHandler stores and lists contact form submissions.
type ContactHandler struct {
	Repo ports.ContactRepository
}

// Submit accepts a contact form message from the website.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ContactRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	sub := domain.ContactSubmission{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: time.Now().UTC(),
	}
	if err := sub.Validate(); err != nil {
		writeServiceError(w, r, err)
		return
	}

	saved, err := h.Repo.Save(r.Context(), sub)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	metrics.RecordContactSubmission()

	res := dto.ContactResponse{
		SubmissionID: saved.ID,
		Message:      "Thank you for your message! We'll get back to you soon.",
	}
	writeJSON(w, r, http.StatusOK, res)
}

// List returns one page of recent submissions for the admin view.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	page := pageParam(r)

	subs, err := h.Repo.ListRecent(r.Context(), page, listPageSize)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListContactsResponse{
		Page:     page,
		Contacts: make([]dto.ContactItemResponse, 0, len(subs)),
	}
	for _, s := range subs {
		res.Contacts = append(res.Contacts, dto.ContactItemResponse{
			ID:          s.ID,
			Name:        s.Name,
			Email:       s.Email,
			Phone:       s.Phone,
			Message:     s.Message,
			SubmittedAt: s.SubmittedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
