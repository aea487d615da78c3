package ports

import (
	"context"
	"delivery-cost-service/internal/domain"
)

// Port: a boundary for storing contact form submissions.
type ContactRepository interface {
	// Persist one submission and return it with its assigned ID.
	Save(ctx context.Context, sub domain.ContactSubmission) (domain.ContactSubmission, error)

	// Return one page of submissions, newest first. Pages are 1-based.
	ListRecent(ctx context.Context, page, perPage int) ([]domain.ContactSubmission, error)
}
