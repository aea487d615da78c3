package repositories

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQLContactRepository is the Postgres implementation of the
// ContactRepository port.
type SQLContactRepository struct{ DB *sql.DB }

func NewSQLContactRepository(db *sql.DB) *SQLContactRepository {
	return &SQLContactRepository{DB: db}
}

// Persist one submission and return it with its assigned ID.
func (r *SQLContactRepository) Save(ctx context.Context, sub domain.ContactSubmission) (_ domain.ContactSubmission, err error) {
	defer obs.Time(ctx, "contacts.repo.Save")(&err)

	if r.DB == nil {
		return domain.ContactSubmission{}, errors.New("contact repository: DB is nil")
	}

	query := `
	INSERT INTO contact_submissions (name, email, phone, message, submitted_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;
	`
	err = r.DB.QueryRowContext(ctx, query, sub.Name, sub.Email, sub.Phone, sub.Message, sub.SubmittedAt).Scan(&sub.ID)
	if err != nil {
		return domain.ContactSubmission{}, fmt.Errorf("save contact: insert row: %w", err)
	}

	return sub, nil
}

// Return one page of submissions, newest first.
func (r *SQLContactRepository) ListRecent(ctx context.Context, page, perPage int) (_ []domain.ContactSubmission, err error) {
	defer obs.Time(ctx, "contacts.repo.ListRecent")(&err)

	if r.DB == nil {
		return nil, errors.New("contact repository: DB is nil")
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	query := `
	SELECT id, name, email, COALESCE(phone, ''), message, submitted_at
	FROM contact_submissions
	ORDER BY submitted_at DESC, id DESC
	LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.QueryContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: query rows: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContactSubmission, 0, perPage)
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("list contacts: scan row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: row iteration: %w", err)
	}

	return out, nil
}
