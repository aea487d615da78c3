package repositories

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the ContactRepository port.
type SqliteContactRepository struct{ DB *sql.DB }

func NewSqliteContactRepository(db *sql.DB) *SqliteContactRepository {
	return &SqliteContactRepository{DB: db}
}

// Persist one submission and return it with its assigned ID.
func (r *SqliteContactRepository) Save(ctx context.Context, sub domain.ContactSubmission) (domain.ContactSubmission, error) {
	if r.DB == nil {
		return domain.ContactSubmission{}, errors.New("contact repository: DB is nil")
	}

	query := `
	INSERT INTO contact_submissions (name, email, phone, message, submitted_at)
	VALUES (?, ?, ?, ?, ?);
	`
	res, err := r.DB.ExecContext(ctx, query, sub.Name, sub.Email, sub.Phone, sub.Message, sub.SubmittedAt)
	if err != nil {
		return domain.ContactSubmission{}, fmt.Errorf("save contact: insert row: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.ContactSubmission{}, fmt.Errorf("save contact: last insert id: %w", err)
	}

	sub.ID = id
	return sub, nil
}

// Return one page of submissions, newest first.
func (r *SqliteContactRepository) ListRecent(ctx context.Context, page, perPage int) ([]domain.ContactSubmission, error) {
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
	LIMIT ? OFFSET ?;
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
