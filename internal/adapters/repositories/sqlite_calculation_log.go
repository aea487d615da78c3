package repositories

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the CalculationLog port.
type SqliteCalculationLog struct{ DB *sql.DB }

func NewSqliteCalculationLog(db *sql.DB) *SqliteCalculationLog {
	return &SqliteCalculationLog{DB: db}
}

// Persist one computed estimate and return it with its assigned ID.
func (l *SqliteCalculationLog) Record(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	if l.DB == nil {
		return domain.Calculation{}, errors.New("calculation log: DB is nil")
	}

	query := `
	INSERT INTO delivery_calculations (distance, weight, cost, calculated_at)
	VALUES (?, ?, ?, ?);
	`
	res, err := l.DB.ExecContext(ctx, query, calc.Distance, calc.Weight, calc.Cost, calc.CalculatedAt)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("record calculation: insert row: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("record calculation: last insert id: %w", err)
	}

	calc.ID = id
	return calc, nil
}

// Return one page of recorded estimates, newest first.
func (l *SqliteCalculationLog) ListRecent(ctx context.Context, page, perPage int) ([]domain.Calculation, error) {
	if l.DB == nil {
		return nil, errors.New("calculation log: DB is nil")
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	query := `
	SELECT id, distance, weight, cost, calculated_at
	FROM delivery_calculations
	ORDER BY calculated_at DESC, id DESC
	LIMIT ? OFFSET ?;
	`
	rows, err := l.DB.QueryContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: query rows: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Calculation, 0, perPage)
	for rows.Next() {
		var c domain.Calculation
		if err := rows.Scan(&c.ID, &c.Distance, &c.Weight, &c.Cost, &c.CalculatedAt); err != nil {
			return nil, fmt.Errorf("list calculations: scan row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: row iteration: %w", err)
	}

	return out, nil
}
