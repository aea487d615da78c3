package repositories

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQLCalculationLog is the Postgres implementation of the CalculationLog port.
type SQLCalculationLog struct{ DB *sql.DB }

func NewSQLCalculationLog(db *sql.DB) *SQLCalculationLog {
	return &SQLCalculationLog{DB: db}
}

// Persist one computed estimate and return it with its assigned ID.
func (l *SQLCalculationLog) Record(ctx context.Context, calc domain.Calculation) (_ domain.Calculation, err error) {
	defer obs.Time(ctx, "calculations.log.Record")(&err)

	if l.DB == nil {
		return domain.Calculation{}, errors.New("calculation log: DB is nil")
	}

	query := `
	INSERT INTO delivery_calculations (distance, weight, cost, calculated_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id;
	`
	err = l.DB.QueryRowContext(ctx, query, calc.Distance, calc.Weight, calc.Cost, calc.CalculatedAt).Scan(&calc.ID)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("record calculation: insert row: %w", err)
	}

	return calc, nil
}

// Return one page of recorded estimates, newest first.
func (l *SQLCalculationLog) ListRecent(ctx context.Context, page, perPage int) (_ []domain.Calculation, err error) {
	defer obs.Time(ctx, "calculations.log.ListRecent")(&err)

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
	LIMIT $1 OFFSET $2;
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
