package repositories

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"errors"
	"fmt"
	"time"
)

// SQLite-backed implementation of the CoefficientStore port.
// The table holds exactly one row with id = 1.
type SqliteCoefficientStore struct{ DB *sql.DB }

func NewSqliteCoefficientStore(db *sql.DB) *SqliteCoefficientStore {
	return &SqliteCoefficientStore{DB: db}
}

// Return the coefficients currently in effect. If the record is missing
// (e.g. the table was wiped), the defaults are installed first.
func (s *SqliteCoefficientStore) Get(ctx context.Context) (domain.Coefficients, error) {
	if s.DB == nil {
		return domain.Coefficients{}, errors.New("coefficient store: DB is nil")
	}

	query := `
	SELECT distance_coefficient, weight_coefficient, updated_at
	FROM delivery_coefficients
	WHERE id = 1;
	`

	var c domain.Coefficients
	err := s.DB.QueryRowContext(ctx, query).Scan(
		&c.DistanceCoefficient,
		&c.WeightCoefficient,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		if err := EnsureDefaultCoefficients(s.DB); err != nil {
			return domain.Coefficients{}, fmt.Errorf("get coefficients: %w", err)
		}
		return domain.DefaultCoefficients(), nil
	}
	if err != nil {
		return domain.Coefficients{}, fmt.Errorf("get coefficients: query record: %w", err)
	}

	return c, nil
}

// Validate and replace the record. A single INSERT OR REPLACE keeps the
// write atomic, so readers never observe a half-updated pair.
func (s *SqliteCoefficientStore) Set(ctx context.Context, distanceCoefficient, weightCoefficient float64) (domain.Coefficients, error) {
	if s.DB == nil {
		return domain.Coefficients{}, errors.New("coefficient store: DB is nil")
	}

	c := domain.Coefficients{
		DistanceCoefficient: distanceCoefficient,
		WeightCoefficient:   weightCoefficient,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return domain.Coefficients{}, err
	}

	query := `
	INSERT OR REPLACE INTO delivery_coefficients (
		id,
		distance_coefficient,
		weight_coefficient,
		updated_at
	)
	VALUES (1, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		c.DistanceCoefficient,
		c.WeightCoefficient,
		c.UpdatedAt,
	)
	if err != nil {
		return domain.Coefficients{}, fmt.Errorf("set coefficients: replace record: %w", err)
	}

	return c, nil
}
