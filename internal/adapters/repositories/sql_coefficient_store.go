package repositories

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/obs"
	"errors"
	"fmt"
	"time"
)

// SQLCoefficientStore is the Postgres implementation of the
// CoefficientStore port. The table holds exactly one row with id = 1.
type SQLCoefficientStore struct{ DB *sql.DB }

func NewSQLCoefficientStore(db *sql.DB) *SQLCoefficientStore {
	return &SQLCoefficientStore{DB: db}
}

// Return the coefficients currently in effect. If the record is missing,
// the defaults are installed first.
func (s *SQLCoefficientStore) Get(ctx context.Context) (_ domain.Coefficients, err error) {
	defer obs.Time(ctx, "coefficients.store.Get")(&err)

	if s.DB == nil {
		return domain.Coefficients{}, errors.New("coefficient store: DB is nil")
	}

	query := `
	SELECT distance_coefficient, weight_coefficient, updated_at
	FROM delivery_coefficients
	WHERE id = 1;
	`

	var c domain.Coefficients
	err = s.DB.QueryRowContext(ctx, query).Scan(
		&c.DistanceCoefficient,
		&c.WeightCoefficient,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		if err = EnsureDefaultCoefficientsPostgres(s.DB); err != nil {
			return domain.Coefficients{}, fmt.Errorf("get coefficients: %w", err)
		}
		return domain.DefaultCoefficients(), nil
	}
	if err != nil {
		return domain.Coefficients{}, fmt.Errorf("get coefficients: query record: %w", err)
	}

	return c, nil
}

// Validate and replace the record with a single upsert statement, so
// readers never observe a half-updated pair.
func (s *SQLCoefficientStore) Set(ctx context.Context, distanceCoefficient, weightCoefficient float64) (_ domain.Coefficients, err error) {
	defer obs.Time(ctx, "coefficients.store.Set")(&err)

	if s.DB == nil {
		return domain.Coefficients{}, errors.New("coefficient store: DB is nil")
	}

	c := domain.Coefficients{
		DistanceCoefficient: distanceCoefficient,
		WeightCoefficient:   weightCoefficient,
		UpdatedAt:           time.Now().UTC(),
	}
	if err = c.Validate(); err != nil {
		return domain.Coefficients{}, err
	}

	query := `
	INSERT INTO delivery_coefficients (id, distance_coefficient, weight_coefficient, updated_at)
	VALUES (1, $1, $2, $3)
	ON CONFLICT (id) DO UPDATE
	SET distance_coefficient = EXCLUDED.distance_coefficient,
		weight_coefficient = EXCLUDED.weight_coefficient,
		updated_at = EXCLUDED.updated_at;
	`
	_, err = s.DB.ExecContext(ctx, query,
		c.DistanceCoefficient,
		c.WeightCoefficient,
		c.UpdatedAt,
	)
	if err != nil {
		return domain.Coefficients{}, fmt.Errorf("set coefficients: upsert record: %w", err)
	}

	return c, nil
}
