package repositories

import (
	"database/sql"
	"delivery-cost-service/internal/domain"
	"errors"
	"fmt"
	"time"
)

// Initialize the Postgres database schema.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCoefficientsQuery := `
	CREATE TABLE IF NOT EXISTS delivery_coefficients (
		id INTEGER PRIMARY KEY,
		distance_coefficient DOUBLE PRECISION NOT NULL,
		weight_coefficient DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`

	createCalculationsQuery := `
	CREATE TABLE IF NOT EXISTS delivery_calculations (
		id BIGSERIAL PRIMARY KEY,
		distance DOUBLE PRECISION NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		calculated_at TIMESTAMPTZ NOT NULL
	);
	`

	createContactsQuery := `
	CREATE TABLE IF NOT EXISTS contact_submissions (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		message TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_delivery_calculations_calculated_at
	ON delivery_calculations(calculated_at);
	`

	statements := []string{
		createCoefficientsQuery,
		createCalculationsQuery,
		createContactsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Install the default coefficient record if none exists yet.
func EnsureDefaultCoefficientsPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("ensure defaults: DB is nil")
	}

	query := `
	INSERT INTO delivery_coefficients (id, distance_coefficient, weight_coefficient, updated_at)
	VALUES (1, $1, $2, $3)
	ON CONFLICT (id) DO NOTHING;
	`
	_, err := db.Exec(query,
		domain.DefaultDistanceCoefficient,
		domain.DefaultWeightCoefficient,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("ensure defaults: insert coefficient record: %w", err)
	}

	return nil
}
