package main

import (
	"database/sql"
	"delivery-cost-service/internal/adapters/repositories"
	"delivery-cost-service/internal/api"
	"delivery-cost-service/internal/config"
	"delivery-cost-service/internal/platform/db"
	"delivery-cost-service/internal/ports"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the concrete storage adapter behind the ports and starts the
// HTTP server. Postgres is used when DATABASE_URL is configured; a local
// SQLite file otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, store, calcLog, contacts, err := openStorage(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	router := api.NewRouter(store, calcLog, contacts)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStorage connects to the configured database, initializes the
// schema, seeds the default coefficient record, and returns the
// storage adapters.
func openStorage(cfg *config.Config) (
	*sql.DB,
	ports.CoefficientStore,
	ports.CalculationLog,
	ports.ContactRepository,
	error,
) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		if err := repositories.InitSchemaPostgres(conn); err != nil {
			return nil, nil, nil, nil, err
		}
		if err := repositories.EnsureDefaultCoefficientsPostgres(conn); err != nil {
			return nil, nil, nil, nil, err
		}

		return conn,
			repositories.NewSQLCoefficientStore(conn),
			repositories.NewSQLCalculationLog(conn),
			repositories.NewSQLContactRepository(conn),
			nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if err := repositories.InitSchema(conn); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := repositories.EnsureDefaultCoefficients(conn); err != nil {
		return nil, nil, nil, nil, err
	}

	return conn,
		repositories.NewSqliteCoefficientStore(conn),
		repositories.NewSqliteCalculationLog(conn),
		repositories.NewSqliteContactRepository(conn),
		nil
}
