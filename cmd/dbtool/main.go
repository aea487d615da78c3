package main

import (
	"database/sql"
	"delivery-cost-service/internal/adapters/repositories"
	"delivery-cost-service/internal/config"
	"delivery-cost-service/internal/platform/db"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool initializes the database schema and installs the default
// coefficient record without starting the server. Safe to run on an
// already-initialized database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var conn *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(cfg.DatabaseURL)
	} else {
		conn, err = db.OpenSQLite(cfg.DBPath)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if cfg.DatabaseURL != "" {
		if err := repositories.InitSchemaPostgres(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		if err := repositories.EnsureDefaultCoefficientsPostgres(conn); err != nil {
			log.Fatalf("default coefficients failed: %v", err)
		}
	} else {
		if err := repositories.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		if err := repositories.EnsureDefaultCoefficients(conn); err != nil {
			log.Fatalf("default coefficients failed: %v", err)
		}
	}
	log.Println("Schema ready, default coefficients installed.")
}
