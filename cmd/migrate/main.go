// cmd/migrate/main.go
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gurkanbulca/kanban/internal/config"
	"github.com/gurkanbulca/kanban/internal/database"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := config.NewLogger(cfg.Log, os.Stderr)

	if cfg.Storage.Backend != config.BackendPostgres && cfg.Storage.Backend != config.BackendSQLite {
		logger.Fatal().Str("backend", cfg.Storage.Backend).Msg("Migrations apply to the postgres and sqlite backends only")
	}

	db, err := database.Open(cfg.ToDatabaseConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	logger.Info().Msg("Running database migrations...")
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Info().Msg("Migrations completed successfully")
}
