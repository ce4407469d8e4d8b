// internal/database/db.go
package database

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config for database connection
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	// SQLitePath is the database file (or ":memory:") for the sqlite driver.
	SQLitePath string
}

// DSN builds the driver-specific connection string.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		// foreign keys must be on for ent's sqlite migrator
		return fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", c.SQLitePath)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// DialectOf maps a database/sql driver name to the ent dialect.
func DialectOf(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return dialect.Postgres, nil
	case DriverSQLite:
		return dialect.SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the database and verifies the connection.
func Open(cfg Config) (*sqlx.DB, error) {
	if _, err := DialectOf(cfg.Driver); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Str("driver", cfg.Driver).Msg("Connected to database")
	return db, nil
}

// Migrate creates or updates the slot table using ent's schema migrator.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	name, err := DialectOf(db.DriverName())
	if err != nil {
		return err
	}

	drv := entsql.OpenDB(name, db.DB)
	migrate, err := schema.NewMigrate(drv,
		schema.WithDropIndex(true),
		schema.WithDropColumn(true),
		schema.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := migrate.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("run migration: %w", err)
	}
	return nil
}
