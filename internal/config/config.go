// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gurkanbulca/kanban/internal/database"
	"github.com/gurkanbulca/kanban/internal/middleware"
)

// Storage backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Validation ValidationConfig
	Log        LogConfig
}

type ServerConfig struct {
	GRPCPort         string
	HTTPPort         string
	Environment      string
	EnableReflection bool
	ShutdownTimeout  time.Duration
}

// StorageConfig selects where the board document lives.
type StorageConfig struct {
	Backend     string
	Key         string
	FilePath    string
	SQLitePath  string
	AutoMigrate bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ValidationConfig struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxLabelsPerTask     int
	MaxLabelLength       int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			GRPCPort:         getEnv("GRPC_PORT", "50051"),
			HTTPPort:         getEnv("HTTP_PORT", "8080"),
			Environment:      getEnv("ENVIRONMENT", "development"),
			EnableReflection: getEnvAsBool("ENABLE_REFLECTION", true),
			ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Backend:     strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
			Key:         getEnv("STORAGE_KEY", "kanbanState"),
			FilePath:    getEnv("STORAGE_FILE", "kanban.json"),
			SQLitePath:  getEnv("SQLITE_PATH", "kanban.db"),
			AutoMigrate: getEnvAsBool("AUTO_MIGRATE", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "kanban"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Validation: ValidationConfig{
			MaxTitleLength:       getEnvAsInt("MAX_TITLE_LENGTH", 200),
			MaxDescriptionLength: getEnvAsInt("MAX_DESCRIPTION_LENGTH", 5000),
			MaxLabelsPerTask:     getEnvAsInt("MAX_LABELS_PER_TASK", 20),
			MaxLabelLength:       getEnvAsInt("MAX_LABEL_LENGTH", 50),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultLogFormat()),
		},
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ValidateConfig reports every problem found, joined.
func (c *Config) ValidateConfig() error {
	var errs []error

	for name, port := range map[string]string{"GRPC_PORT": c.Server.GRPCPort, "HTTP_PORT": c.Server.HTTPPort} {
		if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
			errs = append(errs, fmt.Errorf("%s must be a port number, got %q", name, port))
		}
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	if c.Storage.Key == "" {
		errs = append(errs, errors.New("STORAGE_KEY is required"))
	}
	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.FilePath == "" {
			errs = append(errs, errors.New("STORAGE_FILE is required for the file backend"))
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite backend"))
		}
	case BackendPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres backend"))
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend))
	}

	v := c.Validation
	if v.MaxTitleLength <= 0 || v.MaxDescriptionLength <= 0 || v.MaxLabelsPerTask <= 0 || v.MaxLabelLength <= 0 {
		errs = append(errs, errors.New("validation limits must be positive"))
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func defaultLogFormat() string {
	if getEnv("ENVIRONMENT", "development") == "development" {
		return "console"
	}
	return "json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	// Try parsing as duration string (e.g., "15m", "24h")
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}

// ToDatabaseConfig maps the storage and database sections to a connection
// config. The driver follows the storage backend.
func (c *Config) ToDatabaseConfig() database.Config {
	driver := database.DriverPostgres
	if c.Storage.Backend == BackendSQLite {
		driver = database.DriverSQLite
	}
	return database.Config{
		Driver:     driver,
		Host:       c.Database.Host,
		Port:       c.Database.Port,
		User:       c.Database.User,
		Password:   c.Database.Password,
		DBName:     c.Database.DBName,
		SSLMode:    c.Database.SSLMode,
		SQLitePath: c.Storage.SQLitePath,
	}
}

// ToValidationConfig converts to the interceptor's validation config.
func (c *Config) ToValidationConfig() *middleware.ValidationConfig {
	return &middleware.ValidationConfig{
		MaxTitleLength:       c.Validation.MaxTitleLength,
		MaxDescriptionLength: c.Validation.MaxDescriptionLength,
		MaxLabelsPerTask:     c.Validation.MaxLabelsPerTask,
		MaxLabelLength:       c.Validation.MaxLabelLength,
	}
}
