// internal/repository/open.go
package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/gurkanbulca/kanban/internal/config"
	"github.com/gurkanbulca/kanban/internal/database"
)

// OpenSlot builds the slot selected by the storage backend. SQL backends
// are migrated first when AutoMigrate is set.
func OpenSlot(ctx context.Context, cfg *config.Config) (Slot, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		log.Info().Str("path", cfg.Storage.FilePath).Msg("Using file storage")
		return NewFileSlot(cfg.Storage.FilePath), nil

	case config.BackendPostgres, config.BackendSQLite:
		db, err := database.Open(cfg.ToDatabaseConfig())
		if err != nil {
			return nil, err
		}
		if cfg.Storage.AutoMigrate {
			if err := database.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, err
			}
			log.Info().Msg("Slot table migrated")
		}
		slot, err := NewSQLSlot(db, cfg.Storage.Key)
		if err != nil {
			db.Close()
			return nil, err
		}
		return slot, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using redis storage")
		return NewRedisSlot(client, cfg.Storage.Key), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
