package app

import (
	"context"

	"github.com/mbsaloka/AutoEssayGrader/internal/config"
	"github.com/mbsaloka/AutoEssayGrader/internal/kv"
	"github.com/mbsaloka/AutoEssayGrader/internal/logger"
	"github.com/mbsaloka/AutoEssayGrader/internal/redis"
)

type Infra struct {
	Fallback kv.Store
}

// setupInfra picks the fallback session store. Redis wins when
// configured, then SQLite, then an in-memory store for development.
func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	switch {
	case cfg.RedisAddr != "":
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		logger.Info("redis fallback store ready", map[string]any{
			"addr": cfg.RedisAddr,
		})
		return &Infra{Fallback: kv.NewRedisStore(redisClient.Client, "")}, nil

	case cfg.SQLitePath != "":
		store, err := kv.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite fallback store ready", map[string]any{
			"path": cfg.SQLitePath,
		})
		return &Infra{Fallback: store}, nil

	default:
		logger.Warn("using in-memory fallback store", nil)
		return &Infra{Fallback: kv.NewMemoryStore()}, nil
	}
}
