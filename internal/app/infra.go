package app

import (
	"context"
	"database/sql"

	"climblog/internal/config"
	"climblog/internal/db"
	"climblog/internal/logger"
	"climblog/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client // nil when REDIS_ADDR is unset
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunKeystoneMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	infra := &Infra{DB: &db.DB{DB: sqlDB}}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	} else {
		logger.Warn("REDIS_ADDR not set, sessions held in process memory", nil)
	}

	return infra, nil
}

func (i *Infra) Close() error {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	return i.DB.Close()
}
