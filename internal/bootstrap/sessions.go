package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renoh/cafe-web/config"
	"github.com/renoh/cafe-web/internal/adapters/memstore"
	redisstore "github.com/renoh/cafe-web/internal/adapters/redis"
	"github.com/renoh/cafe-web/internal/ports"
)

// ConnectRedis dials Redis and verifies the connection.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Addr},
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.InfoContext(ctx, "connected to redis", "addr", cfg.Addr)
	return client, nil
}

// NewSessionStore selects the session store backend from config. The
// returned closer owns the backing connection and may be nil for the
// in-memory backend.
func NewSessionStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (ports.SessionStore, io.Closer, error) {
	if cfg.Session.Backend == config.SessionBackendMemory {
		logger.WarnContext(ctx, "using in-memory session store; sessions will not survive restarts")
		return memstore.NewSessionStore(), nil, nil
	}

	client, err := ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	return redisstore.NewSessionStoreWithPrefix(client, cfg.Session.KeyPrefix), client, nil
}
