// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides a managed client for volatile data storage.

Libris uses it to cache machine translation results, so saving the same
text twice (or re-running the backfill) does not hit the provider again.

The cache is optional: when REDIS_URL is empty the client is never created
and translation goes straight to the provider.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/libris/internal/platform/config"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// NewClient connects to cfg.URL and pings it once.
//
// # Parameters
//   - context: Context for the initial ping.
//   - cfg: Redis URL and pool size.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	options, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// clientOptions parses the URL and applies pool sizing and timeouts.
func clientOptions(cfg config.RedisConfig) (*redis.Options, error) {
	options, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	if cfg.PoolSize > 0 {
		options.PoolSize = cfg.PoolSize
	}
	options.MinIdleConns = 1
	options.MaxIdleConns = max(options.PoolSize/2, 1)
	options.ClientName = "libris"

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	return options, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
