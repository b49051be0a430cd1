package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/libris/internal/platform/constants"
	"github.com/taibuivan/libris/internal/platform/i18n"
)

// Cache stores provider results by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisCache implements [Cache] on a go-redis client.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed [Cache].
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get returns the cached value for key.

Returns:
  - string: The cached translation
  - bool: false when the key is absent or expired
  - error: connectivity errors
*/
func (cache *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis_translation_get_failed: %w", err)
	}
	return value, true, nil
}

// Set stores value under key for ttl.
func (cache *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := cache.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_translation_set_failed: %w", err)
	}
	return nil
}

// CachedTranslator serves repeated translations from a [Cache] and only asks
// the wrapped [Translator] on a miss. Cache failures fall through to the provider.
type CachedTranslator struct {
	next   Translator
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedTranslator wraps next with cache.
func NewCachedTranslator(next Translator, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedTranslator {
	return &CachedTranslator{next: next, cache: cache, ttl: ttl, logger: logger}
}

// Translate implements [Translator].
func (translator *CachedTranslator) Translate(ctx context.Context, text string, source, target i18n.Lang) (string, error) {
	key := cacheKey(text, source, target)

	cached, found, err := translator.cache.Get(ctx, key)
	if err != nil {
		translator.logger.WarnContext(ctx, "translation_cache_unavailable", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	translated, err := translator.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if err := translator.cache.Set(ctx, key, translated, translator.ttl); err != nil {
		translator.logger.WarnContext(ctx, "translation_cache_unavailable", slog.Any("error", err))
	}
	return translated, nil
}

// cacheKey is translate:<source>:<target>:<sha256 of text>.
func cacheKey(text string, source, target i18n.Lang) string {
	sum := sha256.Sum256([]byte(text))
	return constants.RedisPrefixTranslation + source.String() + ":" + target.String() + ":" + hex.EncodeToString(sum[:])
}
