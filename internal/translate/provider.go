package translate

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/libris/internal/platform/config"
)

// NewProvider builds the configured [Translator]. A nil client leaves the
// provider uncached.
func NewProvider(cfg config.TranslateConfig, client *redis.Client, logger *slog.Logger) Translator {
	var translator Translator = NewGoogleTranslator(GoogleConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		RPS:     cfg.RPS,
	})

	if client == nil {
		return translator
	}
	return NewCachedTranslator(translator, NewRedisCache(client), cfg.CacheTTL, logger)
}
