package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/libris/internal/platform/i18n"
)

// Filler is the translation fill service.
type Filler struct {
	translator Translator
	enabled    bool
	logger     *slog.Logger
}

// NewFiller builds a [Filler]. When enabled is false every call is a no-op,
// which keeps tests and offline environments away from the provider.
func NewFiller(translator Translator, enabled bool, logger *slog.Logger) *Filler {
	return &Filler{
		translator: translator,
		enabled:    enabled,
		logger:     logger,
	}
}

// Enabled reports whether the filler calls the provider at all.
func (filler *Filler) Enabled() bool {
	return filler.enabled
}

/*
Fill translates every pair into each target language whose variant on rec is
still empty, then writes the results through store.

Pairs naming a field the record does not have are skipped. A failed provider
call leaves that variant empty. Fill never returns an error: a failed write is
logged and reported as no updates.

Returns:
  - []Update: The variants that were written
*/
func (filler *Filler) Fill(ctx context.Context, store Store, rec Record, pairs []Pair) []Update {
	if !filler.enabled {
		return nil
	}

	var updates []Update
	for _, pair := range pairs {
		if strings.TrimSpace(pair.Text) == "" {
			continue
		}

		current, ok := rec.Field(pair.Field)
		if !ok {
			continue
		}

		for _, target := range i18n.Targets {
			if strings.TrimSpace(current.Variant(target)) != "" {
				continue
			}

			translated, err := filler.translator.Translate(ctx, pair.Text, i18n.Source, target)
			if err != nil {
				filler.logger.WarnContext(ctx, "translation_failed",
					slog.String("field", pair.Field),
					slog.String("source", i18n.Source.String()),
					slog.String("target", target.String()),
					slog.Int("record_id", rec.ID),
					slog.Any("error", err),
				)
				continue
			}

			if strings.TrimSpace(translated) == "" {
				continue
			}

			updates = append(updates, Update{Field: pair.Field, Lang: target, Value: translated})
		}
	}

	if len(updates) == 0 {
		return nil
	}

	if err := store.SaveTranslations(ctx, rec.ID, updates); err != nil {
		filler.logger.ErrorContext(ctx, "translation_save_failed",
			slog.Int("record_id", rec.ID),
			slog.Int("updates", len(updates)),
			slog.Any("error", err),
		)
		return nil
	}

	filler.logger.DebugContext(ctx, "translations_filled",
		slog.Int("record_id", rec.ID),
		slog.Int("updates", len(updates)),
	)
	return updates
}
