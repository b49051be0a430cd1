package translate

import (
	"context"
	"log/slog"

	"github.com/taibuivan/libris/internal/platform/event"
)

// Hook runs the [Filler] after every committed create or update of a
// translatable record.
type Hook struct {
	filler *Filler
	logger *slog.Logger
	stores map[event.Entity]Store
}

// NewHook builds a [Hook] with no entities attached.
func NewHook(filler *Filler, logger *slog.Logger) *Hook {
	return &Hook{
		filler: filler,
		logger: logger,
		stores: make(map[event.Entity]Store),
	}
}

// Register attaches store to entity and subscribes the hook on bus.
func (hook *Hook) Register(bus *event.Bus, entity event.Entity, store Store) {
	hook.stores[entity] = store
	bus.Subscribe(entity, hook.Handle)
}

/*
Handle reloads the saved record and fills its missing variants.

A disabled filler, an unknown entity or a failed reload end the hook
silently after logging; the write that triggered it is never affected.
*/
func (hook *Hook) Handle(ctx context.Context, evt event.Saved) {
	if !hook.filler.Enabled() {
		return
	}

	store, ok := hook.stores[evt.Entity]
	if !ok {
		hook.logger.WarnContext(ctx, "translation_hook_unregistered", slog.String("entity", string(evt.Entity)))
		return
	}

	rec, err := store.LoadTranslatable(ctx, evt.ID)
	if err != nil {
		hook.logger.WarnContext(ctx, "translation_hook_load_failed",
			slog.String("entity", string(evt.Entity)),
			slog.Int("id", evt.ID),
			slog.Any("error", err),
		)
		return
	}

	hook.filler.Fill(ctx, store, rec, SourcePairs(rec))
}
