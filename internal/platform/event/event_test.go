package event_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/libris/internal/platform/event"
)

func TestBus_PublishDeliversInOrder(t *testing.T) {
	bus := event.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var calls []string
	bus.Subscribe(event.Book, func(_ context.Context, evt event.Saved) {
		calls = append(calls, "first")
		assert.Equal(t, 7, evt.ID)
	})
	bus.Subscribe(event.Book, func(_ context.Context, _ event.Saved) {
		calls = append(calls, "second")
	})
	bus.Subscribe(event.Author, func(_ context.Context, _ event.Saved) {
		calls = append(calls, "author")
	})

	bus.Publish(context.Background(), event.Saved{Entity: event.Book, ID: 7, Action: event.Created})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBus_PanickingSubscriberIsContained(t *testing.T) {
	bus := event.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))

	reached := false
	bus.Subscribe(event.Author, func(context.Context, event.Saved) { panic("boom") })
	bus.Subscribe(event.Author, func(context.Context, event.Saved) { reached = true })

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), event.Saved{Entity: event.Author, ID: 1, Action: event.Updated})
	})
	assert.True(t, reached)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		event.Discard.Publish(context.Background(), event.Saved{Entity: event.Book, ID: 1})
	})
}
