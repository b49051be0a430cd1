// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package event carries post-write notifications from the persistence layer to
in-process subscribers.

Repositories publish a [Saved] event after a create or update commits.
Delivery is synchronous: Publish returns once every subscriber has run, so the
side effects of a write are finished (and visible to tests) when the write
call returns.

Subscribers cannot fail the write. They return nothing, and a panicking
subscriber is recovered and logged.
*/
package event

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
)

// Entity names the kind of record an event refers to.
type Entity string

const (
	Author Entity = "author"
	Book   Entity = "book"
)

// Action distinguishes inserts from updates.
type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
)

// Saved is published after a record was written successfully.
type Saved struct {
	Entity Entity
	ID     int
	Action Action
}

// Handler reacts to a [Saved] event.
type Handler func(ctx context.Context, evt Saved)

// Publisher is the write-side view of the bus used by repositories.
type Publisher interface {
	Publish(ctx context.Context, evt Saved)
}

// Bus is a synchronous, in-process event dispatcher.
//
// # Concurrency
//
// Subscribe is expected at startup; Publish is safe for concurrent use.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Entity][]Handler
	logger      *slog.Logger
}

// NewBus creates an empty [Bus].
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subscribers: make(map[Entity][]Handler),
		logger:      logger,
	}
}

// Subscribe registers handler for events about entity.
func (bus *Bus) Subscribe(entity Entity, handler Handler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers[entity] = append(bus.subscribers[entity], handler)
}

// Publish delivers evt to every subscriber of evt.Entity, in registration order.
func (bus *Bus) Publish(ctx context.Context, evt Saved) {
	bus.mu.RLock()
	handlers := bus.subscribers[evt.Entity]
	bus.mu.RUnlock()

	for _, handler := range handlers {
		bus.deliver(ctx, handler, evt)
	}
}

func (bus *Bus) deliver(ctx context.Context, handler Handler, evt Saved) {
	defer func() {
		if recovered := recover(); recovered != nil {
			stack := make([]byte, 2048)
			length := runtime.Stack(stack, false)

			bus.logger.ErrorContext(ctx, "event_subscriber_panicked",
				slog.String("entity", string(evt.Entity)),
				slog.Int("id", evt.ID),
				slog.Any("error", recovered),
				slog.String("stack", string(stack[:length])),
			)
		}
	}()

	handler(ctx, evt)
}

// Discard is a [Publisher] that drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, Saved) {}
