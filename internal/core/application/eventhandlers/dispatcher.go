// Package eventhandlers delivers domain events to registered observers after
// commands commit. Delivery is synchronous, at-most-once, and best-effort: a
// failing observer is logged and skipped, and never affects the committed
// state change or the remaining observers.
package eventhandlers

import (
	"context"
	"log/slog"

	"ordermanagement/internal/core/domain/model/order"
)

// EventHandler processes a single domain event.
type EventHandler interface {
	Handle(ctx context.Context, event order.DomainEvent) error
}

// Dispatcher fans domain events out to registered handlers.
// Implements ports.EventPublisher.
type Dispatcher struct {
	handlers []EventHandler
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher with no registered handlers.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "event_dispatcher"),
	}
}

// Register adds a handler to the dispatch list. Handlers are invoked in
// registration order. Not safe for concurrent use with Publish; register
// everything during composition.
func (d *Dispatcher) Register(handler EventHandler) {
	d.handlers = append(d.handlers, handler)
}

// Publish delivers the event to every registered handler in order.
// Handler errors are logged and swallowed; publication never fails.
func (d *Dispatcher) Publish(ctx context.Context, event order.DomainEvent) {
	for _, handler := range d.handlers {
		if err := handler.Handle(ctx, event); err != nil {
			d.logger.ErrorContext(ctx, "event handler failed",
				"event", event.EventName(),
				"error", err,
			)
		}
	}
}
