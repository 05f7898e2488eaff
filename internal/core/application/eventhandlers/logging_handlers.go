package eventhandlers

import (
	"context"
	"log/slog"

	"ordermanagement/internal/core/domain/model/order"
)

// OrderCreatedLogger logs a structured record for every created order.
type OrderCreatedLogger struct {
	logger *slog.Logger
}

// NewOrderCreatedLogger creates a logging handler for OrderCreated events.
func NewOrderCreatedLogger(logger *slog.Logger) *OrderCreatedLogger {
	return &OrderCreatedLogger{logger: logger.With("component", "order_created_handler")}
}

// Handle logs the creation. Events of other types are ignored.
func (h *OrderCreatedLogger) Handle(ctx context.Context, event order.DomainEvent) error {
	created, ok := event.(order.OrderCreatedEvent)
	if !ok {
		return nil
	}

	h.logger.InfoContext(ctx, "order created",
		"event_id", created.EventID.String(),
		"occurred_at", created.OccurredAtUTC,
		"order_id", created.OrderID.String(),
		"order_number", created.OrderNumber.String(),
		"customer_email", created.CustomerEmail,
		"total_amount", created.TotalAmount.String(),
	)
	return nil
}

// OrderStatusChangedLogger logs a structured record for every status change.
type OrderStatusChangedLogger struct {
	logger *slog.Logger
}

// NewOrderStatusChangedLogger creates a logging handler for OrderStatusChanged events.
func NewOrderStatusChangedLogger(logger *slog.Logger) *OrderStatusChangedLogger {
	return &OrderStatusChangedLogger{logger: logger.With("component", "order_status_changed_handler")}
}

// Handle logs the transition. Events of other types are ignored.
func (h *OrderStatusChangedLogger) Handle(ctx context.Context, event order.DomainEvent) error {
	changed, ok := event.(order.OrderStatusChangedEvent)
	if !ok {
		return nil
	}

	h.logger.InfoContext(ctx, "order status changed",
		"event_id", changed.EventID.String(),
		"occurred_at", changed.OccurredAtUTC,
		"order_id", changed.OrderID.String(),
		"order_number", changed.OrderNumber.String(),
		"old_status", changed.OldStatus.String(),
		"new_status", changed.NewStatus.String(),
	)
	return nil
}
