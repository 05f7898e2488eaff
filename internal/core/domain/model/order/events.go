package order

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DomainEvent is implemented by all events raised by the order aggregate.
// Events are observations of committed state changes; delivery to observers
// is at-most-once and best-effort, and never affects the state change itself.
type DomainEvent interface {
	// EventName returns the stable name of the event type.
	EventName() string
}

// OrderCreatedEvent is raised after a new order has been persisted.
type OrderCreatedEvent struct {
	EventID       kernel.UUID
	OccurredAtUTC time.Time

	OrderID       kernel.UUID
	OrderNumber   OrderNumber
	CustomerEmail string
	TotalAmount   decimal.Decimal
}

// NewOrderCreatedEvent builds an OrderCreatedEvent carrying the identifying
// fields of the freshly created order.
func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventID:       kernel.NewUUID(),
		OccurredAtUTC: time.Now().UTC(),
		OrderID:       o.ID(),
		OrderNumber:   o.OrderNumber(),
		CustomerEmail: o.CustomerEmail(),
		TotalAmount:   o.TotalAmount(),
	}
}

// EventName returns the stable name of the event type.
func (OrderCreatedEvent) EventName() string {
	return "order.created"
}

// OrderStatusChangedEvent is raised after an order's status change has been
// persisted. OldStatus is the status before the transition, NewStatus the
// status after it.
type OrderStatusChangedEvent struct {
	EventID       kernel.UUID
	OccurredAtUTC time.Time

	OrderID     kernel.UUID
	OrderNumber OrderNumber
	OldStatus   Status
	NewStatus   Status
}

// NewOrderStatusChangedEvent builds an OrderStatusChangedEvent for an order
// that has already transitioned; oldStatus is the status it transitioned from.
func NewOrderStatusChangedEvent(o *Order, oldStatus Status) OrderStatusChangedEvent {
	return OrderStatusChangedEvent{
		EventID:       kernel.NewUUID(),
		OccurredAtUTC: time.Now().UTC(),
		OrderID:       o.ID(),
		OrderNumber:   o.OrderNumber(),
		OldStatus:     oldStatus,
		NewStatus:     o.Status(),
	}
}

// EventName returns the stable name of the event type.
func (OrderStatusChangedEvent) EventName() string {
	return "order.status_changed"
}
