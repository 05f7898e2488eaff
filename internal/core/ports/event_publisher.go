package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
)

// EventPublisher delivers domain events to registered observers.
//
// Publication is fire-and-forget: implementations must deliver events
// at-most-once, synchronously, and must never surface observer failures
// to the caller. Command handlers publish events strictly after a
// successful commit, so a failed delivery never rolls back an already
// committed state change.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent)
}
