package ports

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderFilter describes the optional search criteria for orders.
// Filters combine with logical AND; a nil field means no constraint
// on that attribute.
type OrderFilter struct {
	// CustomerEmail filters by case-sensitive substring containment,
	// not exact match.
	CustomerEmail *string

	// Status filters by exact order status.
	Status *order.Status

	// FromDate is the inclusive lower bound on the order date.
	FromDate *time.Time

	// ToDate is the inclusive upper bound on the order date.
	ToDate *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
// Mutating operations (Add, Update, Delete) are staged within the current
// unit of work transaction and only become durable on commit. Listing
// operations return orders sorted by order date, most recent first.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order aggregate from storage. Deletion is
	// destructive; there is no soft delete.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, sorted by order date descending.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Search retrieves the orders matching the filter, sorted by order
	// date descending. An empty filter is equivalent to GetAll.
	Search(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
