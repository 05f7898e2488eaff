package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery retrieves orders matching a combination of optional
// filters. A nil filter field means no constraint on that attribute; all
// provided filters combine with logical AND.
//
// Example:
//
//	email := "alice@"
//	paid := order.Paid
//	query, err := NewSearchOrdersQuery(&email, &paid, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid search: %w", err)
//	}
//
//	handler := NewSearchOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type SearchOrdersQuery struct { //nolint:recvcheck //using for validation
	customerEmail *string
	status        *order.Status
	fromDate      *time.Time
	toDate        *time.Time

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query from optional filters.
// A provided status must be a valid order status; an inverted date range
// is accepted and simply matches nothing.
func NewSearchOrdersQuery(
	customerEmail *string,
	status *order.Status,
	fromDate *time.Time,
	toDate *time.Time,
) (SearchOrdersQuery, error) {
	searchQuery := SearchOrdersQuery{
		customerEmail: customerEmail,
		fromDate:      fromDate,
		toDate:        toDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := searchQuery.setStatus(status); err != nil {
		return SearchOrdersQuery{}, err
	}

	return searchQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrdersQueryIsNotConstructed if validation fails.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// CustomerEmail returns the email substring filter, or nil.
func (q SearchOrdersQuery) CustomerEmail() *string {
	return q.customerEmail
}

// Status returns the status filter, or nil.
func (q SearchOrdersQuery) Status() *order.Status {
	return q.status
}

// FromDate returns the inclusive lower bound on the order date, or nil.
func (q SearchOrdersQuery) FromDate() *time.Time {
	return q.fromDate
}

// ToDate returns the inclusive upper bound on the order date, or nil.
func (q SearchOrdersQuery) ToDate() *time.Time {
	return q.toDate
}

func (q *SearchOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}
