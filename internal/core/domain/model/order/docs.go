// Package order provides domain entities and business logic for order management.
// It implements the Order aggregate root with lifecycle management and state
// transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - OrderNumber: A value object for the human-readable order number
//   - Domain events raised on order creation and status changes
//
// Key business rules:
//   - Orders must have a valid identifier, order number, customer email,
//     order date, and a total amount greater than zero
//   - Order status follows a defined workflow: Pending -> Paid -> Cancelled,
//     with direct cancellation from Pending also allowed
//   - Cancelled is a terminal state with no outgoing transitions
//   - All fields except status are write-once at construction
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
