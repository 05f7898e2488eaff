package order

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from creation through payment or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order number
//   - Must have a non-empty, syntactically valid customer email
//   - Total amount must be strictly greater than zero
//   - Status transitions follow the edges defined by the Status state machine
//   - All fields except status are write-once at construction
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation: the only
// mutation allowed after construction is a status change through UpdateStatus.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the unique human-readable order number
	orderNumber OrderNumber

	// customerEmail is the customer's email address
	customerEmail string

	// orderDate is the UTC timestamp of order creation
	orderDate time.Time

	// totalAmount is the monetary total of the order (must be positive)
	totalAmount decimal.Decimal

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order for the given customer with the given total amount.
// This is the only way to create a brand-new order, ensuring all business
// invariants are maintained.
//
// The order is created in Pending status with a freshly generated id, order
// number, and the current UTC timestamp as its order date.
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error when the email is missing or malformed, or when
//     the total amount is not strictly greater than zero
func NewOrder(customerEmail string, totalAmount decimal.Decimal) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerEmail(customerEmail),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	order.id = kernel.NewUUID()
	order.orderNumber = NewOrderNumber(now)
	order.orderDate = now

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// All fields are validated; the status may be any valid status, not just
// Pending. This is used by the persistence layer when rehydrating aggregates
// and must never be used to create new orders.
func RestoreOrder(
	id kernel.UUID,
	orderNumber OrderNumber,
	customerEmail string,
	orderDate time.Time,
	totalAmount decimal.Decimal,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerEmail(customerEmail),
		order.setOrderDate(orderDate),
		order.setTotalAmount(totalAmount),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the order's human-readable order number.
func (o *Order) OrderNumber() OrderNumber {
	return o.orderNumber
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// OrderDate returns the UTC timestamp at which the order was created.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// TotalAmount returns the monetary total of the order.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CanTransitionTo reports whether the order may transition to the target
// status from its current status. Pure check, no side effects.
func (o *Order) CanTransitionTo(target Status) bool {
	return o.status.CanTransitionTo(target)
}

// UpdateStatus transitions the order to the target status.
//
// This method enforces the status state machine: the only allowed edges are
// Pending->Paid, Pending->Cancelled, and Paid->Cancelled. On an illegal edge
// the order is left completely unchanged and an error carrying
// ErrInvalidStatusTransition is returned.
//
// The status field is the only field this method touches.
func (o *Order) UpdateStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the order's order number.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerEmail validates and sets the customer email.
// The email must be non-empty and a syntactically valid address without a
// display name. This is a private method used only during construction.
func (o *Order) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	addr, err := mail.ParseAddress(customerEmail)
	if err != nil || addr.Address != customerEmail {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerEmail",
			fmt.Errorf("%q is not a valid email address", customerEmail),
		)
	}

	o.customerEmail = customerEmail
	return nil
}

// setOrderDate validates and sets the order date.
// This is a private method used only during construction.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate.UTC()
	return nil
}

// setTotalAmount validates and sets the total amount.
// The amount must be strictly greater than zero.
// This is a private method used only during construction.
func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%s is not greater than 0", totalAmount),
		)
	}
	o.totalAmount = totalAmount
	return nil
}

// setStatus validates and sets the status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
