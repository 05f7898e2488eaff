package commands

import (
	"errors"

	"ordermanagement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrTotalAmountIsInvalid    = errors.New("total amount must be greater than 0")
)

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the customer email and the order's total amount.
//
// The command performs request-level validation (non-empty email, positive
// amount); the Order aggregate independently enforces its own invariants
// when the handler constructs it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("customer@example.com", decimal.NewFromFloat(100.00))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail string
	totalAmount   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer email is not empty and the total amount is
// strictly positive. Returns an error if any validation fails.
func NewCreateOrderCommand(customerEmail string, totalAmount decimal.Decimal) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerEmail returns the customer's email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// TotalAmount returns the order's total amount.
func (c CreateOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}
