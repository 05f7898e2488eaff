package commands

import (
	"errors"
	"time"

	"ordermanagement/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// CancelStaleOrdersCommand represents a request to cancel every Pending
// order placed at or before the cutoff time.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setCutoff(cutoff); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the inclusive upper bound on the order date.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CancelStaleOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
