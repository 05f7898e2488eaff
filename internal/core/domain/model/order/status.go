package order

import (
	"errors"
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the underlying cause carried by errors returned
// when a requested status change is not allowed by the state machine.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Paid ──> Cancelled
//	          │               ^
//	          └───────────────┘
//
// Cancelled is a terminal state with no outgoing transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status have not been paid yet.
	Pending

	// Paid indicates the order has been paid successfully.
	// Paid orders can still be cancelled (refund flow).
	Paid

	// Cancelled indicates the order has been cancelled.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Accepted values are "Pending", "Paid", and "Cancelled" (case-sensitive).
//
// Returns:
//   - the parsed Status on success
//   - error with details if the string does not name a valid status
//
// This function is used at the boundary when parsing statuses from
// HTTP requests or query parameters.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending", "Paid", or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether a transition from the current status to the
// target status is allowed. It is a pure table lookup with no side effects.
//
// Allowed transitions:
//   - Pending -> Paid
//   - Pending -> Cancelled
//   - Paid -> Cancelled
//
// All other ordered pairs, including self-transitions and the reverse of any
// listed edge, are rejected. In particular there is no edge into Pending:
// once an order leaves its initial state it can never return to it.
func (s Status) CanTransitionTo(target Status) bool {
	switch {
	case s == Pending && target == Paid:
		return true
	case s == Pending && target == Cancelled:
		return true
	case s == Paid && target == Cancelled:
		return true
	default:
		return false
	}
}

// TransitionTo returns the target status when the transition is allowed.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) carrying ErrInvalidStatusTransition when the edge is not in
//     the transition table, or a validation error when target is not a valid
//     status at all
//
// This method is used by Order.UpdateStatus() to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatusTransition, s.String(), target.String()),
		)
	}

	return target, nil
}

// IsInvalidTransition reports whether err was caused by a rejected status
// transition. Used at the HTTP boundary to distinguish transition failures
// from other validation errors.
func IsInvalidTransition(err error) bool {
	var invalidErr *errs.ValueIsInvalidError
	if !errors.As(err, &invalidErr) {
		return false
	}
	return invalidErr.Cause != nil && errors.Is(invalidErr.Cause, ErrInvalidStatusTransition)
}
