package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"ordermanagement/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderNumberPattern pins the wire format of an order number:
// "ORD-" + 8-digit UTC date + "-" + 8 uppercase alphanumeric characters.
var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{8}$`)

// OrderNumber is a value object for the unique human-readable order number.
// It is assigned once at order creation and never changes afterwards.
// Uniqueness across all orders is enforced by the storage layer.
//
// Format: ORD-<yyyyMMdd>-<8 uppercase alphanumeric chars>, e.g.
// "ORD-20250117-9F3A41BC".
type OrderNumber struct {
	value string
}

// NewOrderNumber generates a fresh order number for the given creation time.
// The date part is derived from the UTC calendar date; the suffix is taken
// from the first eight characters of a new random UUID, uppercased.
func NewOrderNumber(createdAt time.Time) OrderNumber {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return OrderNumber{
		value: fmt.Sprintf("ORD-%s-%s", createdAt.UTC().Format("20060102"), suffix),
	}
}

// OrderNumberFromString reconstructs an order number from its string form.
// Returns an error when the string does not match the order number format.
// Used when rehydrating orders from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	number := OrderNumber{value: s}
	if err := number.Validate(); err != nil {
		return OrderNumber{}, err
	}
	return number, nil
}

// String returns the order number in its wire format.
// Implements the fmt.Stringer interface.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the order number matches the required format.
// A zero-value OrderNumber fails validation, so order numbers must be
// created via NewOrderNumber or OrderNumberFromString.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(n.value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match format ORD-<date>-<8 chars>", n.value),
		)
	}
	return nil
}
