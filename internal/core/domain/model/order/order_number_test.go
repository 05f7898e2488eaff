package order_test

import (
	"regexp"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberFormat = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{8}$`)

func TestNewOrderNumber(t *testing.T) {
	t.Run("should match the order number format", func(t *testing.T) {
		number := order.NewOrderNumber(time.Now())

		assert.Regexp(t, orderNumberFormat, number.String())
		require.NoError(t, number.Validate())
	})

	t.Run("should embed the UTC calendar date", func(t *testing.T) {
		createdAt := time.Date(2025, 1, 17, 23, 30, 0, 0, time.UTC)

		number := order.NewOrderNumber(createdAt)

		assert.Contains(t, number.String(), "ORD-20250117-")
	})

	t.Run("should convert local times to UTC for the date part", func(t *testing.T) {
		// 23:30 at UTC+3 on Jan 17 is 20:30 UTC the same day;
		// 01:30 at UTC+3 on Jan 18 is 22:30 UTC on Jan 17.
		zone := time.FixedZone("UTC+3", 3*60*60)
		createdAt := time.Date(2025, 1, 18, 1, 30, 0, 0, zone)

		number := order.NewOrderNumber(createdAt)

		assert.Contains(t, number.String(), "ORD-20250117-")
	})

	t.Run("should generate fresh numbers per call", func(t *testing.T) {
		now := time.Now()
		seen := make(map[string]bool)

		for range 100 {
			number := order.NewOrderNumber(now)
			assert.False(t, seen[number.String()], "duplicate order number %s", number)
			seen[number.String()] = true
		}
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("should accept well-formed order numbers", func(t *testing.T) {
		number, err := order.OrderNumberFromString("ORD-20250117-9F3A41BC")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20250117-9F3A41BC", number.String())
	})

	t.Run("should reject malformed order numbers", func(t *testing.T) {
		malformed := []string{
			"",
			"ORD-20250117",
			"ORD-2025117-9F3A41BC",
			"ORD-20250117-9f3a41bc",
			"ORD-20250117-9F3A41B",
			"XYZ-20250117-9F3A41BC",
			"ORD-20250117-9F3A41BC9",
		}

		for _, input := range malformed {
			number, err := order.OrderNumberFromString(input)

			require.Error(t, err, "input %q should be rejected", input)
			assert.Equal(t, order.OrderNumber{}, number)
		}
	})

	t.Run("should report empty input as a required value", func(t *testing.T) {
		_, err := order.OrderNumberFromString("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		a, err := order.OrderNumberFromString("ORD-20250117-9F3A41BC")
		require.NoError(t, err)
		b, err := order.OrderNumberFromString("ORD-20250117-9F3A41BC")
		require.NoError(t, err)
		c, err := order.OrderNumberFromString("ORD-20250117-AAAAAAAA")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var number order.OrderNumber

		err := number.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
