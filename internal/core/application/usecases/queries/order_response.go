// Package queries contains read-only operations that never modify system
// state. The read side bypasses the domain model and queries the database
// directly, returning flat response structs.
package queries

import (
	"database/sql"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the read-side view of an order.
type OrderResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerEmail string
	OrderDate     time.Time
	TotalAmount   decimal.Decimal
	Status        order.Status
}

// orderColumns is the projection shared by every order query.
const orderColumns = `
	id,
	order_number,
	customer_email,
	order_date,
	total_amount,
	status
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id          uuid.UUID
		orderResp   OrderResponse
		statusValue int
	)

	err := rows.Scan(
		&id,
		&orderResp.OrderNumber,
		&orderResp.CustomerEmail,
		&orderResp.OrderDate,
		&orderResp.TotalAmount,
		&statusValue,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	orderResp.ID = orderID
	orderResp.Status = order.Status(statusValue)

	return orderResp, nil
}
