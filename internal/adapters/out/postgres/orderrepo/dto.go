// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes on the
// columns the search operation filters and sorts by.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber   string          `gorm:"uniqueIndex"`
	CustomerEmail string          `gorm:"index"`
	OrderDate     time.Time       `gorm:"index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2)"`
	Status        int             `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber().String(),
		CustomerEmail: aggregate.CustomerEmail(),
		OrderDate:     aggregate.OrderDate(),
		TotalAmount:   aggregate.TotalAmount(),
		Status:        int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := order.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		orderNumber,
		dto.CustomerEmail,
		dto.OrderDate,
		dto.TotalAmount,
		order.Status(dto.Status),
	)
}
