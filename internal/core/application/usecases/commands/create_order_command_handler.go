package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in Pending status with a freshly generated order number,
// persists them transactionally, and publishes an OrderCreated event after
// the commit succeeds.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand("customer@example.com", decimal.NewFromFloat(100.00))
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("created order %s", created.OrderNumber())
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for after-commit notifications.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the order creation command.
// Constructs the aggregate, persists it within a transaction, and publishes
// the OrderCreated event only after a successful commit. On any failure
// nothing is persisted and no event is emitted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerEmail(), cmd.TotalAmount())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.eventPublisher.Publish(ctx, order.NewOrderCreatedEvent(newOrder))

	return newOrder, nil
}
