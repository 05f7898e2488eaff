package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the aggregate, applies the state machine, persists the change
// transactionally, and publishes an OrderStatusChanged event after the
// commit succeeds.
type UpdateOrderStatusCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the status update command.
//
// Failure modes, in order:
//   - an absent order surfaces as errs.ObjectNotFoundError; no persistence
//     call is made and no event is emitted
//   - an illegal transition propagates from the aggregate with the order
//     unchanged; nothing is persisted and no event is emitted
//
// On success the side effects are strictly ordered: entity mutation, then
// commit, then event publication. A failed publication never rolls back
// the committed change.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	oldStatus := existingOrder.Status()
	if err = existingOrder.UpdateStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.eventPublisher.Publish(ctx, order.NewOrderStatusChangedEvent(existingOrder, oldStatus))

	return existingOrder, nil
}
