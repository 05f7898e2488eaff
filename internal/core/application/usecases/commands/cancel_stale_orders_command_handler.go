package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels Pending orders that were placed
// at or before the command's cutoff time. All cancellations happen within
// a single transaction; status change events are published only after the
// commit succeeds.
type CancelStaleOrdersCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.EventPublisher
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order
// cancellation operation.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.EventPublisher,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle cancels every stale Pending order and returns how many orders
// were cancelled. Pending→Cancelled is always a legal transition, so a
// transition failure here indicates a bug and aborts the whole batch.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	pending := order.Pending
	cutoff := cmd.Cutoff()
	staleOrders, err := orderRepo.Search(ctx, ports.OrderFilter{
		Status: &pending,
		ToDate: &cutoff,
	})
	if err != nil {
		return 0, err
	}

	if len(staleOrders) == 0 {
		return 0, nil
	}

	events := make([]order.OrderStatusChangedEvent, 0, len(staleOrders))
	for _, staleOrder := range staleOrders {
		oldStatus := staleOrder.Status()
		if err = staleOrder.UpdateStatus(order.Cancelled); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return 0, err
		}

		events = append(events, order.NewOrderStatusChangedEvent(staleOrder, oldStatus))
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, event := range events {
		h.eventPublisher.Publish(ctx, event)
	}

	return len(staleOrders), nil
}
