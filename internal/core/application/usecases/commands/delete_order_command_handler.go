package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders that are still pending.
type DeleteOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

func NewDeleteOrderCommandHandler(orderRepository ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orderRepository: orderRepository}
}

// Handle deletes the order, or returns errs.ErrOrderNotDeletable when its
// status is not pending.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepository.Remove(ctx, cmd.OrderID(), (*order.Order).ValidateDelete)
}
