package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// UpdateOrderCommandHandler merges submitted fields into a stored order.
//
// Failures are reported in this order: the order does not exist, the record
// id does not match the route id, the order is delivered, a field rule
// fails, a line item is invalid, the status is missing or unknown.
type UpdateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

func NewUpdateOrderCommandHandler(orderRepository ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orderRepository: orderRepository}
}

// Handle returns the order as stored after the merge.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.Replace(ctx, cmd.OrderID(), func(current *order.Order) error {
		patch, err := current.PatchFromRecord(cmd.OrderID().String(), cmd.Record())
		if err != nil {
			return err
		}
		return current.Apply(patch)
	})
}
