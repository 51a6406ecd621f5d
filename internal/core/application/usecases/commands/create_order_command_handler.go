package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderCommandHandler places new pending orders.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

func NewCreateOrderCommandHandler(orderRepository ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orderRepository: orderRepository}
}

// Handle adds the order and returns it with its assigned identity.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.DeliverTo(), cmd.MobileNumber(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	return h.orderRepository.Add(ctx, o)
}
