package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// ListOrdersQueryHandler returns orders in identity order.
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewListOrdersQueryHandler(orderRepository ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle never returns a nil slice on success.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orderRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if query.Matches(o.Status()) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
