package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// ListDishesQueryHandler returns all dishes in identity order.
//
// Example:
//
//	handler := NewListDishesQueryHandler(dishRepository)
//	dishes, err := handler.Handle(ctx, NewListDishesQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d dishes on the menu\n", len(dishes))
type ListDishesQueryHandler struct {
	dishRepository ports.DishRepository
}

func NewListDishesQueryHandler(dishRepository ports.DishRepository) ListDishesQueryHandler {
	return ListDishesQueryHandler{dishRepository: dishRepository}
}

// Handle never returns a nil slice on success.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.dishRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = make([]*dish.Dish, 0)
	}
	return dishes, nil
}
