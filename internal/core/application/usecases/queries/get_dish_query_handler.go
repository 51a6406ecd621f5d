package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// GetDishQueryHandler reads a single dish.
type GetDishQueryHandler struct {
	dishRepository ports.DishRepository
}

func NewGetDishQueryHandler(dishRepository ports.DishRepository) GetDishQueryHandler {
	return GetDishQueryHandler{dishRepository: dishRepository}
}

// Handle returns an *errs.ObjectNotFoundError when the dish does not exist.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.dishRepository.Get(ctx, query.DishID())
}
