package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// CreateDishCommandHandler stores new dishes.
type CreateDishCommandHandler struct {
	dishRepository ports.DishRepository
}

func NewCreateDishCommandHandler(dishRepository ports.DishRepository) CreateDishCommandHandler {
	return CreateDishCommandHandler{dishRepository: dishRepository}
}

// Handle adds the dish and returns it with its assigned identity.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := dish.NewDish(cmd.Name(), cmd.Description(), cmd.Price(), cmd.ImageURL())
	if err != nil {
		return nil, err
	}

	return h.dishRepository.Add(ctx, d)
}
