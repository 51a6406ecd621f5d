package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// UpdateDishCommandHandler merges submitted fields into a stored dish.
//
// Failures are reported in this order: the dish does not exist, a field rule
// fails, the record id does not match the route id.
type UpdateDishCommandHandler struct {
	dishRepository ports.DishRepository
}

func NewUpdateDishCommandHandler(dishRepository ports.DishRepository) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{dishRepository: dishRepository}
}

// Handle returns the dish as stored after the merge.
func (h *UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.dishRepository.Replace(ctx, cmd.DishID(), func(current *dish.Dish) error {
		patch, err := dish.PatchFromRecord(cmd.DishID().String(), cmd.Record())
		if err != nil {
			return err
		}
		return current.Apply(patch)
	})
}
