package queries

import (
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/guard"
)

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

// GetDishQuery retrieves one dish by identity.
type GetDishQuery struct {
	dishID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetDishQuery(dishID kernel.ID) (GetDishQuery, error) {
	if err := dishID.Validate(); err != nil {
		return GetDishQuery{}, err
	}
	return GetDishQuery{dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

func (q GetDishQuery) DishID() kernel.ID {
	return q.dishID
}
