package commands

import (
	"errors"
	"maps"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand represents a request to overwrite the fields of a stored dish.
// The record is validated by the handler once the dish is known to exist.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	dishID kernel.ID
	record validation.Record

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command for the dish stored under dishID.
func NewUpdateDishCommand(dishID kernel.ID, record validation.Record) (UpdateDishCommand, error) {
	if err := dishID.Validate(); err != nil {
		return UpdateDishCommand{}, err
	}

	return UpdateDishCommand{
		dishID: dishID,
		record: cloneRecord(record),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) DishID() kernel.ID {
	return c.dishID
}

// Record returns the submitted record. Callers must not modify it.
func (c UpdateDishCommand) Record() validation.Record {
	return c.record
}

func cloneRecord(record validation.Record) validation.Record {
	if record == nil {
		return validation.Record{}
	}
	return maps.Clone(record)
}
