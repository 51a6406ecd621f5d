package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change a stored order,
// including its status.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	record  validation.Record

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command for the order stored under orderID.
func NewUpdateOrderCommand(orderID kernel.ID, record validation.Record) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		record:  cloneRecord(record),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Record returns the submitted record. Callers must not modify it.
func (c UpdateOrderCommand) Record() validation.Record {
	return c.record
}
