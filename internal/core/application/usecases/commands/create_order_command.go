package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// New orders always start pending; a status in the record is ignored.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(validation.Record{
//	    "deliverTo":    "308 Negra Arroyo Lane, Albuquerque, NM",
//	    "mobileNumber": "(505) 143-3369",
//	    "dishes": []any{
//	        map[string]any{"id": "1", "quantity": 2},
//	    },
//	})
//	if err != nil {
//	    return err // e.g. "Dish 0 must have a quantity that is an integer greater than 0"
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	deliverTo    string
	mobileNumber string
	lines        []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the fields and line items of a submitted
// order record.
func NewCreateOrderCommand(record validation.Record) (CreateOrderCommand, error) {
	if err := order.ValidateRecord(record); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		deliverTo:    record.Text("deliverTo"),
		mobileNumber: record.Text("mobileNumber"),
		lines:        order.LinesFromRecord(record),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) DeliverTo() string {
	return c.deliverTo
}

func (c CreateOrderCommand) MobileNumber() string {
	return c.mobileNumber
}

// Lines returns the line items in submission order.
func (c CreateOrderCommand) Lines() []order.LineItem {
	return append([]order.LineItem(nil), c.lines...)
}
