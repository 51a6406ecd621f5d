package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a dish to the menu.
//
// Example:
//
//	cmd, err := NewCreateDishCommand(validation.Record{
//	    "name":        "Falafel bagel",
//	    "description": "A warm bagel filled with falafel",
//	    "price":       6,
//	    "image_url":   "https://images.example.com/bagel.jpg",
//	})
//	if err != nil {
//	    return err // e.g. "Dish must include a name"
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       int
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateDishCommand validates a submitted dish record. A nil record is
// treated as empty. An id in the record is ignored.
func NewCreateDishCommand(record validation.Record) (CreateDishCommand, error) {
	if err := validation.Validate(record, dish.Rules); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		name:        record.Text("name"),
		description: record.Text("description"),
		price:       record.Int("price"),
		imageURL:    record.Text("image_url"),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Name() string {
	return c.name
}

func (c CreateDishCommand) Description() string {
	return c.description
}

func (c CreateDishCommand) Price() int {
	return c.price
}

func (c CreateDishCommand) ImageURL() string {
	return c.imageURL
}
