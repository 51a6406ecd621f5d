package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishRepository owns the canonical dish records. Returned dishes are copies;
// changing them does not change the stored record.
type DishRepository interface {
	// List returns all dishes in identity order.
	List(ctx context.Context) ([]*dish.Dish, error)

	// Get returns the dish stored under id, or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)

	// Add assigns a fresh identity to an unsaved dish, stores it and returns
	// the stored record. Identities are never reused.
	Add(ctx context.Context, d *dish.Dish) (*dish.Dish, error)

	// Replace loads the dish stored under id and passes a working copy to
	// mutate, which validates the request and merges it into the copy. The
	// copy is stored only if mutate succeeds. No other mutation of the
	// collection runs between the load and the store.
	Replace(ctx context.Context, id kernel.ID, mutate func(current *dish.Dish) error) (*dish.Dish, error)
}
