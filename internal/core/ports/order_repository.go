package ports

import (
	"context"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// OrderRepository owns the canonical order records. Returned orders are
// copies; changing them does not change the stored record.
type OrderRepository interface {
	// List returns all orders in identity order.
	List(ctx context.Context) ([]*order.Order, error)

	// Get returns the order stored under id, or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Add assigns a fresh identity to an unsaved order, stores it and returns
	// the stored record. Identities are never reused.
	Add(ctx context.Context, o *order.Order) (*order.Order, error)

	// Replace loads the order stored under id and passes a working copy to
	// mutate, which runs the lifecycle checks and merges the request into
	// the copy. The copy is stored only if mutate succeeds.
	Replace(ctx context.Context, id kernel.ID, mutate func(current *order.Order) error) (*order.Order, error)

	// Remove deletes the order stored under id if check accepts it.
	// It returns an *errs.ObjectNotFoundError when no such order exists.
	Remove(ctx context.Context, id kernel.ID, check func(current *order.Order) error) error
}
