// Package memory provides the in-memory implementation of the dish and order
// repositories. It is the default storage of the service: records live as
// long as the process.
package memory

import (
	"context"
	"slices"
	"sync"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// record is the contract shared by the stored entity types.
type record[T any] interface {
	ID() kernel.ID
	AssignID(id kernel.ID) error
	Validate() error
	Clone() T
}

// Collection is an identity-keyed set of records of one type.
//
// Reads share a read lock; Add, Replace and Remove hold the write lock for
// their whole check-then-write section, so identities stay unique and a
// merge never interleaves with another mutation. Records are cloned on the
// way in and out; the map holds the only reference to the canonical copy.
type Collection[T record[T]] struct {
	resource string
	seq      *kernel.Sequence

	mu      sync.RWMutex
	records map[kernel.ID]T
}

// NewCollection creates an empty collection. Resource labels it in
// not-found messages ("Dish", "Order").
func NewCollection[T record[T]](resource string) *Collection[T] {
	return &Collection[T]{
		resource: resource,
		seq:      kernel.NewSequence(),
		records:  make(map[kernel.ID]T),
	}
}

// NewDishRepository returns an empty in-memory dish repository.
func NewDishRepository() *Collection[*dish.Dish] {
	return NewCollection[*dish.Dish](dish.Subject)
}

// NewOrderRepository returns an empty in-memory order repository.
func NewOrderRepository() *Collection[*order.Order] {
	return NewCollection[*order.Order](order.Subject)
}

// List returns copies of all records in identity order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]T, 0, len(c.records))
	for _, r := range c.records {
		list = append(list, r.Clone())
	}
	slices.SortFunc(list, func(a, b T) int {
		switch {
		case a.ID().Less(b.ID()):
			return -1
		case b.ID().Less(a.ID()):
			return 1
		default:
			return 0
		}
	})
	return list, nil
}

// Get returns a copy of the record stored under id.
func (c *Collection[T]) Get(ctx context.Context, id kernel.ID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.records[id]
	if !ok {
		return zero, errs.NewObjectNotFoundError(c.resource, id)
	}
	return r.Clone(), nil
}

// Add stores a copy of an unsaved record under a fresh identity and returns
// the stored copy.
func (c *Collection[T]) Add(ctx context.Context, r T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := r.Validate(); err != nil {
		return zero, err
	}

	stored := r.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := stored.AssignID(c.seq.Next()); err != nil {
		return zero, err
	}
	c.records[stored.ID()] = stored
	return stored.Clone(), nil
}

// Replace runs mutate on a copy of the record stored under id and stores the
// copy if mutate succeeds.
func (c *Collection[T]) Replace(ctx context.Context, id kernel.ID, mutate func(current T) error) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.records[id]
	if !ok {
		return zero, errs.NewObjectNotFoundError(c.resource, id)
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		return zero, err
	}
	if err := working.Validate(); err != nil {
		return zero, err
	}

	c.records[id] = working
	return working.Clone(), nil
}

// Remove deletes the record stored under id if check accepts a copy of it.
func (c *Collection[T]) Remove(ctx context.Context, id kernel.ID, check func(current T) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.records[id]
	if !ok {
		return errs.NewObjectNotFoundError(c.resource, id)
	}
	if err := check(current.Clone()); err != nil {
		return err
	}

	delete(c.records, id)
	return nil
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
