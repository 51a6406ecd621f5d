package queries

import (
	"errors"
	"slices"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves all orders, optionally narrowed to some statuses.
//
// Example:
//
//	all := NewListOrdersQuery()
//	open := NewListOrdersQuery(order.Pending, order.Preparing)
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query. With no statuses every order matches.
func NewListOrdersQuery(statuses ...order.Status) ListOrdersQuery {
	return ListOrdersQuery{
		statuses: slices.Clone(statuses),
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor and that
// every status filter is known.
func (q ListOrdersQuery) Validate() error {
	if err := q.guard.Validate(ErrListOrdersQueryIsNotConstructed); err != nil {
		return err
	}
	for _, s := range q.statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Matches reports whether an order in status s is selected by the query.
func (q ListOrdersQuery) Matches(s order.Status) bool {
	return len(q.statuses) == 0 || slices.Contains(q.statuses, s)
}
