package commands_test

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.DishRepository  = (*MockDishRepository)(nil)
	_ ports.OrderRepository = (*MockOrderRepository)(nil)
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	dishes, _ := args.Get(0).([]*dish.Dish)
	return dishes, args.Error(1)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) (*dish.Dish, error) {
	args := m.Called(ctx, d)
	stored, _ := args.Get(0).(*dish.Dish)
	return stored, args.Error(1)
}

// Replace returns the configured error, or runs mutate on a copy of the
// configured dish and returns the copy.
func (m *MockDishRepository) Replace(
	ctx context.Context,
	id kernel.ID,
	mutate func(current *dish.Dish) error,
) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	current := args.Get(0).(*dish.Dish).Clone()
	if err := mutate(current); err != nil {
		return nil, err
	}
	return current, nil
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Error(1)
}

func (m *MockOrderRepository) Replace(
	ctx context.Context,
	id kernel.ID,
	mutate func(current *order.Order) error,
) (*order.Order, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	current := args.Get(0).(*order.Order).Clone()
	if err := mutate(current); err != nil {
		return nil, err
	}
	return current, nil
}

// Remove returns the configured error, or runs check on the configured order.
func (m *MockOrderRepository) Remove(
	ctx context.Context,
	id kernel.ID,
	check func(current *order.Order) error,
) error {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return err
	}
	return check(args.Get(0).(*order.Order))
}
