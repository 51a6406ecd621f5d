package orderrepo_test

import (
	"context"
	"testing"

	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/adapters/out/postgres/postgrestest"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var _ ports.OrderRepository = (*orderrepo.GormOrderRepository)(nil)

// OrderRepositoryIntegrationTestSuite runs GormOrderRepository against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *postgrestest.Database
	repository *orderrepo.GormOrderRepository
	ctx        context.Context
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	database, err := postgrestest.Start(suite.ctx)
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres.Migrate(database.DB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("orders"))
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(suite.ctx))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder() *order.Order {
	o, err := order.NewOrder("1600 Pennsylvania Avenue", "202-456-1111", []order.LineItem{
		order.LineItemFromRecord(validation.Record{
			"id": "3", "name": "Bagel", "price": 6.5, "quantity": float64(2), "note": "no sesame",
		}),
		{DishID: "7", Quantity: 1},
	})
	suite.Require().NoError(err)

	stored, err := suite.repository.Add(suite.ctx, o)
	suite.Require().NoError(err)
	return stored
}

func (suite *OrderRepositoryIntegrationTestSuite) setStatus(id kernel.ID, status order.Status) {
	_, err := suite.repository.Replace(suite.ctx, id, func(current *order.Order) error {
		return current.Apply(order.Patch{Status: &status})
	})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsLineItems() {
	stored := suite.addOrder()

	got, err := suite.repository.Get(suite.ctx, stored.ID())

	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.Status())
	suite.Equal("202-456-1111", got.MobileNumber())
	suite.Require().Len(got.Lines(), 2)
	suite.Equal(map[string]any{
		"id": "3", "name": "Bagel", "price": 6.5, "quantity": float64(2), "note": "no sesame",
	}, got.Lines()[0].Members())
	suite.Equal("7", got.Lines()[1].DishID)
	suite.Equal(1, got.Lines()[1].Quantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(suite.ctx, kernel.NewID(99))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal("Order does not exist: 99", err.Error())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList() {
	first := suite.addOrder()
	second := suite.addOrder()

	orders, err := suite.repository.List(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(first.ID(), orders[0].ID())
	suite.Equal(second.ID(), orders[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReplace_DeliveredOrderIsFrozen() {
	stored := suite.addOrder()
	suite.setStatus(stored.ID(), order.Delivered)
	deliverTo := "elsewhere"

	_, err := suite.repository.Replace(suite.ctx, stored.ID(), func(current *order.Order) error {
		return current.Apply(order.Patch{DeliverTo: &deliverTo})
	})

	suite.Require().ErrorIs(err, errs.ErrImmutableOrder)
	got, err := suite.repository.Get(suite.ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
	suite.Equal("1600 Pennsylvania Avenue", got.DeliverTo())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_Pending() {
	stored := suite.addOrder()

	err := suite.repository.Remove(suite.ctx, stored.ID(), (*order.Order).ValidateDelete)

	suite.Require().NoError(err)
	_, err = suite.repository.Get(suite.ctx, stored.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_NotPending() {
	stored := suite.addOrder()
	suite.setStatus(stored.ID(), order.OutForDelivery)

	err := suite.repository.Remove(suite.ctx, stored.ID(), (*order.Order).ValidateDelete)

	suite.Require().ErrorIs(err, errs.ErrOrderNotDeletable)
	_, err = suite.repository.Get(suite.ctx, stored.ID())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_NotFound() {
	err := suite.repository.Remove(suite.ctx, kernel.NewID(8), (*order.Order).ValidateDelete)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestIdentitiesAreNotReused() {
	first := suite.addOrder()
	suite.Require().NoError(suite.repository.Remove(suite.ctx, first.ID(), (*order.Order).ValidateDelete))

	second := suite.addOrder()

	suite.True(first.ID().Less(second.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
