package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot owns the repositories and builds every use case on top of them.
type CompositionRoot struct {
	config          Config
	logger          *slog.Logger
	gormDB          *gorm.DB
	dishRepository  ports.DishRepository
	orderRepository ports.OrderRepository
}

// NewCompositionRoot selects the storage driver from config. With the
// postgres driver it connects and migrates the schema.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{config: config, logger: logger}

	switch config.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(config.Database())
		if err != nil {
			return nil, err
		}
		root.gormDB = db
		root.dishRepository = dishrepo.NewGormDishRepository(db)
		root.orderRepository = orderrepo.NewGormOrderRepository(db)
	case StorageMemory, "":
		root.dishRepository = memory.NewDishRepository()
		root.orderRepository = memory.NewOrderRepository()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}

	logger.Info("storage ready", "driver", root.StorageDriver())
	return root, nil
}

// StorageDriver names the active storage driver.
func (c *CompositionRoot) StorageDriver() string {
	if c.gormDB != nil {
		return StoragePostgres
	}
	return StorageMemory
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}

// CreateRouter builds the echo instance with every route registered.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateDish:  c.CreateCreateDishCommandHandler(),
		UpdateDish:  c.CreateUpdateDishCommandHandler(),
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),
		ListDishes:  c.CreateListDishesQueryHandler(),
		GetDish:     c.CreateGetDishQueryHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
	})

	return httpin.NewRouter(server, doc, c.logger.With("component", "http")), nil
}

// CreateJobManager builds the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListOrdersQueryHandler(), c.config.BacklogReportSchedule, c.logger)
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
