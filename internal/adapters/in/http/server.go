package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	ListDishes queries.ListDishesQueryHandler
	GetDish    queries.GetDishQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createDishHandler:  h.CreateDish,
		updateDishHandler:  h.UpdateDish,
		createOrderHandler: h.CreateOrder,
		updateOrderHandler: h.UpdateOrder,
		deleteOrderHandler: h.DeleteOrder,
		listDishesHandler:  h.ListDishes,
		getDishHandler:     h.GetDish,
		listOrdersHandler:  h.ListOrders,
		getOrderHandler:    h.GetOrder,
	}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, newDishResponses(dishes))
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	record, err := bindRecord(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDishCommand(record)
	if err != nil {
		return err
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, newDishResponse(created))
}

// GetDish handles GET /dishes/{dishId}.
func (s *Server) GetDish(ctx echo.Context, dishID string) error {
	id, err := routeID(dish.Subject, dishID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDishQuery(id)
	if err != nil {
		return err
	}

	found, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, newDishResponse(found))
}

// UpdateDish handles PUT /dishes/{dishId}.
func (s *Server) UpdateDish(ctx echo.Context, dishID string) error {
	id, err := routeID(dish.Subject, dishID)
	if err != nil {
		return err
	}

	record, err := bindRecord(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDishCommand(id, record)
	if err != nil {
		return err
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, newDishResponse(updated))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, newOrderResponses(orders))
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	record, err := bindRecord(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(record)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, newOrderResponse(created))
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := routeID(order.Subject, orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, newOrderResponse(found))
}

// UpdateOrder handles PUT /orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID string) error {
	id, err := routeID(order.Subject, orderID)
	if err != nil {
		return err
	}

	record, err := bindRecord(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, record)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, newOrderResponse(updated))
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	id, err := routeID(order.Subject, orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// routeID parses a route identity. No record can exist under an identity
// that does not parse, so the failure is reported as not found.
func routeID(resource, raw string) (kernel.ID, error) {
	id, err := kernel.ParseID(raw)
	if err != nil {
		return kernel.ID{}, errs.NewObjectNotFoundError(resource, raw)
	}
	return id, nil
}
