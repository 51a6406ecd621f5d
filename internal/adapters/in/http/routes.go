package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /dishes)
	ListDishes(ctx echo.Context) error
	// (POST /dishes)
	CreateDish(ctx echo.Context) error
	// (GET /dishes/{dishId})
	GetDish(ctx echo.Context, dishID string) error
	// (PUT /dishes/{dishId})
	UpdateDish(ctx echo.Context, dishID string) error

	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// (PUT /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderID string) error
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderID string) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListDishes(ctx echo.Context) error {
	return w.Handler.ListDishes(ctx)
}

func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	return w.Handler.CreateDish(ctx)
}

func (w *ServerInterfaceWrapper) GetDish(ctx echo.Context) error {
	dishID, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.GetDish(ctx, dishID)
}

func (w *ServerInterfaceWrapper) UpdateDish(ctx echo.Context) error {
	dishID, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDish(ctx, dishID)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderID, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderID, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderID)
}

func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds the routes of si to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/dishes", wrapper.ListDishes)
	router.POST("/dishes", wrapper.CreateDish)
	router.GET("/dishes/:dishId", wrapper.GetDish)
	router.PUT("/dishes/:dishId", wrapper.UpdateDish)

	router.GET("/orders", wrapper.ListOrders)
	router.POST("/orders", wrapper.CreateOrder)
	router.GET("/orders/:orderId", wrapper.GetOrder)
	router.PUT("/orders/:orderId", wrapper.UpdateOrder)
	router.DELETE("/orders/:orderId", wrapper.DeleteOrder)
}
