package http

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

type DishResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// LineItemResponse echoes a line item with the members it was submitted with.
type LineItemResponse map[string]any

type OrderResponse struct {
	ID           string             `json:"id"`
	DeliverTo    string             `json:"deliverTo"`
	MobileNumber string             `json:"mobileNumber"`
	Status       string             `json:"status"`
	Dishes       []LineItemResponse `json:"dishes"`
}

func newDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func newDishResponses(dishes []*dish.Dish) []DishResponse {
	response := make([]DishResponse, len(dishes))
	for i, d := range dishes {
		response[i] = newDishResponse(d)
	}
	return response
}

func newOrderResponse(o *order.Order) OrderResponse {
	lines := o.Lines()
	dishes := make([]LineItemResponse, len(lines))
	for i, line := range lines {
		dishes[i] = line.Members()
	}

	return OrderResponse{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = newOrderResponse(o)
	}
	return response
}
