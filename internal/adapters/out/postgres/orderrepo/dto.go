// Package orderrepo persists orders with GORM. Line items are stored with
// their submitted members in a jsonb column of the orders table.
package orderrepo

import (
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID           uint64           `gorm:"primaryKey;autoIncrement"`
	DeliverTo    string           `gorm:"not null"`
	MobileNumber string           `gorm:"not null"`
	Status       string           `gorm:"type:varchar(32);not null;index"`
	Dishes       []map[string]any `gorm:"type:jsonb;serializer:json;not null"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	dishes := make([]map[string]any, len(lines))
	for i, line := range lines {
		dishes[i] = line.Members()
	}

	return OrderDTO{
		ID:           o.ID().Uint64(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.LineItem, len(dto.Dishes))
	for i, members := range dto.Dishes {
		lines[i] = order.LineItemFromRecord(members)
	}

	return order.RestoreOrder(kernel.NewID(dto.ID), dto.DeliverTo, dto.MobileNumber, order.Status(dto.Status), lines)
}
