// Package dishrepo persists dishes with GORM.
package dishrepo

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishDTO is the row of the dishes table.
type DishDTO struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int    `gorm:"not null;check:price > 0"`
	ImageURL    string `gorm:"column:image_url;not null"`
}

// TableName overrides GORM's default naming.
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID().Uint64(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	return dish.RestoreDish(kernel.NewID(dto.ID), dto.Name, dto.Description, dto.Price, dto.ImageURL)
}
