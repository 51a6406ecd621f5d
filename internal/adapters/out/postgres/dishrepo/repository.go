package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// List returns all dishes ordered by id.
func (r *GormDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// Get retrieves a dish by id.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(dish.Subject, id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// Add inserts an unsaved dish; the database assigns its id.
func (r *GormDishRepository) Add(ctx context.Context, d *dish.Dish) (*dish.Dish, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !d.ID().IsZero() {
		return nil, dish.ErrIDIsAlreadyAssigned
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// Replace locks the dish row, applies mutate and saves the result in one transaction.
func (r *GormDishRepository) Replace(
	ctx context.Context,
	id kernel.ID,
	mutate func(current *dish.Dish) error,
) (*dish.Dish, error) {
	var updated *dish.Dish

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto DishDTO
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError(dish.Subject, id)
			}
			return err
		}

		current, err := toDomain(dto)
		if err != nil {
			return err
		}
		if err = mutate(current); err != nil {
			return err
		}
		if err = current.Validate(); err != nil {
			return err
		}

		dto = fromDomain(current)
		if err = tx.Save(&dto).Error; err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
