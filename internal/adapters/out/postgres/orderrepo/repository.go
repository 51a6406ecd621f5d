package orderrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// List returns all orders ordered by id.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(order.Subject, id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// Add inserts an unsaved order; the database assigns its id.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.ID().IsZero() {
		return nil, order.ErrIDIsAlreadyAssigned
	}

	dto := fromDomain(o)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// Replace locks the order row, applies mutate and saves the result in one transaction.
func (r *GormOrderRepository) Replace(
	ctx context.Context,
	id kernel.ID,
	mutate func(current *order.Order) error,
) (*order.Order, error) {
	var updated *order.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockForUpdate(tx, id)
		if err != nil {
			return err
		}
		if err = mutate(current); err != nil {
			return err
		}
		if err = current.Validate(); err != nil {
			return err
		}

		dto := fromDomain(current)
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

// Remove locks the order row and deletes it if check accepts it.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.ID, check func(current *order.Order) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockForUpdate(tx, id)
		if err != nil {
			return err
		}
		if err = check(current); err != nil {
			return err
		}
		return tx.Delete(&OrderDTO{}, "id = ?", id.Uint64()).Error
	})
}

func lockForUpdate(tx *gorm.DB, id kernel.ID) (*order.Order, error) {
	var dto OrderDTO
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(order.Subject, id)
		}
		return nil, err
	}
	return toDomain(dto)
}
