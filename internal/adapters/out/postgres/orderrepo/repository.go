package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements the read-only OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, orderID string) (*product.Order, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}
