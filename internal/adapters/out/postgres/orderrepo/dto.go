// Package orderrepo provides data transfer objects and mapping functions for
// reading customer orders. Orders are owned by the ordering system; this
// package only reconstructs them for the allocation engine, it never writes.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// OrderDTO represents the database structure of a customer order.
type OrderDTO struct {
	ID    string         `gorm:"type:varchar(64);primaryKey"`
	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered line of produce. Quantities are stored
// as decimals to avoid binary float drift in the source of record.
type OrderItemDTO struct {
	ID          string  `gorm:"type:varchar(64);primaryKey"`
	OrderID     string  `gorm:"type:varchar(64);index"`
	Name        string  `gorm:"type:varchar(255)"`
	NetWeight   float64 `gorm:"type:decimal(12,3)"`
	BoxCount    float64 `gorm:"type:decimal(12,3)"`
	PackingHint string  `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*product.Order, error) {
	items := make([]product.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := product.NewOrderItem(
			itemDTO.ID,
			itemDTO.Name,
			kernel.NewQuantityFromFloat(itemDTO.NetWeight),
			kernel.NewQuantityFromFloat(itemDTO.BoxCount),
			itemDTO.PackingHint,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return product.NewOrder(dto.ID, items)
}
