package product

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// OrderItem is one ordered line of bulk produce. It is supplied once per order
// and never mutated by the allocation engine.
type OrderItem struct {
	id          string
	name        string
	netWeight   kernel.Quantity
	boxCount    kernel.Quantity
	packingHint string
}

// NewOrderItem creates an order item. The packing hint is free text from the
// upstream catalog ("10kg box", "loose per kg") and is only interpreted once,
// when the order's unit mode is determined.
func NewOrderItem(
	id string,
	name string,
	netWeight kernel.Quantity,
	boxCount kernel.Quantity,
	packingHint string,
) (OrderItem, error) {
	if id == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("item id")
	}
	if name == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("item name")
	}
	if netWeight.IsNegative() || boxCount.IsNegative() {
		return OrderItem{}, errs.NewValueIsInvalidError("item quantities")
	}

	return OrderItem{
		id:          id,
		name:        name,
		netWeight:   netWeight,
		boxCount:    boxCount,
		packingHint: packingHint,
	}, nil
}

// ID returns the order-item identifier.
func (i OrderItem) ID() string {
	return i.id
}

// Name returns the product name as ordered.
func (i OrderItem) Name() string {
	return i.name
}

// NetWeight returns the ordered net weight in kg.
func (i OrderItem) NetWeight() kernel.Quantity {
	return i.netWeight
}

// BoxCount returns the ordered box count.
func (i OrderItem) BoxCount() kernel.Quantity {
	return i.boxCount
}

// PackingHint returns the packing-type hint string.
func (i OrderItem) PackingHint() string {
	return i.packingHint
}
