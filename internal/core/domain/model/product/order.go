package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the customer order whose line items the engine allocates across
// supply sources. It is read-only input: the engine derives allocation rows
// from it but never writes back.
//
// The order's unit mode is fixed once, from the packing hint of its first
// item, and shared by every allocation row of the order.
type Order struct {
	id    string
	items []OrderItem

	guard guard.ConstructorGuard
}

// NewOrder creates an order from its line items. An order with no items is
// valid: the stage view simply renders empty.
func NewOrder(id string, items []OrderItem) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	copied := make([]OrderItem, len(items))
	copy(copied, items)

	return &Order{
		id:    id,
		items: copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []OrderItem {
	out := make([]OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// Item looks up a line item by id.
func (o *Order) Item(itemID string) (OrderItem, bool) {
	for _, item := range o.items {
		if item.ID() == itemID {
			return item, true
		}
	}
	return OrderItem{}, false
}

// UnitMode determines the order's unit convention from the first item's
// packing hint. Orders without items default to weight mode.
func (o *Order) UnitMode() kernel.UnitMode {
	if len(o.items) == 0 {
		return kernel.WeightMode
	}
	return kernel.DetectUnitMode(o.items[0].PackingHint())
}
