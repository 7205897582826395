// Package ports defines the contracts between the application core and
// infrastructure: persistence of stage records, read access to orders and
// directories, the market-price snapshot and the worksheet store. The
// interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// OrderRepository is the read-side contract for customer orders. Orders are
// owned by the ordering system; the allocation engine only reads them.
type OrderRepository interface {
	// Get retrieves an order with its line items.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, orderID string) (*product.Order, error)
}
