package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// ProductCatalog supplies the market-price snapshot used to prefill
// allocation prices. Implementations cache the snapshot; Refresh reloads it
// from the source of record.
type ProductCatalog interface {
	// Snapshot returns the current price snapshot. Never nil: an empty
	// catalog is returned before the first refresh.
	Snapshot(ctx context.Context) (*product.Catalog, error)

	// Refresh reloads the snapshot from the source of record.
	Refresh(ctx context.Context) error
}
