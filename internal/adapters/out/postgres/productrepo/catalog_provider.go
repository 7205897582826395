package productrepo

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormCatalogProvider implements ProductCatalog backed by the product_prices
// table. The snapshot is cached in memory; Refresh swaps it atomically so
// readers never observe a partially loaded catalog.
type GormCatalogProvider struct {
	db *gorm.DB

	mu       sync.RWMutex
	snapshot *product.Catalog
}

// NewGormCatalogProvider creates a catalog provider. The snapshot starts
// empty; call Refresh to load prices.
func NewGormCatalogProvider(db *gorm.DB) *GormCatalogProvider {
	return &GormCatalogProvider{
		db:       db,
		snapshot: product.NewCatalog(nil),
	}
}

// Snapshot returns the current price snapshot.
func (p *GormCatalogProvider) Snapshot(_ context.Context) (*product.Catalog, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot, nil
}

// Refresh reloads the snapshot from the price table.
func (p *GormCatalogProvider) Refresh(ctx context.Context) error {
	var dtos []ProductPriceDTO
	if err := p.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return err
	}

	prices := make(map[string]kernel.Quantity, len(dtos))
	for _, dto := range dtos {
		prices[dto.Name] = kernel.NewQuantityFromFloat(dto.Price)
	}

	p.mu.Lock()
	p.snapshot = product.NewCatalog(prices)
	p.mu.Unlock()

	return nil
}
