// Package productrepo provides the market-price snapshot used to prefill
// allocation prices. Prices live in an upstream-maintained table; this package
// reads them into an in-memory catalog that is refreshed on a schedule.
package productrepo

// ProductPriceDTO represents one market-price row.
type ProductPriceDTO struct {
	ID    int64   `gorm:"primaryKey"`
	Name  string  `gorm:"type:varchar(255);uniqueIndex"`
	Price float64 `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for product prices.
func (ProductPriceDTO) TableName() string {
	return "product_prices"
}
