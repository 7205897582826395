package product

import (
	"regexp"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

// numericPrefixPattern matches catalog names prefixed with a sort number,
// such as "12 - Tomato".
var numericPrefixPattern = regexp.MustCompile(`^\s*\d+\s*-\s*`)

// NormalizeName canonicalizes a product name for catalog matching: the
// numeric prefix is stripped, surrounding whitespace removed, and the result
// lowercased so lookups are case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(numericPrefixPattern.ReplaceAllString(name, "")))
}

// Catalog is a point-in-time snapshot of market prices keyed by normalized
// product name.
type Catalog struct {
	prices map[string]kernel.Quantity
}

// NewCatalog builds a catalog snapshot. Keys are normalized on insertion, so
// callers may pass names in whatever form the upstream source uses.
func NewCatalog(prices map[string]kernel.Quantity) *Catalog {
	normalized := make(map[string]kernel.Quantity, len(prices))
	for name, price := range prices {
		normalized[NormalizeName(name)] = price
	}
	return &Catalog{prices: normalized}
}

// PriceFor returns the snapshotted market price of a product. The boolean is
// false when the product is absent from the snapshot; absence and a zero
// price are both data-quality signals, not errors.
func (c *Catalog) PriceFor(name string) (kernel.Quantity, bool) {
	if c == nil {
		return kernel.ZeroQuantity(), false
	}
	price, ok := c.prices[NormalizeName(name)]
	return price, ok
}

// Len returns the number of snapshotted products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.prices)
}
