// Package product holds the read-only inputs of the allocation engine: the
// customer order with its line items, and the snapshotted market-price catalog
// used to prefill allocation prices.
//
// Order items are immutable for the duration of a stage. The catalog is a
// point-in-time snapshot keyed by normalized product name; a missing or zero
// price is a data-quality signal carried forward to later stages, never an
// error.
package product
