// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - EntityType: A tagged variant identifying the supply-source directory
//   - UnitMode: The per-order unit convention (weight or boxes)
//   - RowID: The composite allocation-row key ({itemId} or {itemId}-remaining-{n})
//   - RouteID: The deterministic delivery-route key ({entityType}-{entityId}-{rowId})
//   - Quantity: A decimal value object with tolerant parsing and 2-decimal rounding
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
