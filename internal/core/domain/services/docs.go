// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RemainderSplitter: Rebalances an item's allocation chain, materializing
//     and pruning remainder rows as assignments change
//   - RouteDeriver: Derives delivery routes from sourced rows, preserving
//     transport edits across refreshes
//   - DriverAggregator: Groups routes by driver into the collection report
//   - Reconciler: Rebuilds a stage worksheet from the order and a persisted
//     payload, re-resolving entities by name
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
