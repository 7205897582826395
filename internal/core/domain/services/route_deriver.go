package services

import (
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
)

// AddressResolver supplies the pickup address for a source entity. The
// directory may not know the entity, in which case a blank address is fine.
type AddressResolver func(entityType kernel.EntityType, entityID int64, entityName string) string

// RouteDeriver is a domain service that keeps the route set consistent with
// the allocation rows.
//
// Business rules:
//   - An assigned row yields exactly one route; the route id embeds the
//     entity and the row, so the same entity on two rows gives two routes
//     and a row can never duplicate a route for its entity.
//   - Clearing a row's source removes its route. Changing the source removes
//     the old entity's route before the new one is derived.
//   - The route carries the assigned quantity when one was entered, the
//     needed quantity otherwise.
//   - Driver, labour and status edits on an existing route survive
//     re-derivation.
type RouteDeriver struct{}

// NewRouteDeriver creates a new RouteDeriver instance.
func NewRouteDeriver() RouteDeriver {
	return RouteDeriver{}
}

// Refresh re-derives the route of one allocation row.
//
// Parameters:
//   - rows: the allocation rows of the stage
//   - routes: the route set of the stage, mutated in place
//   - rowID: the row whose source or quantities changed
//   - resolve: directory lookup for the pickup address, may be nil
//
// Returns:
//   - error: when the row is unknown or the derived route is invalid
func (d RouteDeriver) Refresh(
	rows *allocation.RowSet,
	routes *route.RouteSet,
	rowID kernel.RowID,
	resolve AddressResolver,
) error {
	row, err := rows.Get(rowID)
	if err != nil {
		return err
	}

	if !row.HasSource() {
		routes.RemoveForRow(rowID)
		return nil
	}

	routeID, err := kernel.NewRouteID(row.EntityType(), row.EntityID(), rowID)
	if err != nil {
		return err
	}

	// A source change leaves the previous entity's route behind under a
	// different key; sweep the row's routes before upserting.
	for _, existing := range routes.All() {
		id := existing.RouteID()
		if id.RowID().IsEqual(rowID) && !id.IsEqual(routeID) {
			routes.Remove(id)
		}
	}

	address := ""
	if resolve != nil {
		address = resolve(row.EntityType(), row.EntityID(), row.EntityName())
	}

	derived, err := route.NewRoute(
		routeID,
		rowID.ItemID(),
		row.ProductName(),
		row.EntityName(),
		address,
		row.EffectiveQuantity(),
		row.AssignedBoxes(),
		rowID.IsRemaining(),
	)
	if err != nil {
		return err
	}
	return routes.Upsert(derived)
}

// RefreshAll re-derives the routes of every row, used when a worksheet is
// rebuilt from a persisted payload.
func (d RouteDeriver) RefreshAll(
	rows *allocation.RowSet,
	routes *route.RouteSet,
	resolve AddressResolver,
) error {
	for _, row := range rows.All() {
		if err := d.Refresh(rows, routes, row.RowID(), resolve); err != nil {
			return err
		}
	}
	return nil
}

// Remove drops every route of a row, used when the row itself is removed.
func (d RouteDeriver) Remove(routes *route.RouteSet, rowID kernel.RowID) {
	routes.RemoveForRow(rowID)
}
