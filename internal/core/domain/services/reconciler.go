package services

import (
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/model/worksheet"
)

// EntityResolver resolves a source entity's current directory identity by
// name. The boolean is false when the name is no longer in the directory, in
// which case the stored id is kept as a fallback.
type EntityResolver func(entityType kernel.EntityType, name string) (id int64, address string, found bool)

// Reconciler is a domain service that rebuilds the editing worksheet of a
// stage from the order and a previously persisted payload.
//
// Business rules:
//   - The order is the source of truth for which items exist: stored rows of
//     items no longer on the order are dropped, items without stored rows
//     get fresh primary rows.
//   - Stored assignments sharing one row id are split: the first record
//     keeps the id, later ones become remainder rows in array order.
//   - Entity ids are re-resolved by name against the current directory; when
//     the name is gone the stored id is kept.
//   - Needed quantities and routes are always re-derived, never trusted from
//     storage. Driver, labour and status edits stored on routes are overlaid
//     onto the re-derived routes by row.
//   - Prices are refreshed from the market snapshot only where no price was
//     stored; an entered price always wins.
//   - Reconciling a payload the worksheet itself produced yields the same
//     worksheet again.
type Reconciler struct {
	splitter RemainderSplitter
	deriver  RouteDeriver
}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{
		splitter: NewRemainderSplitter(),
		deriver:  NewRouteDeriver(),
	}
}

// Materialize builds the worksheet of an (order, stage) pair.
//
// Parameters:
//   - order: the order being fulfilled
//   - catalog: the current market-price snapshot, may be nil
//   - stg: the stage being opened
//   - payload: the persisted payload to reconcile against, nil for a fresh stage
//   - resolve: directory lookup for entity ids and addresses, may be nil
//   - now: the worksheet's initial edit time
//
// Returns:
//   - *worksheet.Worksheet: the editing state, fully re-derived
//   - error: when the order is invalid or reconstruction fails
func (r Reconciler) Materialize(
	order *product.Order,
	catalog *product.Catalog,
	stg stage.Stage,
	payload *stage.Payload,
	resolve EntityResolver,
	now time.Time,
) (*worksheet.Worksheet, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	mode := order.UnitMode()
	rows := allocation.NewRowSet()
	routes := route.NewRouteSet()

	for _, item := range order.Items() {
		price, _ := catalog.PriceFor(item.Name())
		rowID, err := kernel.NewRowID(item.ID())
		if err != nil {
			return nil, err
		}
		primary, err := allocation.NewPrimaryRow(
			rowID,
			item.Name(),
			mode,
			item.NetWeight(),
			item.BoxCount(),
			price,
		)
		if err != nil {
			return nil, err
		}
		if err := rows.Upsert(primary); err != nil {
			return nil, err
		}
	}

	collectionType := ""
	if payload != nil {
		collectionType = payload.CollectionType
		if err := r.overlayAssignments(order, rows, payload.Assignments, resolve); err != nil {
			return nil, err
		}
	}

	for _, item := range order.Items() {
		if err := r.splitter.Rebalance(order, rows, item.ID()); err != nil {
			return nil, err
		}
	}

	addressOf := func(entityType kernel.EntityType, entityID int64, entityName string) string {
		if resolve == nil {
			return ""
		}
		if _, address, found := resolve(entityType, entityName); found {
			return address
		}
		return ""
	}
	if err := r.deriver.RefreshAll(rows, routes, addressOf); err != nil {
		return nil, err
	}

	if payload != nil {
		r.overlayRoutes(routes, payload.Routes)
	}

	return worksheet.NewWorksheet(order, stg, collectionType, rows, routes, now)
}

// overlayAssignments applies stored assignment records onto the fresh rows.
func (r Reconciler) overlayAssignments(
	order *product.Order,
	rows *allocation.RowSet,
	records []stage.AssignmentRecord,
	resolve EntityResolver,
) error {
	seen := make(map[string]bool)
	for _, record := range records {
		rowID, err := kernel.ParseRowID(record.ID.String())
		if err != nil {
			continue
		}
		if _, ok := order.Item(rowID.ItemID()); !ok {
			continue
		}

		if seen[rowID.String()] {
			rowID, err = kernel.NewRemainderRowID(rowID.ItemID(), rows.NextRemainderIndex(rowID.ItemID()))
			if err != nil {
				return err
			}
		}
		seen[rowID.String()] = true

		row, err := rows.Get(rowID)
		if err != nil {
			item, _ := order.Item(rowID.ItemID())
			row, err = allocation.NewRemainderRow(
				rowID,
				item.Name(),
				order.UnitMode(),
				kernel.ZeroQuantity(),
				kernel.ZeroQuantity(),
			)
			if err != nil {
				return err
			}
			if err := rows.Upsert(row); err != nil {
				return err
			}
		}

		if err := r.applyAssignment(row, record, resolve); err != nil {
			return err
		}
	}
	return nil
}

func (r Reconciler) applyAssignment(
	row *allocation.Row,
	record stage.AssignmentRecord,
	resolve EntityResolver,
) error {
	entityType, err := kernel.EntityTypeFromString(record.EntityType)
	if err != nil {
		entityType = kernel.UnknownEntity
	}

	if entityType != kernel.UnknownEntity && record.AssignedTo != "" {
		entityID := record.EntityID.Int64()
		if resolve != nil {
			if id, _, found := resolve(entityType, record.AssignedTo); found {
				entityID = id
			}
		}
		if err := row.AssignSource(entityType, record.AssignedTo, entityID); err != nil {
			return err
		}
	}

	if err := row.SetAssignedAmount(record.AssignedQty.ClampZero()); err != nil {
		return err
	}
	if err := row.SetAssignedBoxes(record.AssignedBoxes.ClampZero()); err != nil {
		return err
	}
	if record.Price.IsPositive() {
		if err := row.SetPrice(record.Price); err != nil {
			return err
		}
	}
	if place, err := allocation.PlaceFromString(record.Place); err == nil {
		if err := row.SetPlace(place); err != nil {
			return err
		}
	}
	row.SetTapeColor(record.TapeColor)
	return nil
}

// overlayRoutes copies stored driver, labour and status edits onto the
// re-derived routes. Matching is by the row encoded in the stored route id,
// so a route follows its row even when the entity id changed.
func (r Reconciler) overlayRoutes(routes *route.RouteSet, records []stage.RouteRecord) {
	for _, record := range records {
		stored, err := kernel.ParseRouteID(record.RouteID)
		if err != nil {
			continue
		}
		for _, derived := range routes.All() {
			if !derived.RouteID().RowID().IsEqual(stored.RowID()) {
				continue
			}
			if record.Driver != "" {
				derived.SetDriver(record.Driver)
			}
			if len(record.Labours) > 0 {
				derived.SetLabours(record.Labours)
			}
			if record.Status != "" {
				derived.SetStatus(record.Status)
			}
			if record.DropDriver != "" {
				derived.SetDropDriver(record.DropDriver)
			}
			if record.CollectionStatus != "" {
				derived.SetCollectionStatus(record.CollectionStatus)
			}
		}
	}
}
