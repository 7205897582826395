package worksheet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrWorksheetIsNotConstructed is returned when a Worksheet was not created
// through the NewWorksheet constructor.
var ErrWorksheetIsNotConstructed = errors.New("Worksheet must be created via NewWorksheet constructor")

// Worksheet is the editing state of one (order, stage) pair. Commands mutate
// it in memory; SaveStage flattens it into a stage payload and persists the
// payload wholesale.
type Worksheet struct {
	order          *product.Order
	stg            stage.Stage
	unitMode       kernel.UnitMode
	collectionType string

	rows   *allocation.RowSet
	routes *route.RouteSet

	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewWorksheet creates a worksheet over the given order and stage.
func NewWorksheet(
	order *product.Order,
	stg stage.Stage,
	collectionType string,
	rows *allocation.RowSet,
	routes *route.RouteSet,
	now time.Time,
) (*Worksheet, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := stg.Validate(); err != nil {
		return nil, err
	}
	if rows == nil || routes == nil {
		return nil, errs.NewValueIsRequiredError("rows and routes")
	}
	if collectionType == "" {
		collectionType = defaultCollectionType(order.UnitMode())
	}

	return &Worksheet{
		order:          order,
		stg:            stg,
		unitMode:       order.UnitMode(),
		collectionType: collectionType,
		rows:           rows,
		routes:         routes,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func defaultCollectionType(mode kernel.UnitMode) string {
	if mode == kernel.BoxMode {
		return "Box"
	}
	return "Bag"
}

// Validate checks the worksheet was properly constructed.
func (w *Worksheet) Validate() error {
	if w == nil {
		return ErrWorksheetIsNotConstructed
	}
	return w.guard.Validate(ErrWorksheetIsNotConstructed)
}

// Order returns the order snapshot the worksheet edits against.
func (w *Worksheet) Order() *product.Order {
	return w.order
}

// OrderID returns the order identifier.
func (w *Worksheet) OrderID() string {
	return w.order.ID()
}

// Stage returns the pipeline stage being edited.
func (w *Worksheet) Stage() stage.Stage {
	return w.stg
}

// UnitMode returns the order's unit convention.
func (w *Worksheet) UnitMode() kernel.UnitMode {
	return w.unitMode
}

// CollectionType returns the packaging container type, "Box" or "Bag".
func (w *Worksheet) CollectionType() string {
	return w.collectionType
}

// SetCollectionType overrides the packaging container type.
func (w *Worksheet) SetCollectionType(collectionType string) {
	if collectionType != "" {
		w.collectionType = collectionType
	}
}

// Rows returns the allocation rows of the worksheet.
func (w *Worksheet) Rows() *allocation.RowSet {
	return w.rows
}

// Routes returns the derived delivery routes of the worksheet.
func (w *Worksheet) Routes() *route.RouteSet {
	return w.routes
}

// UpdatedAt returns the time of the last edit.
func (w *Worksheet) UpdatedAt() time.Time {
	return w.updatedAt
}

// Touch records an edit time. The worksheet store uses it to expire idle
// worksheets.
func (w *Worksheet) Touch(now time.Time) {
	w.updatedAt = now
}

// SaveBlockedError reports the rows an operator must complete before the
// worksheet can be saved, listed by product name.
type SaveBlockedError struct {
	Reason   string
	Products []string
}

func (e *SaveBlockedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Products, ", "))
}

func (e *SaveBlockedError) Unwrap() error {
	return errs.ErrValueIsRequired
}

// ValidateForSave checks the worksheet is complete enough to persist. Every
// primary row must carry a source entity; on the pricing stage every sourced
// row must also carry a non-zero price and assigned quantity. A failure
// blocks the save entirely, nothing is written.
func (w *Worksheet) ValidateForSave() error {
	var unsourced, incomplete []string
	for _, row := range w.rows.All() {
		if !row.RowID().IsRemaining() && !row.HasSource() {
			unsourced = append(unsourced, row.ProductName())
			continue
		}
		if w.stg.RequiresPricing() && row.HasSource() &&
			(row.Price().IsZero() || row.AssignedAmount().IsZero()) {
			incomplete = append(incomplete, row.ProductName())
		}
	}

	var err error
	if len(unsourced) > 0 {
		err = &SaveBlockedError{Reason: "source entity is not assigned", Products: unsourced}
	}
	if len(incomplete) > 0 {
		err = errors.Join(err, &SaveBlockedError{
			Reason: "price and assigned quantity are required", Products: incomplete})
	}
	return err
}

// Issues lists the data-quality problems a save should record alongside the
// payload. A zero-priced row on a non-pricing stage is saved and flagged; on
// the pricing stage the same condition blocks the save in ValidateForSave.
func (w *Worksheet) Issues() []string {
	var issues []string
	for _, row := range w.rows.All() {
		if !row.HasSource() {
			continue
		}
		if row.Price().IsZero() {
			issues = append(issues, fmt.Sprintf("missing price: %s", row.ProductName()))
		}
	}
	return issues
}

// BuildPayload flattens the worksheet into the persisted stage payload. Rows
// and routes are emitted in their canonical order so repeated saves of the
// same state produce identical documents.
func (w *Worksheet) BuildPayload(summary *stage.SummarySnapshot) stage.Payload {
	rows := w.rows.All()
	assignments := make([]stage.AssignmentRecord, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, stage.AssignmentRecord{
			ID:            stage.FlexID(row.RowID().String()),
			Product:       row.ProductName(),
			NeededQty:     row.NeededAmount(),
			NeededBoxes:   row.NeededBoxes(),
			EntityType:    row.EntityType().String(),
			EntityID:      stage.FlexID(fmt.Sprintf("%d", row.EntityID())),
			AssignedTo:    row.EntityName(),
			AssignedQty:   row.AssignedAmount(),
			AssignedBoxes: row.AssignedBoxes(),
			Price:         row.Price(),
			Place:         row.Place().String(),
			TapeColor:     row.TapeColor(),
		})
	}

	derived := w.routes.All()
	routes := make([]stage.RouteRecord, 0, len(derived))
	for _, r := range derived {
		routes = append(routes, stage.RouteRecord{
			RouteID:          r.RouteID().String(),
			SourceID:         stage.FlexID(r.RouteID().RowID().String()),
			Oiid:             stage.FlexID(r.ItemID()),
			Product:          r.Product(),
			Location:         r.Location(),
			Address:          r.Address(),
			EntityType:       r.RouteID().EntityType().String(),
			EntityID:         stage.FlexID(fmt.Sprintf("%d", r.RouteID().EntityID())),
			Quantity:         r.Quantity(),
			AssignedBoxes:    r.AssignedBoxes(),
			IsRemaining:      r.IsRemaining(),
			Driver:           r.Driver(),
			Labours:          stage.FlexStrings(r.Labours()),
			Status:           r.Status(),
			DropDriver:       r.DropDriver(),
			CollectionStatus: r.CollectionStatus(),
		})
	}

	return stage.Payload{
		CollectionType: w.collectionType,
		Assignments:    assignments,
		Routes:         routes,
		Summary:        summary,
	}
}
