package allocation

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRowIsNotConstructed is returned when a Row was not created through one
// of the package constructors.
var ErrRowIsNotConstructed = errors.New("Row must be created via NewPrimaryRow, NewRemainderRow or RestoreRow constructor")

// Row is one editable line of the allocation table. A primary row represents
// the full ordered quantity of an item; a remainder row represents the
// shortfall left after earlier rows of the same item were sourced.
//
// Over-assignment is accepted: a source may deliver more than the row needs
// and the excess goes to stock. Only the displayed remainder is clamped at
// zero, the raw assigned amount is kept as entered.
type Row struct {
	rowID       kernel.RowID
	productName string
	unitMode    kernel.UnitMode

	neededAmount kernel.Quantity
	neededBoxes  kernel.Quantity

	entityType kernel.EntityType
	entityName string
	entityID   int64

	assignedAmount kernel.Quantity
	assignedBoxes  kernel.Quantity
	price          kernel.Quantity
	place          Place
	tapeColor      string

	guard guard.ConstructorGuard
}

// NewPrimaryRow creates the primary allocation row of an order item. The
// price is prefilled from the market-price snapshot and stays editable.
func NewPrimaryRow(
	rowID kernel.RowID,
	productName string,
	unitMode kernel.UnitMode,
	neededAmount kernel.Quantity,
	neededBoxes kernel.Quantity,
	price kernel.Quantity,
) (*Row, error) {
	if rowID.IsRemaining() {
		return nil, errs.NewValueIsInvalidError("row id")
	}
	return newRow(rowID, productName, unitMode, neededAmount, neededBoxes, price)
}

// NewRemainderRow creates a remainder row for the given shortfall. Remainder
// rows start without a price of their own.
func NewRemainderRow(
	rowID kernel.RowID,
	productName string,
	unitMode kernel.UnitMode,
	neededAmount kernel.Quantity,
	neededBoxes kernel.Quantity,
) (*Row, error) {
	if !rowID.IsRemaining() {
		return nil, errs.NewValueIsInvalidError("row id")
	}
	return newRow(rowID, productName, unitMode, neededAmount, neededBoxes, kernel.ZeroQuantity())
}

func newRow(
	rowID kernel.RowID,
	productName string,
	unitMode kernel.UnitMode,
	neededAmount kernel.Quantity,
	neededBoxes kernel.Quantity,
	price kernel.Quantity,
) (*Row, error) {
	err := errors.Join(
		rowID.Validate(),
		unitMode.Validate(),
	)
	if err != nil {
		return nil, err
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if neededAmount.IsNegative() || neededBoxes.IsNegative() || price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("row quantities")
	}

	return &Row{
		rowID:        rowID,
		productName:  productName,
		unitMode:     unitMode,
		neededAmount: neededAmount,
		neededBoxes:  neededBoxes,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRow reconstructs a row from persisted state.
func RestoreRow(
	rowID kernel.RowID,
	productName string,
	unitMode kernel.UnitMode,
	neededAmount kernel.Quantity,
	neededBoxes kernel.Quantity,
	entityType kernel.EntityType,
	entityName string,
	entityID int64,
	assignedAmount kernel.Quantity,
	assignedBoxes kernel.Quantity,
	price kernel.Quantity,
	place Place,
	tapeColor string,
) (*Row, error) {
	row, err := newRow(rowID, productName, unitMode, neededAmount, neededBoxes, price)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(entityType.Validate(), place.Validate()); err != nil {
		return nil, err
	}

	row.entityType = entityType
	row.entityName = entityName
	row.entityID = entityID
	row.assignedAmount = assignedAmount.ClampZero()
	row.assignedBoxes = assignedBoxes.ClampZero()
	row.place = place
	row.tapeColor = tapeColor
	return row, nil
}

// Validate checks the row was properly constructed.
func (r *Row) Validate() error {
	if r == nil {
		return ErrRowIsNotConstructed
	}
	return r.guard.Validate(ErrRowIsNotConstructed)
}

// RowID returns the row's composite key.
func (r *Row) RowID() kernel.RowID {
	return r.rowID
}

// ProductName returns the product name of the underlying order item.
func (r *Row) ProductName() string {
	return r.productName
}

// UnitMode returns the unit convention inherited from the order.
func (r *Row) UnitMode() kernel.UnitMode {
	return r.unitMode
}

// NeededAmount returns the weight this row needs sourced, in kg.
func (r *Row) NeededAmount() kernel.Quantity {
	return r.neededAmount
}

// NeededBoxes returns the box count this row needs sourced.
func (r *Row) NeededBoxes() kernel.Quantity {
	return r.neededBoxes
}

// EntityType returns the kind of the assigned source, UnknownEntity when the
// row is unassigned.
func (r *Row) EntityType() kernel.EntityType {
	return r.entityType
}

// EntityName returns the display name of the assigned source.
func (r *Row) EntityName() string {
	return r.entityName
}

// EntityID returns the directory id of the assigned source, zero when the
// source name could not be resolved.
func (r *Row) EntityID() int64 {
	return r.entityID
}

// AssignedAmount returns the weight the assigned source will supply.
func (r *Row) AssignedAmount() kernel.Quantity {
	return r.assignedAmount
}

// AssignedBoxes returns the box count the assigned source will supply.
func (r *Row) AssignedBoxes() kernel.Quantity {
	return r.assignedBoxes
}

// Price returns the unit price of this row.
func (r *Row) Price() kernel.Quantity {
	return r.price
}

// Place returns the pickup place annotation.
func (r *Row) Place() Place {
	return r.place
}

// TapeColor returns the packaging tape color annotation.
func (r *Row) TapeColor() string {
	return r.tapeColor
}

// HasSource reports whether a source entity is assigned to the row.
func (r *Row) HasSource() bool {
	return r.entityType != kernel.UnknownEntity && r.entityName != ""
}

// AssignSource sets the supplying entity of the row.
func (r *Row) AssignSource(entityType kernel.EntityType, entityName string, entityID int64) error {
	if entityType == kernel.UnknownEntity || entityName == "" {
		return errs.NewValueIsRequiredError("source entity")
	}
	if err := entityType.Validate(); err != nil {
		return err
	}
	if entityID < 0 {
		return errs.NewValueIsInvalidError("entity id")
	}

	r.entityType = entityType
	r.entityName = entityName
	r.entityID = entityID
	return nil
}

// ClearSource removes the assigned entity and its quantities from the row.
func (r *Row) ClearSource() {
	r.entityType = kernel.UnknownEntity
	r.entityName = ""
	r.entityID = 0
	r.assignedAmount = kernel.ZeroQuantity()
	r.assignedBoxes = kernel.ZeroQuantity()
}

// SetNeeded overwrites the row's needed quantities. The remainder chain
// recomputes these on every assignment change.
func (r *Row) SetNeeded(amount kernel.Quantity, boxes kernel.Quantity) error {
	if amount.IsNegative() || boxes.IsNegative() {
		return errs.NewValueIsInvalidError("needed quantities")
	}
	r.neededAmount = amount
	r.neededBoxes = boxes
	return nil
}

// SetAssignedAmount sets the weight the source will supply. Amounts above the
// needed quantity are accepted, the excess goes to stock.
func (r *Row) SetAssignedAmount(amount kernel.Quantity) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("assigned amount")
	}
	r.assignedAmount = amount
	return nil
}

// SetAssignedBoxes sets the box count the source will supply.
func (r *Row) SetAssignedBoxes(boxes kernel.Quantity) error {
	if boxes.IsNegative() {
		return errs.NewValueIsInvalidError("assigned boxes")
	}
	r.assignedBoxes = boxes
	return nil
}

// SetPrice overrides the unit price of the row.
func (r *Row) SetPrice(price kernel.Quantity) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	r.price = price
	return nil
}

// SetPlace sets the pickup place annotation.
func (r *Row) SetPlace(place Place) error {
	if err := place.Validate(); err != nil {
		return err
	}
	r.place = place
	return nil
}

// SetTapeColor sets the packaging tape color annotation.
func (r *Row) SetTapeColor(color string) {
	r.tapeColor = color
}

// AssignedUnits returns the quantity the splitter deducts for this row: the
// assigned box count in box mode, the assigned weight otherwise.
func (r *Row) AssignedUnits() kernel.Quantity {
	if r.unitMode == kernel.BoxMode {
		return r.assignedBoxes
	}
	return r.assignedAmount
}

// NeededUnits returns the quantity the splitter tracks for this row, in the
// row's unit mode.
func (r *Row) NeededUnits() kernel.Quantity {
	if r.unitMode == kernel.BoxMode {
		return r.neededBoxes
	}
	return r.neededAmount
}

// EffectiveQuantity is the weight a derived route carries: the assigned
// amount when one was entered, the needed amount otherwise.
func (r *Row) EffectiveQuantity() kernel.Quantity {
	if r.assignedAmount.IsPositive() {
		return r.assignedAmount
	}
	return r.neededAmount
}

// ExcessToStock returns how much of the assigned quantity exceeds the need,
// zero when the row is under-assigned.
func (r *Row) ExcessToStock() kernel.Quantity {
	return r.assignedAmount.Sub(r.neededAmount).ClampZero()
}

// Amount returns the row's monetary value, price times assigned weight.
func (r *Row) Amount() kernel.Quantity {
	return r.price.Mul(r.assignedAmount).Round2()
}
