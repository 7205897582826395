package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignSourceCommandIsNotConstructed = errors.New(
	"AssignSourceCommand must be created via NewAssignSourceCommand constructor",
)

// AssignSourceCommand carries the full edited state of one allocation row: a
// blank entity name clears the source, quantities and price are applied as
// sent. The row's remainder chain and routes are re-derived afterwards.
type AssignSourceCommand struct { //nolint:recvcheck //using for validation
	orderID string
	stg     stage.Stage
	rowID   kernel.RowID

	entityType kernel.EntityType
	entityName string

	assignedAmount kernel.Quantity
	assignedBoxes  kernel.Quantity
	price          kernel.Quantity
	place          allocation.Place
	tapeColor      string

	guard guard.ConstructorGuard
}

// NewAssignSourceCommand creates a command to apply a row edit. The entity
// name may be blank to clear the row's source; when a name is given the
// entity type must be concrete.
func NewAssignSourceCommand(
	orderID string,
	stg stage.Stage,
	rowID kernel.RowID,
	entityType kernel.EntityType,
	entityName string,
	assignedAmount kernel.Quantity,
	assignedBoxes kernel.Quantity,
	price kernel.Quantity,
	place allocation.Place,
	tapeColor string,
) (AssignSourceCommand, error) {
	cmd := AssignSourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stg),
		cmd.setRowID(rowID),
		cmd.setEntity(entityType, entityName),
		cmd.setQuantities(assignedAmount, assignedBoxes, price),
		cmd.setPlace(place),
	); err != nil {
		return AssignSourceCommand{}, err
	}
	cmd.tapeColor = tapeColor

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSourceCommand) Validate() error {
	return c.guard.Validate(ErrAssignSourceCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c AssignSourceCommand) OrderID() string {
	return c.orderID
}

// Stage returns the stage being edited.
func (c AssignSourceCommand) Stage() stage.Stage {
	return c.stg
}

// RowID returns the allocation row being edited.
func (c AssignSourceCommand) RowID() kernel.RowID {
	return c.rowID
}

// EntityType returns the kind of the source entity.
func (c AssignSourceCommand) EntityType() kernel.EntityType {
	return c.entityType
}

// EntityName returns the source entity name, blank to clear the source.
func (c AssignSourceCommand) EntityName() string {
	return c.entityName
}

// AssignedAmount returns the weight the source will supply.
func (c AssignSourceCommand) AssignedAmount() kernel.Quantity {
	return c.assignedAmount
}

// AssignedBoxes returns the box count the source will supply.
func (c AssignSourceCommand) AssignedBoxes() kernel.Quantity {
	return c.assignedBoxes
}

// Price returns the unit price entered on the row.
func (c AssignSourceCommand) Price() kernel.Quantity {
	return c.price
}

// Place returns the pickup place annotation.
func (c AssignSourceCommand) Place() allocation.Place {
	return c.place
}

// TapeColor returns the packaging tape color annotation.
func (c AssignSourceCommand) TapeColor() string {
	return c.tapeColor
}

func (c *AssignSourceCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AssignSourceCommand) setStage(stg stage.Stage) error {
	if err := stg.Validate(); err != nil {
		return err
	}

	c.stg = stg
	return nil
}

func (c *AssignSourceCommand) setRowID(rowID kernel.RowID) error {
	if err := rowID.Validate(); err != nil {
		return err
	}

	c.rowID = rowID
	return nil
}

func (c *AssignSourceCommand) setEntity(entityType kernel.EntityType, entityName string) error {
	if entityName != "" {
		if entityType == kernel.UnknownEntity {
			return errs.NewValueIsRequiredError("entityType")
		}
		if err := entityType.Validate(); err != nil {
			return err
		}
	}

	c.entityType = entityType
	c.entityName = entityName
	return nil
}

func (c *AssignSourceCommand) setQuantities(amount, boxes, price kernel.Quantity) error {
	if amount.IsNegative() || boxes.IsNegative() || price.IsNegative() {
		return errors.New("quantities must not be negative")
	}

	c.assignedAmount = amount
	c.assignedBoxes = boxes
	c.price = price
	return nil
}

func (c *AssignSourceCommand) setPlace(place allocation.Place) error {
	if err := place.Validate(); err != nil {
		return err
	}

	c.place = place
	return nil
}
