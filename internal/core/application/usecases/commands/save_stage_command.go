package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/guard"
)

var ErrSaveStageCommandIsNotConstructed = errors.New(
	"SaveStageCommand must be created via NewSaveStageCommand constructor",
)

// SaveStageCommand persists the open worksheet of an (order, stage) pair as
// the stage's payload. Data-quality problems are recorded alongside the
// payload, they never block the save.
type SaveStageCommand struct { //nolint:recvcheck //using for validation
	orderID        string
	stg            stage.Stage
	collectionType string

	guard guard.ConstructorGuard
}

// NewSaveStageCommand creates a command to save a stage. The collection type
// is an optional override of the container type recorded in the payload.
func NewSaveStageCommand(orderID string, stg stage.Stage, collectionType string) (SaveStageCommand, error) {
	cmd := SaveStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stg),
	); err != nil {
		return SaveStageCommand{}, err
	}
	cmd.collectionType = collectionType

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveStageCommand) Validate() error {
	return c.guard.Validate(ErrSaveStageCommandIsNotConstructed)
}

// OrderID returns the order being saved.
func (c SaveStageCommand) OrderID() string {
	return c.orderID
}

// Stage returns the stage being saved.
func (c SaveStageCommand) Stage() stage.Stage {
	return c.stg
}

// CollectionType returns the container type override, blank to keep the
// worksheet's current value.
func (c SaveStageCommand) CollectionType() string {
	return c.collectionType
}

func (c *SaveStageCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *SaveStageCommand) setStage(stg stage.Stage) error {
	if err := stg.Validate(); err != nil {
		return err
	}

	c.stg = stg
	return nil
}
