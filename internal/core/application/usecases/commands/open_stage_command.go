package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrOpenStageCommandIsNotConstructed = errors.New(
		"OpenStageCommand must be created via NewOpenStageCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// OpenStageCommand requests the editing worksheet of an (order, stage) pair
// to be (re)built: from this stage's latest save when one exists, from the
// previous stage's save otherwise, fresh from the order as a last resort.
type OpenStageCommand struct { //nolint:recvcheck //using for validation
	orderID string
	stg     stage.Stage

	guard guard.ConstructorGuard
}

// NewOpenStageCommand creates a command to open a stage for editing.
func NewOpenStageCommand(orderID string, stg stage.Stage) (OpenStageCommand, error) {
	cmd := OpenStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stg),
	); err != nil {
		return OpenStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenStageCommand) Validate() error {
	return c.guard.Validate(ErrOpenStageCommandIsNotConstructed)
}

// OrderID returns the order being opened.
func (c OpenStageCommand) OrderID() string {
	return c.orderID
}

// Stage returns the pipeline stage being opened.
func (c OpenStageCommand) Stage() stage.Stage {
	return c.stg
}

func (c *OpenStageCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *OpenStageCommand) setStage(stg stage.Stage) error {
	if err := stg.Validate(); err != nil {
		return err
	}

	c.stg = stg
	return nil
}
