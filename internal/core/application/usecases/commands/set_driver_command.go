package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetDriverCommandIsNotConstructed = errors.New(
		"SetDriverCommand must be created via NewSetDriverCommand constructor",
	)
	ErrRouteIDIsRequired = errors.New("route id is required")
)

// SetDriverCommand carries the transport edits of one delivery route:
// driver, labour list and the status fields. A blank driver unassigns the
// route; these edits survive any later re-derivation of the route.
type SetDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	stg      stage.Stage
	routeKey string

	driver           string
	labours          []string
	status           string
	dropDriver       string
	collectionStatus string

	guard guard.ConstructorGuard
}

// NewSetDriverCommand creates a command to edit a route's transport fields.
// The route key is the string form of the route id.
func NewSetDriverCommand(
	orderID string,
	stg stage.Stage,
	routeKey string,
	driver string,
	labours []string,
	status string,
	dropDriver string,
	collectionStatus string,
) (SetDriverCommand, error) {
	cmd := SetDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stg),
		cmd.setRouteKey(routeKey),
	); err != nil {
		return SetDriverCommand{}, err
	}

	cmd.driver = driver
	cmd.labours = make([]string, len(labours))
	copy(cmd.labours, labours)
	cmd.status = status
	cmd.dropDriver = dropDriver
	cmd.collectionStatus = collectionStatus

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c SetDriverCommand) OrderID() string {
	return c.orderID
}

// Stage returns the stage being edited.
func (c SetDriverCommand) Stage() stage.Stage {
	return c.stg
}

// RouteKey returns the string id of the route being edited.
func (c SetDriverCommand) RouteKey() string {
	return c.routeKey
}

// Driver returns the driver display string, blank to unassign.
func (c SetDriverCommand) Driver() string {
	return c.driver
}

// Labours returns a copy of the labour names.
func (c SetDriverCommand) Labours() []string {
	out := make([]string, len(c.labours))
	copy(out, c.labours)
	return out
}

// Status returns the route's free-form status.
func (c SetDriverCommand) Status() string {
	return c.status
}

// DropDriver returns the drop-leg driver.
func (c SetDriverCommand) DropDriver() string {
	return c.dropDriver
}

// CollectionStatus returns the collection-leg status.
func (c SetDriverCommand) CollectionStatus() string {
	return c.collectionStatus
}

func (c *SetDriverCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *SetDriverCommand) setStage(stg stage.Stage) error {
	if err := stg.Validate(); err != nil {
		return err
	}

	c.stg = stg
	return nil
}

func (c *SetDriverCommand) setRouteKey(routeKey string) error {
	if routeKey == "" {
		return ErrRouteIDIsRequired
	}

	c.routeKey = routeKey
	return nil
}
