package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AssignSourceCommandHandler applies a row edit to the open worksheet: it
// writes the entity and quantities onto the row, rebalances the item's
// remainder chain and re-derives the row's route.
type AssignSourceCommandHandler struct {
	directory ports.EntityDirectory
	store     ports.WorksheetStore
	splitter  services.RemainderSplitter
	deriver   services.RouteDeriver
	now       func() time.Time
}

// NewAssignSourceCommandHandler creates a handler for row edits.
func NewAssignSourceCommandHandler(
	directory ports.EntityDirectory,
	store ports.WorksheetStore,
) AssignSourceCommandHandler {
	return AssignSourceCommandHandler{
		directory: directory,
		store:     store,
		splitter:  services.NewRemainderSplitter(),
		deriver:   services.NewRouteDeriver(),
		now:       time.Now,
	}
}

// Handle processes the row edit. The stage must have been opened first;
// editing without a worksheet is an error, not an implicit open.
func (h *AssignSourceCommandHandler) Handle(ctx context.Context, cmd AssignSourceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ws, err := h.store.Get(ctx, cmd.OrderID(), cmd.Stage())
	if err != nil {
		return err
	}

	row, err := ws.Rows().Get(cmd.RowID())
	if err != nil {
		return err
	}

	if cmd.EntityName() == "" {
		row.ClearSource()
	} else {
		entityID := int64(0)
		if entry, err := h.directory.ResolveEntity(ctx, cmd.EntityType(), cmd.EntityName()); err == nil {
			entityID = entry.ID
		}
		if err := row.AssignSource(cmd.EntityType(), cmd.EntityName(), entityID); err != nil {
			return err
		}
		if err := row.SetAssignedAmount(cmd.AssignedAmount()); err != nil {
			return err
		}
		if err := row.SetAssignedBoxes(cmd.AssignedBoxes()); err != nil {
			return err
		}
	}

	if cmd.Price().IsPositive() {
		if err := row.SetPrice(cmd.Price()); err != nil {
			return err
		}
	}
	if err := row.SetPlace(cmd.Place()); err != nil {
		return err
	}
	if ws.Stage().SupportsTapeColor() {
		row.SetTapeColor(cmd.TapeColor())
	}

	if err := h.splitter.Rebalance(ws.Order(), ws.Rows(), cmd.RowID().ItemID()); err != nil {
		return err
	}
	if err := h.deriver.Refresh(ws.Rows(), ws.Routes(), cmd.RowID(), h.addressResolver(ctx)); err != nil {
		return err
	}

	ws.Touch(h.now())
	return h.store.Put(ctx, ws)
}

func (h *AssignSourceCommandHandler) addressResolver(ctx context.Context) services.AddressResolver {
	return func(entityType kernel.EntityType, entityID int64, entityName string) string {
		entry, err := h.directory.ResolveEntity(ctx, entityType, entityName)
		if err != nil {
			return ""
		}
		return entry.Address
	}
}
