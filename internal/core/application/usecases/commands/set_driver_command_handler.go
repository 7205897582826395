package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// SetDriverCommandHandler applies transport edits to a route of the open
// worksheet.
type SetDriverCommandHandler struct {
	store ports.WorksheetStore
	now   func() time.Time
}

// NewSetDriverCommandHandler creates a handler for route transport edits.
func NewSetDriverCommandHandler(store ports.WorksheetStore) SetDriverCommandHandler {
	return SetDriverCommandHandler{
		store: store,
		now:   time.Now,
	}
}

// Handle processes the route edit. The stage must have been opened first.
func (h *SetDriverCommandHandler) Handle(ctx context.Context, cmd SetDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ws, err := h.store.Get(ctx, cmd.OrderID(), cmd.Stage())
	if err != nil {
		return err
	}

	route, err := ws.Routes().GetByKey(cmd.RouteKey())
	if err != nil {
		return err
	}

	route.SetDriver(cmd.Driver())
	route.SetLabours(cmd.Labours())
	route.SetStatus(cmd.Status())
	route.SetDropDriver(cmd.DropDriver())
	route.SetCollectionStatus(cmd.CollectionStatus())

	ws.Touch(h.now())
	return h.store.Put(ctx, ws)
}
