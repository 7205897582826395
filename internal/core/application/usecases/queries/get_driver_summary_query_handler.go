package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetDriverSummaryQueryHandler recomputes the driver summary of an open
// worksheet.
type GetDriverSummaryQueryHandler struct {
	store      ports.WorksheetStore
	aggregator services.DriverAggregator
}

// NewGetDriverSummaryQueryHandler creates a handler for driver summary
// queries.
func NewGetDriverSummaryQueryHandler(store ports.WorksheetStore) GetDriverSummaryQueryHandler {
	return GetDriverSummaryQueryHandler{
		store:      store,
		aggregator: services.NewDriverAggregator(),
	}
}

// Handle computes the per-driver report of the (order, stage) pair. Returns
// errs.ErrObjectNotFound when the stage has not been opened.
func (h GetDriverSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDriverSummaryQuery,
) (*stage.SummarySnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ws, err := h.store.Get(ctx, query.OrderID(), query.Stage())
	if err != nil {
		return nil, err
	}

	return h.aggregator.Summarize(ws.Stage(), ws.Rows(), ws.Routes()), nil
}
