package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/worksheet"
	"fulfillment/internal/core/ports"
)

// GetStageViewQueryHandler renders the open worksheet of a stage. The view
// reads only from the worksheet store; persisted summaries are never
// consulted, everything displayed is recomputed from live state.
type GetStageViewQueryHandler struct {
	store ports.WorksheetStore
}

// NewGetStageViewQueryHandler creates a handler for stage view queries.
func NewGetStageViewQueryHandler(store ports.WorksheetStore) GetStageViewQueryHandler {
	return GetStageViewQueryHandler{store: store}
}

// Handle renders the editing view of the (order, stage) pair. Returns
// errs.ErrObjectNotFound when the stage has not been opened.
func (h GetStageViewQueryHandler) Handle(
	ctx context.Context,
	query GetStageViewQuery,
) (GetStageViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStageViewQueryResponse{}, err
	}

	ws, err := h.store.Get(ctx, query.OrderID(), query.Stage())
	if err != nil {
		return GetStageViewQueryResponse{}, err
	}

	return renderWorksheet(ws), nil
}

func renderWorksheet(ws *worksheet.Worksheet) GetStageViewQueryResponse {
	rows := ws.Rows().All()
	rowViews := make([]RowView, 0, len(rows))
	for _, row := range rows {
		rowViews = append(rowViews, renderRow(row))
	}

	routes := ws.Routes().All()
	routeViews := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		routeViews = append(routeViews, renderRoute(r))
	}

	issues := ws.Issues()
	if issues == nil {
		issues = []string{}
	}

	return GetStageViewQueryResponse{
		OrderID:        ws.OrderID(),
		Stage:          ws.Stage().String(),
		UnitMode:       ws.UnitMode().String(),
		CollectionType: ws.CollectionType(),
		Rows:           rowViews,
		Routes:         routeViews,
		Issues:         issues,
	}
}

func renderRow(row *allocation.Row) RowView {
	return RowView{
		RowID:         row.RowID().String(),
		Product:       row.ProductName(),
		IsRemaining:   row.RowID().IsRemaining(),
		NeededQty:     row.NeededAmount().Float64(),
		NeededBoxes:   row.NeededBoxes().Float64(),
		EntityType:    row.EntityType().String(),
		EntityID:      row.EntityID(),
		AssignedTo:    row.EntityName(),
		AssignedQty:   row.AssignedAmount().Float64(),
		AssignedBoxes: row.AssignedBoxes().Float64(),
		Price:         row.Price().Float64(),
		Amount:        row.Amount().Float64(),
		ExcessToStock: row.ExcessToStock().Float64(),
		Place:         row.Place().String(),
		TapeColor:     row.TapeColor(),
	}
}

func renderRoute(r *route.Route) RouteView {
	labours := r.Labours()
	if labours == nil {
		labours = []string{}
	}

	return RouteView{
		RouteID:          r.RouteID().String(),
		Oiid:             r.ItemID(),
		Product:          r.Product(),
		Location:         r.Location(),
		Address:          r.Address(),
		EntityType:       r.RouteID().EntityType().String(),
		EntityID:         r.RouteID().EntityID(),
		Quantity:         r.Quantity().Float64(),
		AssignedBoxes:    r.AssignedBoxes().Float64(),
		IsRemaining:      r.IsRemaining(),
		Driver:           r.Driver(),
		Labours:          labours,
		Status:           r.Status(),
		DropDriver:       r.DropDriver(),
		CollectionStatus: r.CollectionStatus(),
	}
}
