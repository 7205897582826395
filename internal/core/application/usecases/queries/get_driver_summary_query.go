package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDriverSummaryQueryIsNotConstructed = errors.New(
	"GetDriverSummaryQuery must be created via NewGetDriverSummaryQuery constructor",
)

// GetDriverSummaryQuery retrieves the per-driver collection report of an
// open stage. The report is always recomputed from the live worksheet, the
// snapshot persisted with earlier saves is write-only.
type GetDriverSummaryQuery struct {
	orderID string
	stg     stage.Stage

	guard guard.ConstructorGuard
}

// NewGetDriverSummaryQuery creates a query for a stage's driver summary.
func NewGetDriverSummaryQuery(orderID string, stg stage.Stage) (GetDriverSummaryQuery, error) {
	if orderID == "" {
		return GetDriverSummaryQuery{}, errors.New("order id is required")
	}
	if err := stg.Validate(); err != nil {
		return GetDriverSummaryQuery{}, err
	}

	return GetDriverSummaryQuery{
		orderID: orderID,
		stg:     stg,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverSummaryQueryIsNotConstructed)
}

// OrderID returns the order being summarized.
func (q GetDriverSummaryQuery) OrderID() string {
	return q.orderID
}

// Stage returns the stage being summarized.
func (q GetDriverSummaryQuery) Stage() stage.Stage {
	return q.stg
}
