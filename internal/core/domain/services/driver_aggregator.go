package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/stage"
)

// DriverAggregator is a domain service that folds the routes with an
// assigned driver into the per-driver summary written alongside every save.
//
// Business rules:
//   - Routes without a driver are invisible to the summary.
//   - Grouping is by the driver display string exactly as assigned.
//   - Weights are summed and rounded to two decimals per driver and overall.
//   - Monetary amounts appear only for stages that price their rows; the
//     amount of a route is its weight times the unit price of its row.
//   - Drivers are emitted in alphabetical order so repeated saves of the
//     same state produce identical documents.
type DriverAggregator struct{}

// NewDriverAggregator creates a new DriverAggregator instance.
func NewDriverAggregator() DriverAggregator {
	return DriverAggregator{}
}

// Summarize builds the driver summary snapshot of a stage.
//
// Parameters:
//   - stg: the stage being saved, decides whether amounts are computed
//   - rows: the allocation rows, consulted for unit prices
//   - routes: the derived routes of the stage
//
// Returns:
//   - *stage.SummarySnapshot: the denormalized per-driver report
func (a DriverAggregator) Summarize(
	stg stage.Stage,
	rows *allocation.RowSet,
	routes *route.RouteSet,
) *stage.SummarySnapshot {
	withDriver := routes.WithDriver()

	grouped := make(map[string][]*route.Route)
	for _, r := range withDriver {
		grouped[r.Driver()] = append(grouped[r.Driver()], r)
	}

	drivers := make([]string, 0, len(grouped))
	for driver := range grouped {
		drivers = append(drivers, driver)
	}
	sort.Strings(drivers)

	summary := &stage.SummarySnapshot{
		DriverAssignments: make([]stage.DriverSummaryRecord, 0, len(drivers)),
		TotalCollections:  len(withDriver),
		TotalDrivers:      len(drivers),
	}

	grandWeight := kernel.ZeroQuantity()
	for _, driver := range drivers {
		record := stage.DriverSummaryRecord{Driver: driver}
		weight := kernel.ZeroQuantity()
		amount := kernel.ZeroQuantity()

		for _, r := range grouped[driver] {
			lineAmount := a.routeAmount(stg, rows, r)
			record.Assignments = append(record.Assignments, stage.SummaryAssignmentRecord{
				Product:     r.Product(),
				EntityType:  r.RouteID().EntityType().String(),
				EntityName:  r.Location(),
				Quantity:    r.Quantity(),
				Amount:      lineAmount,
				Status:      r.Status(),
				IsRemaining: r.IsRemaining(),
				Oiid:        r.ItemID(),
			})
			weight = weight.Add(r.Quantity())
			amount = amount.Add(lineAmount)
		}

		record.TotalWeight = weight.Round2()
		record.TotalAmount = amount.Round2()
		summary.DriverAssignments = append(summary.DriverAssignments, record)
		grandWeight = grandWeight.Add(weight)
	}

	summary.TotalWeight = grandWeight.Round2()
	return summary
}

func (a DriverAggregator) routeAmount(
	stg stage.Stage,
	rows *allocation.RowSet,
	r *route.Route,
) kernel.Quantity {
	if !stg.RequiresPricing() {
		return kernel.ZeroQuantity()
	}
	row, err := rows.Get(r.RouteID().RowID())
	if err != nil {
		return kernel.ZeroQuantity()
	}
	return row.Price().Mul(r.Quantity()).Round2()
}
