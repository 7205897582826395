package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverAggregator_Summarize(t *testing.T) {
	aggregator := services.NewDriverAggregator()
	deriver := services.NewRouteDeriver()

	t.Run("groups routes by driver with rounded totals", func(t *testing.T) {
		item1, err := kernel.NewRowID("OI-1")
		require.NoError(t, err)
		item2, err := kernel.NewRowID("OI-2")
		require.NoError(t, err)

		order := buildTwoItemOrder(t)
		rows := seedRows(t, order)
		routes := route.NewRouteSet()

		assign(t, rows, "OI-1", kernel.Farmer, "Kumar", 7, 60.005)
		assign(t, rows, "OI-2", kernel.Supplier, "Fresh Co", 3, 40)
		require.NoError(t, deriver.Refresh(rows, routes, item1, nil))
		require.NoError(t, deriver.Refresh(rows, routes, item2, nil))

		r1, err := routes.GetByKey("farmer-7-OI-1")
		require.NoError(t, err)
		r1.SetDriver("Raj - 4")
		r2, err := routes.GetByKey("supplier-3-OI-2")
		require.NoError(t, err)
		r2.SetDriver("Raj - 4")

		summary := aggregator.Summarize(stage.Collection, rows, routes)

		require.Len(t, summary.DriverAssignments, 1)
		driver := summary.DriverAssignments[0]
		assert.Equal(t, "Raj - 4", driver.Driver)
		assert.Len(t, driver.Assignments, 2)
		assert.Equal(t, "100.01", driver.TotalWeight.String())
		assert.Equal(t, 2, summary.TotalCollections)
		assert.Equal(t, 1, summary.TotalDrivers)
	})

	t.Run("driverless routes are invisible", func(t *testing.T) {
		item1, err := kernel.NewRowID("OI-1")
		require.NoError(t, err)

		order := buildWeightOrder(t, "OI-1", 100)
		rows := seedRows(t, order)
		routes := route.NewRouteSet()
		assign(t, rows, "OI-1", kernel.Farmer, "Kumar", 7, 60)
		require.NoError(t, deriver.Refresh(rows, routes, item1, nil))

		summary := aggregator.Summarize(stage.Collection, rows, routes)

		assert.Empty(t, summary.DriverAssignments)
		assert.Equal(t, 0, summary.TotalCollections)
	})

	t.Run("amounts appear only on the pricing stage", func(t *testing.T) {
		item1, err := kernel.NewRowID("OI-1")
		require.NoError(t, err)

		order := buildWeightOrder(t, "OI-1", 100)
		rows := seedRows(t, order) // price 30 per kg
		routes := route.NewRouteSet()
		assign(t, rows, "OI-1", kernel.Farmer, "Kumar", 7, 60)
		require.NoError(t, deriver.Refresh(rows, routes, item1, nil))

		r, err := routes.GetByKey("farmer-7-OI-1")
		require.NoError(t, err)
		r.SetDriver("Raj - 4")

		priced := aggregator.Summarize(stage.Pricing, rows, routes)
		require.Len(t, priced.DriverAssignments, 1)
		assert.Equal(t, "1800", priced.DriverAssignments[0].TotalAmount.String())

		unpriced := aggregator.Summarize(stage.Collection, rows, routes)
		assert.True(t, unpriced.DriverAssignments[0].TotalAmount.IsZero())
	})

	t.Run("drivers come out alphabetically", func(t *testing.T) {
		item1, err := kernel.NewRowID("OI-1")
		require.NoError(t, err)
		item2, err := kernel.NewRowID("OI-2")
		require.NoError(t, err)

		order := buildTwoItemOrder(t)
		rows := seedRows(t, order)
		routes := route.NewRouteSet()
		assign(t, rows, "OI-1", kernel.Farmer, "Kumar", 7, 60)
		assign(t, rows, "OI-2", kernel.Supplier, "Fresh Co", 3, 40)
		require.NoError(t, deriver.Refresh(rows, routes, item1, nil))
		require.NoError(t, deriver.Refresh(rows, routes, item2, nil))

		r1, err := routes.GetByKey("farmer-7-OI-1")
		require.NoError(t, err)
		r1.SetDriver("Zoya - 9")
		r2, err := routes.GetByKey("supplier-3-OI-2")
		require.NoError(t, err)
		r2.SetDriver("Arun - 2")

		summary := aggregator.Summarize(stage.Collection, rows, routes)
		require.Len(t, summary.DriverAssignments, 2)
		assert.Equal(t, "Arun - 2", summary.DriverAssignments[0].Driver)
		assert.Equal(t, "Zoya - 9", summary.DriverAssignments[1].Driver)
	})
}
