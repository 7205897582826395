package allocation_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRowID(t *testing.T, itemID string) kernel.RowID {
	t.Helper()
	rowID, err := kernel.NewRowID(itemID)
	require.NoError(t, err)
	return rowID
}

func mustRemainderRowID(t *testing.T, itemID string, split int) kernel.RowID {
	t.Helper()
	rowID, err := kernel.NewRemainderRowID(itemID, split)
	require.NoError(t, err)
	return rowID
}

func newPrimaryRow(t *testing.T, itemID string, needed float64) *allocation.Row {
	t.Helper()
	row, err := allocation.NewPrimaryRow(
		mustRowID(t, itemID),
		"Tomato",
		kernel.WeightMode,
		kernel.NewQuantityFromFloat(needed),
		kernel.ZeroQuantity(),
		kernel.NewQuantityFromFloat(30),
	)
	require.NoError(t, err)
	return row
}

func TestRow_AssignSource(t *testing.T) {
	t.Run("assigns a farmer", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		require.NoError(t, row.AssignSource(kernel.Farmer, "Kumar", 7))
		assert.True(t, row.HasSource())
		assert.Equal(t, int64(7), row.EntityID())
	})

	t.Run("rejects a blank entity", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		require.Error(t, row.AssignSource(kernel.UnknownEntity, "", 0))
		assert.False(t, row.HasSource())
	})

	t.Run("clear removes entity and quantities", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		require.NoError(t, row.AssignSource(kernel.Supplier, "Fresh Co", 3))
		require.NoError(t, row.SetAssignedAmount(kernel.NewQuantityFromFloat(60)))

		row.ClearSource()

		assert.False(t, row.HasSource())
		assert.True(t, row.AssignedAmount().IsZero())
	})
}

func TestRow_Quantities(t *testing.T) {
	t.Run("effective quantity falls back to needed", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		assert.True(t, row.EffectiveQuantity().IsEqual(kernel.NewQuantityFromFloat(100)))

		require.NoError(t, row.SetAssignedAmount(kernel.NewQuantityFromFloat(60)))
		assert.True(t, row.EffectiveQuantity().IsEqual(kernel.NewQuantityFromFloat(60)))
	})

	t.Run("over-assignment is kept, excess goes to stock", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		require.NoError(t, row.SetAssignedAmount(kernel.NewQuantityFromFloat(120)))

		assert.True(t, row.AssignedAmount().IsEqual(kernel.NewQuantityFromFloat(120)))
		assert.True(t, row.ExcessToStock().IsEqual(kernel.NewQuantityFromFloat(20)))
	})

	t.Run("under-assignment has no excess", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		require.NoError(t, row.SetAssignedAmount(kernel.NewQuantityFromFloat(60)))
		assert.True(t, row.ExcessToStock().IsZero())
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		assert.Error(t, row.SetAssignedAmount(kernel.NewQuantityFromFloat(-5)))
		assert.Error(t, row.SetPrice(kernel.NewQuantityFromFloat(-1)))
	})

	t.Run("amount is price times assigned weight", func(t *testing.T) {
		row := newPrimaryRow(t, "OI-1", 100)
		require.NoError(t, row.SetAssignedAmount(kernel.NewQuantityFromFloat(60)))
		assert.Equal(t, "1800", row.Amount().String())
	})
}

func TestRowSet(t *testing.T) {
	t.Run("item rows come back primary first, splits in order", func(t *testing.T) {
		set := allocation.NewRowSet()
		require.NoError(t, set.Upsert(newPrimaryRow(t, "OI-1", 100)))

		for _, split := range []int{2, 1} {
			row, err := allocation.NewRemainderRow(
				mustRemainderRowID(t, "OI-1", split),
				"Tomato",
				kernel.WeightMode,
				kernel.NewQuantityFromFloat(40),
				kernel.ZeroQuantity(),
			)
			require.NoError(t, err)
			require.NoError(t, set.Upsert(row))
		}

		rows := set.ItemRows("OI-1")
		require.Len(t, rows, 3)
		assert.Equal(t, "OI-1", rows[0].RowID().String())
		assert.Equal(t, "OI-1-remaining-1", rows[1].RowID().String())
		assert.Equal(t, "OI-1-remaining-2", rows[2].RowID().String())
	})

	t.Run("first remainder takes index zero", func(t *testing.T) {
		set := allocation.NewRowSet()
		require.NoError(t, set.Upsert(newPrimaryRow(t, "OI-1", 100)))
		assert.Equal(t, 0, set.NextRemainderIndex("OI-1"))
	})

	t.Run("next remainder index never reuses a slot", func(t *testing.T) {
		set := allocation.NewRowSet()
		require.NoError(t, set.Upsert(newPrimaryRow(t, "OI-1", 100)))

		row, err := allocation.NewRemainderRow(
			mustRemainderRowID(t, "OI-1", 3),
			"Tomato",
			kernel.WeightMode,
			kernel.NewQuantityFromFloat(40),
			kernel.ZeroQuantity(),
		)
		require.NoError(t, err)
		require.NoError(t, set.Upsert(row))
		assert.Equal(t, 4, set.NextRemainderIndex("OI-1"))
	})

	t.Run("get on a missing row reports not found", func(t *testing.T) {
		set := allocation.NewRowSet()
		_, err := set.Get(mustRowID(t, "OI-9"))
		require.Error(t, err)
	})
}
