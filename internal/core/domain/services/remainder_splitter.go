package services

import (
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// RemainderSplitter is a domain service that keeps the remainder chain of an
// order item consistent after any assignment edit.
//
// Business rules:
//   - The primary row always shows the full ordered quantity.
//   - Each remainder row shows the shortfall left when it was created: the
//     ordered quantity minus everything assigned on earlier rows, clamped at
//     zero.
//   - A new remainder row materializes only while a positive shortfall
//     remains and every existing row has a non-zero assignment.
//   - Over-assignment is never an error; the surplus goes to stock and the
//     displayed remainder simply bottoms out at zero.
//   - In box mode the chain is tracked in boxes and each row's weight is the
//     proportional share of the item's net weight.
type RemainderSplitter struct{}

// NewRemainderSplitter creates a new RemainderSplitter instance.
func NewRemainderSplitter() RemainderSplitter {
	return RemainderSplitter{}
}

// Rebalance recomputes the remainder chain of one order item, materializing
// or pruning remainder rows as the assignments require.
//
// Parameters:
//   - order: the order the item belongs to
//   - rows: the allocation rows of the stage, mutated in place
//   - itemID: the order item whose chain changed
//
// Returns:
//   - error: when the item is unknown or a row mutation fails
func (s RemainderSplitter) Rebalance(order *product.Order, rows *allocation.RowSet, itemID string) error {
	item, ok := order.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("itemID", itemID)
	}

	mode := order.UnitMode()
	total := totalUnits(item, mode)

	chain := rows.ItemRows(itemID)
	running := total
	allAssigned := true
	for _, row := range chain {
		if err := s.setNeededUnits(row, item, mode, running); err != nil {
			return err
		}
		running = running.Sub(row.AssignedUnits()).ClampZero()
		if row.AssignedUnits().IsZero() {
			allAssigned = false
		}
	}

	if running.IsPositive() {
		if !allAssigned {
			return nil
		}
		rowID, err := kernel.NewRemainderRowID(itemID, rows.NextRemainderIndex(itemID))
		if err != nil {
			return err
		}
		amount, boxes := s.neededQuantities(item, mode, running)
		remainder, err := allocation.NewRemainderRow(rowID, item.Name(), mode, amount, boxes)
		if err != nil {
			return err
		}
		return rows.Upsert(remainder)
	}

	// Shortfall is gone; drop trailing remainder rows nobody touched.
	for i := len(chain) - 1; i > 0; i-- {
		row := chain[i]
		if row.HasSource() || !row.AssignedUnits().IsZero() {
			break
		}
		if !row.RowID().IsRemaining() {
			break
		}
		rows.Remove(row.RowID())
	}
	return nil
}

func (s RemainderSplitter) setNeededUnits(
	row *allocation.Row,
	item product.OrderItem,
	mode kernel.UnitMode,
	entering kernel.Quantity,
) error {
	amount, boxes := s.neededQuantities(item, mode, entering)
	return row.SetNeeded(amount, boxes)
}

// neededQuantities converts a unit count into the (weight, boxes) pair a row
// displays. In box mode the weight is the proportional share of the item's
// net weight.
func (s RemainderSplitter) neededQuantities(
	item product.OrderItem,
	mode kernel.UnitMode,
	units kernel.Quantity,
) (kernel.Quantity, kernel.Quantity) {
	if mode == kernel.BoxMode {
		weight := units.Div(item.BoxCount()).Mul(item.NetWeight())
		return weight, units
	}
	return units, kernel.ZeroQuantity()
}

func totalUnits(item product.OrderItem, mode kernel.UnitMode) kernel.Quantity {
	if mode == kernel.BoxMode {
		return item.BoxCount()
	}
	return item.NetWeight()
}
