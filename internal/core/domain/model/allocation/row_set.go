package allocation

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RowSet holds the allocation rows of a stage keyed by row id, so lookups and
// removals never depend on display order.
type RowSet struct {
	rows map[string]*Row
}

// NewRowSet creates an empty row set.
func NewRowSet() *RowSet {
	return &RowSet{rows: make(map[string]*Row)}
}

// Upsert adds a row or replaces the row with the same id.
func (s *RowSet) Upsert(row *Row) error {
	if err := row.Validate(); err != nil {
		return err
	}
	s.rows[row.RowID().String()] = row
	return nil
}

// Get returns the row with the given id.
func (s *RowSet) Get(rowID kernel.RowID) (*Row, error) {
	row, ok := s.rows[rowID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("rowID", rowID.String())
	}
	return row, nil
}

// Remove deletes the row with the given id, if present.
func (s *RowSet) Remove(rowID kernel.RowID) {
	delete(s.rows, rowID.String())
}

// PrimaryRow returns the primary row of an order item.
func (s *RowSet) PrimaryRow(itemID string) (*Row, error) {
	rowID, err := kernel.NewRowID(itemID)
	if err != nil {
		return nil, err
	}
	return s.Get(rowID)
}

// RemainderRows returns the remainder rows of an order item ordered by split
// index.
func (s *RowSet) RemainderRows(itemID string) []*Row {
	var out []*Row
	for _, row := range s.rows {
		id := row.RowID()
		if id.ItemID() == itemID && id.IsRemaining() {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RowID().SplitIndex() < out[j].RowID().SplitIndex()
	})
	return out
}

// NextRemainderIndex returns the split index the next remainder row of the
// item should take. Indexes are never reused within a stage.
func (s *RowSet) NextRemainderIndex(itemID string) int {
	next := 0
	for _, row := range s.rows {
		id := row.RowID()
		if id.ItemID() == itemID && id.IsRemaining() && id.SplitIndex() >= next {
			next = id.SplitIndex() + 1
		}
	}
	return next
}

// ItemRows returns the primary row of an item followed by its remainder rows
// in split order.
func (s *RowSet) ItemRows(itemID string) []*Row {
	var out []*Row
	if primary, err := s.PrimaryRow(itemID); err == nil {
		out = append(out, primary)
	}
	return append(out, s.RemainderRows(itemID)...)
}

// All returns every row ordered by item id, primary rows before remainder
// rows, remainder rows by split index.
func (s *RowSet) All() []*Row {
	out := make([]*Row, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].RowID(), out[j].RowID()
		if a.ItemID() != b.ItemID() {
			return a.ItemID() < b.ItemID()
		}
		return a.SplitIndex() < b.SplitIndex()
	})
	return out
}

// Len returns the number of rows in the set.
func (s *RowSet) Len() int {
	return len(s.rows)
}
