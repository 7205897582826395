package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// remainderSeparator joins an item id with a remainder split index.
const remainderSeparator = "-remaining-"

// primarySplit marks the primary (item-identified) row of an item.
const primarySplit = -1

// ErrRowIDIsNotConstructed indicates a zero-value RowID.
var ErrRowIDIsNotConstructed = errs.NewValueIsRequiredError(
	"RowID must be created via NewRowID, NewRemainderRowID, or ParseRowID")

// RowID is the composite key of an allocation row. The primary row of an order
// item is keyed by the item id itself; remainder rows append "-remaining-{n}"
// where n is the split index in creation order.
//
// RowID is the map key that replaces positional array indexing: rows are always
// addressed by this key, so interleaving remainder rows with primary rows can
// never shift another row's identity.
type RowID struct {
	itemID string
	split  int
}

// NewRowID creates the primary row key for an order item.
func NewRowID(itemID string) (RowID, error) {
	if strings.TrimSpace(itemID) == "" {
		return RowID{}, errs.NewValueIsRequiredError("itemID")
	}
	return RowID{itemID: itemID, split: primarySplit}, nil
}

// NewRemainderRowID creates the key of the remainder row with the given split
// index. Indexes run in creation order and are never reused within a stage.
func NewRemainderRowID(itemID string, index int) (RowID, error) {
	if strings.TrimSpace(itemID) == "" {
		return RowID{}, errs.NewValueIsRequiredError("itemID")
	}
	if index < 0 {
		return RowID{}, errs.NewValueIsOutOfRangeError("splitIndex", index, 0, "unbounded")
	}
	return RowID{itemID: itemID, split: index}, nil
}

// ParseRowID parses the string form of a row key. A trailing
// "-remaining-{n}" suffix with a non-negative integer n denotes a remainder
// row; any other string is treated verbatim as a primary item id.
func ParseRowID(s string) (RowID, error) {
	if idx := strings.LastIndex(s, remainderSeparator); idx >= 0 {
		if split, err := strconv.Atoi(s[idx+len(remainderSeparator):]); err == nil && split >= 0 {
			return NewRemainderRowID(s[:idx], split)
		}
	}
	return NewRowID(s)
}

// ItemID returns the order-item id this row belongs to.
func (r RowID) ItemID() string {
	return r.itemID
}

// SplitIndex returns the remainder split index, or -1 for a primary row.
func (r RowID) SplitIndex() int {
	return r.split
}

// IsRemaining reports whether the key addresses a remainder row.
func (r RowID) IsRemaining() bool {
	return r.split != primarySplit
}

// String renders the composite key: "{itemId}" or "{itemId}-remaining-{n}".
func (r RowID) String() string {
	if r.IsRemaining() {
		return fmt.Sprintf("%s%s%d", r.itemID, remainderSeparator, r.split)
	}
	return r.itemID
}

// IsEqual compares two row keys.
func (r RowID) IsEqual(other RowID) bool {
	return r.itemID == other.itemID && r.split == other.split
}

// Validate checks the key was built through a constructor.
func (r RowID) Validate() error {
	if r.itemID == "" {
		return ErrRowIDIsNotConstructed
	}
	return nil
}
