package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrRouteIDIsNotConstructed indicates a zero-value RouteID.
var ErrRouteIDIsNotConstructed = errs.NewValueIsRequiredError(
	"RouteID must be created via NewRouteID or ParseRouteID")

// RouteID is the deterministic delivery-route key
// "{entityType}-{entityId}-{rowId}". Because the row id already carries the
// remainder suffix, every (entity, item, split) tuple maps to exactly one
// route key, and re-deriving a route always upserts instead of appending.
type RouteID struct {
	entityType EntityType
	entityID   int64
	rowID      RowID
}

// NewRouteID creates a route key for a resolved entity and an allocation row.
// The entity id may be zero when the entity name could not be re-resolved
// against the current directory; the key stays deterministic either way.
func NewRouteID(entityType EntityType, entityID int64, rowID RowID) (RouteID, error) {
	if err := entityType.Validate(); err != nil {
		return RouteID{}, err
	}
	if entityID < 0 {
		return RouteID{}, errs.NewValueIsOutOfRangeError("entityID", entityID, 0, "unbounded")
	}
	if err := rowID.Validate(); err != nil {
		return RouteID{}, err
	}
	return RouteID{entityType: entityType, entityID: entityID, rowID: rowID}, nil
}

// ParseRouteID parses the string form "{entityType}-{entityId}-{rowId}".
// Only the first two segments are positional; the remainder of the string is
// the row key, which may itself contain dashes.
func ParseRouteID(s string) (RouteID, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return RouteID{}, errs.NewValueIsInvalidError("routeID")
	}

	entityType, err := EntityTypeFromString(parts[0])
	if err != nil || !entityType.IsValid() {
		return RouteID{}, errs.NewValueIsInvalidError("routeID")
	}

	entityID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || entityID < 0 {
		return RouteID{}, errs.NewValueIsInvalidError("routeID")
	}

	rowID, err := ParseRowID(parts[2])
	if err != nil {
		return RouteID{}, errs.NewValueIsInvalidError("routeID")
	}

	return RouteID{entityType: entityType, entityID: entityID, rowID: rowID}, nil
}

// EntityType returns the directory tag of the route's entity.
func (r RouteID) EntityType() EntityType {
	return r.entityType
}

// EntityID returns the resolved entity id.
func (r RouteID) EntityID() int64 {
	return r.entityID
}

// RowID returns the allocation-row key this route derives from.
func (r RouteID) RowID() RowID {
	return r.rowID
}

// String renders the composite key.
func (r RouteID) String() string {
	return fmt.Sprintf("%s-%d-%s", r.entityType, r.entityID, r.rowID)
}

// IsEqual compares two route keys.
func (r RouteID) IsEqual(other RouteID) bool {
	return r.entityType == other.entityType &&
		r.entityID == other.entityID &&
		r.rowID.IsEqual(other.rowID)
}

// Validate checks the key was built through a constructor.
func (r RouteID) Validate() error {
	if !r.entityType.IsValid() {
		return ErrRouteIDIsNotConstructed
	}
	return r.rowID.Validate()
}
