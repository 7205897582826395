package route

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route was not created through
// the NewRoute or RestoreRoute constructor.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

// Route is one derived pickup-and-delivery leg. Its identity is the route id;
// the derived fields (product, quantity, location) are recomputed from the
// allocation row on every change, while driver, labours and the status fields
// belong to the route itself.
type Route struct {
	routeID  kernel.RouteID
	itemID   string
	product  string
	location string
	address  string

	quantity      kernel.Quantity
	assignedBoxes kernel.Quantity
	isRemaining   bool

	driver           string
	labours          []string
	status           string
	dropDriver       string
	collectionStatus string

	guard guard.ConstructorGuard
}

// NewRoute creates a freshly derived route with no driver assigned yet.
func NewRoute(
	routeID kernel.RouteID,
	itemID string,
	product string,
	location string,
	address string,
	quantity kernel.Quantity,
	assignedBoxes kernel.Quantity,
	isRemaining bool,
) (*Route, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}
	if product == "" {
		return nil, errs.NewValueIsRequiredError("product")
	}
	if quantity.IsNegative() || assignedBoxes.IsNegative() {
		return nil, errs.NewValueIsInvalidError("route quantities")
	}

	return &Route{
		routeID:       routeID,
		itemID:        itemID,
		product:       product,
		location:      location,
		address:       address,
		quantity:      quantity,
		assignedBoxes: assignedBoxes,
		isRemaining:   isRemaining,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreRoute reconstructs a route from persisted state, including its
// driver and status edits.
func RestoreRoute(
	routeID kernel.RouteID,
	itemID string,
	product string,
	location string,
	address string,
	quantity kernel.Quantity,
	assignedBoxes kernel.Quantity,
	isRemaining bool,
	driver string,
	labours []string,
	status string,
	dropDriver string,
	collectionStatus string,
) (*Route, error) {
	r, err := NewRoute(routeID, itemID, product, location, address, quantity, assignedBoxes, isRemaining)
	if err != nil {
		return nil, err
	}
	r.driver = driver
	r.SetLabours(labours)
	r.status = status
	r.dropDriver = dropDriver
	r.collectionStatus = collectionStatus
	return r, nil
}

// Validate checks the route was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// RouteID returns the route's composite identifier.
func (r *Route) RouteID() kernel.RouteID {
	return r.routeID
}

// ItemID returns the order item this route delivers.
func (r *Route) ItemID() string {
	return r.itemID
}

// Product returns the product name.
func (r *Route) Product() string {
	return r.product
}

// Location returns the pickup location, usually the source entity's name.
func (r *Route) Location() string {
	return r.location
}

// Address returns the pickup address, blank when the directory has none.
func (r *Route) Address() string {
	return r.address
}

// Quantity returns the weight carried on this route.
func (r *Route) Quantity() kernel.Quantity {
	return r.quantity
}

// AssignedBoxes returns the box count carried on this route.
func (r *Route) AssignedBoxes() kernel.Quantity {
	return r.assignedBoxes
}

// IsRemaining reports whether the route delivers a remainder split.
func (r *Route) IsRemaining() bool {
	return r.isRemaining
}

// Driver returns the assigned driver display string, blank when unassigned.
func (r *Route) Driver() string {
	return r.driver
}

// HasDriver reports whether a driver is assigned.
func (r *Route) HasDriver() bool {
	return r.driver != ""
}

// Labours returns a copy of the assigned labour names.
func (r *Route) Labours() []string {
	if r.labours == nil {
		return nil
	}
	out := make([]string, len(r.labours))
	copy(out, r.labours)
	return out
}

// Status returns the route's free-form status.
func (r *Route) Status() string {
	return r.status
}

// DropDriver returns the driver handling the drop leg.
func (r *Route) DropDriver() string {
	return r.dropDriver
}

// CollectionStatus returns the collection-leg status.
func (r *Route) CollectionStatus() string {
	return r.collectionStatus
}

// SetDriver assigns or clears the route's driver.
func (r *Route) SetDriver(driver string) {
	r.driver = driver
}

// SetLabours replaces the labour list with a copy of the given names.
func (r *Route) SetLabours(labours []string) {
	if labours == nil {
		r.labours = nil
		return
	}
	r.labours = make([]string, len(labours))
	copy(r.labours, labours)
}

// SetStatus sets the route's free-form status.
func (r *Route) SetStatus(status string) {
	r.status = status
}

// SetDropDriver sets the drop-leg driver.
func (r *Route) SetDropDriver(driver string) {
	r.dropDriver = driver
}

// SetCollectionStatus sets the collection-leg status.
func (r *Route) SetCollectionStatus(status string) {
	r.collectionStatus = status
}

// refreshDerived overwrites the fields that are recomputed from the
// allocation row, leaving driver and status edits untouched.
func (r *Route) refreshDerived(from *Route) {
	r.itemID = from.itemID
	r.product = from.product
	r.location = from.location
	r.address = from.address
	r.quantity = from.quantity
	r.assignedBoxes = from.assignedBoxes
	r.isRemaining = from.isRemaining
}
