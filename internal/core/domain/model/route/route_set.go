package route

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RouteSet holds the derived routes of a stage keyed by route id. The key
// embeds entity type, entity id and row id, so a row can never produce two
// routes for the same entity and the same entity on different rows stays
// distinct.
type RouteSet struct {
	routes map[string]*Route
}

// NewRouteSet creates an empty route set.
func NewRouteSet() *RouteSet {
	return &RouteSet{routes: make(map[string]*Route)}
}

// Upsert adds a derived route. When a route with the same id already exists,
// only the derived fields are refreshed; driver, labours and status edits on
// the stored route survive.
func (s *RouteSet) Upsert(route *Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	key := route.RouteID().String()
	if existing, ok := s.routes[key]; ok {
		existing.refreshDerived(route)
		return nil
	}
	s.routes[key] = route
	return nil
}

// Get returns the route with the given id.
func (s *RouteSet) Get(routeID kernel.RouteID) (*Route, error) {
	return s.GetByKey(routeID.String())
}

// GetByKey returns the route with the given string id.
func (s *RouteSet) GetByKey(key string) (*Route, error) {
	route, ok := s.routes[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("routeID", key)
	}
	return route, nil
}

// Remove deletes the route with the given id, if present.
func (s *RouteSet) Remove(routeID kernel.RouteID) {
	delete(s.routes, routeID.String())
}

// RemoveForRow deletes every route derived from the given allocation row and
// returns how many were removed. Used when a row's source entity changes, so
// no stale route for the previous entity lingers.
func (s *RouteSet) RemoveForRow(rowID kernel.RowID) int {
	removed := 0
	for key, route := range s.routes {
		if route.RouteID().RowID().IsEqual(rowID) {
			delete(s.routes, key)
			removed++
		}
	}
	return removed
}

// All returns every route ordered by route id.
func (s *RouteSet) All() []*Route {
	out := make([]*Route, 0, len(s.routes))
	for _, route := range s.routes {
		out = append(out, route)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RouteID().String() < out[j].RouteID().String()
	})
	return out
}

// WithDriver returns the routes that have a driver assigned, ordered by
// route id.
func (s *RouteSet) WithDriver() []*Route {
	var out []*Route
	for _, route := range s.All() {
		if route.HasDriver() {
			out = append(out, route)
		}
	}
	return out
}

// Len returns the number of routes in the set.
func (s *RouteSet) Len() int {
	return len(s.routes)
}
