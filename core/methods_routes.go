// File: methods_routes.go
// Role: Route lifecycle & queries: PutRoute/HasRoute/Route/Routes/RouteCount.
// Determinism:
//   - Routes() returns routes sorted by (From, To) ascending.
//   - PutRoute on an existing pair overwrites the weight (last write wins).
// Concurrency:
//   - Mutations under muRoute write lock, after the frozen check under muAirport.
//   - Read queries under muRoute read lock.

package core

import (
	"fmt"
	"sort"
)

// PutRoute creates the undirected route a-b, or overwrites its weight if it exists.
//
// Steps:
//  1. Validate codes, loops and weight.
//  2. Under muAirport read lock: reject frozen graphs, require both endpoints.
//  3. Under muRoute write lock: insert or overwrite, mirror adjacency.
//
// Errors:
//   - ErrEmptyCode: either code is "".
//   - ErrInvalidRoute: a == b, or weight < 0.
//   - ErrFrozen: the graph has been frozen.
//   - ErrUnknownAirport: an endpoint is not registered. Airports are never added implicitly.
//
// Complexity: O(1) amortized.
func (g *Graph) PutRoute(a, b string, weight int64) error {
	// 1) Input validation
	if a == "" || b == "" {
		return ErrEmptyCode
	}
	if a == b {
		return fmt.Errorf("%w: self-loop at %q", ErrInvalidRoute, a)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s-%s has negative weight %d", ErrInvalidRoute, a, b, weight)
	}

	// 2) Endpoint and frozen checks
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	if g.frozen {
		return ErrFrozen
	}
	if _, ok := g.airports[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAirport, a)
	}
	if _, ok := g.airports[b]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAirport, b)
	}

	// 3) Insert or overwrite under lock
	g.muRoute.Lock()
	defer g.muRoute.Unlock()

	from, to := canonical(a, b)
	k := routeKey{lo: from, hi: to}
	if r, ok := g.routes[k]; ok {
		r.Weight = weight // adjacency shares the pointer

		return nil
	}

	r := &Route{From: from, To: to, Weight: weight}
	g.routes[k] = r
	g.adjacency[from][to] = r
	g.adjacency[to][from] = r

	return nil
}

// HasRoute reports whether a direct route a-b exists. Order of a and b is irrelevant.
// Complexity: O(1).
func (g *Graph) HasRoute(a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	from, to := canonical(a, b)
	_, ok := g.routes[routeKey{lo: from, hi: to}]

	return ok
}

// Route returns a copy of the route a-b.
//
// Errors:
//   - ErrUnknownAirport: an endpoint is not registered.
//   - ErrRouteNotFound: both endpoints exist but are not directly connected.
func (g *Graph) Route(a, b string) (Route, error) {
	if !g.HasAirport(a) {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownAirport, a)
	}
	if !g.HasAirport(b) {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownAirport, b)
	}
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	from, to := canonical(a, b)
	r, ok := g.routes[routeKey{lo: from, hi: to}]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s-%s", ErrRouteNotFound, a, b)
	}

	return *r, nil
}

// Routes returns copies of all routes sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Routes() []Route {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	out := make([]Route, 0, len(g.routes))
	for _, r := range g.routes {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// RouteCount returns the total number of routes.
// Complexity: O(1).
func (g *Graph) RouteCount() int {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()

	return len(g.routes)
}
