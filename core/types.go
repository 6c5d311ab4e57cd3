// Package core defines the central Graph, Airport, and Route types,
// and provides thread-safe primitives for building and querying route graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muAirport for the
// airport catalog and the frozen flag, muRoute for routes and adjacency), so a
// frozen graph can be shared by any number of concurrent readers.
//
// This file declares Airport, Route, Neighbor, Graph, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyCode        - airport code is the empty string.
//	ErrUnknownAirport   - requested airport does not exist.
//	ErrDuplicateAirport - airport code registered twice with different names.
//	ErrInvalidRoute     - self-loop or negative weight.
//	ErrRouteNotFound    - no route between the requested pair.
//	ErrFrozen           - mutation attempted after Freeze.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCode indicates that an airport code is the empty string.
	ErrEmptyCode = errors.New("core: airport code is empty")

	// ErrUnknownAirport indicates an operation referenced an airport absent from the graph.
	ErrUnknownAirport = errors.New("core: airport not found")

	// ErrDuplicateAirport indicates the same code was registered with a different name.
	ErrDuplicateAirport = errors.New("core: airport already registered")

	// ErrInvalidRoute indicates a self-loop or a negative weight.
	ErrInvalidRoute = errors.New("core: invalid route")

	// ErrRouteNotFound indicates there is no direct route between two airports.
	ErrRouteNotFound = errors.New("core: route not found")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Airport represents a node in the graph.
//
// Code uniquely identifies this Airport within its Graph.
// Name is display-only and never used for identity.
type Airport struct {
	// Code is the unique short identifier, e.g. "AUS".
	Code string

	// Name is the human-readable airport name.
	Name string
}

// Route represents an undirected, weighted connection between two airports.
//
// Routes are stored canonically with From < To, so a Route value compares
// equal no matter which direction it was declared in.
type Route struct {
	// From is the lexicographically smaller endpoint code.
	From string

	// To is the lexicographically larger endpoint code.
	To string

	// Weight is the non-negative cost or distance of the route.
	Weight int64
}

// NewRoute returns the canonical Route between a and b.
func NewRoute(a, b string, weight int64) Route {
	from, to := canonical(a, b)

	return Route{From: from, To: to, Weight: weight}
}

// Other returns the endpoint opposite to code, or "" if code is not an endpoint.
func (r Route) Other(code string) string {
	switch code {
	case r.From:
		return r.To
	case r.To:
		return r.From
	default:
		return ""
	}
}

// Less reports whether r sorts before o under the total order (Weight, From, To).
// Spanning-forest algorithms use it to break ties between equal weights.
func (r Route) Less(o Route) bool {
	if r.Weight != o.Weight {
		return r.Weight < o.Weight
	}
	if r.From != o.From {
		return r.From < o.From
	}

	return r.To < o.To
}

// Neighbor is one entry of an airport's adjacency: the code on the far side
// of a route and the route's weight.
type Neighbor struct {
	Code   string
	Weight int64
}

// routeKey identifies an unordered pair of airports.
type routeKey struct {
	lo, hi string
}

// Graph is the core in-memory route graph.
//
// Routes are undirected and simple: at most one route per unordered pair,
// no self-loops. A graph is mutable until Freeze is called; every builder
// in this module returns a frozen graph.
//
// muAirport protects airports and frozen; muRoute protects routes and adjacency.
// Lock order is always muAirport -> muRoute.
type Graph struct {
	muAirport sync.RWMutex // guards airports, frozen
	muRoute   sync.RWMutex // guards routes and adjacency

	frozen bool

	// Storage
	airports map[string]*Airport // code → Airport
	routes   map[routeKey]*Route // canonical pair → Route

	// adjacency[a][b] points at the same *Route as adjacency[b][a].
	adjacency map[string]map[string]*Route
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		airports:  make(map[string]*Airport),
		routes:    make(map[routeKey]*Route),
		adjacency: make(map[string]map[string]*Route),
	}
}

// GraphStats is a read-only snapshot of a graph's size and shape.
type GraphStats struct {
	AirportCount  int
	RouteCount    int
	TotalWeight   int64
	IsolatedCount int // airports without any route
	Frozen        bool
}

// canonical orders a pair of codes so that the smaller comes first.
func canonical(a, b string) (string, string) {
	if b < a {
		return b, a
	}

	return a, b
}
