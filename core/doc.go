// Package core provides a thread-safe in-memory graph of airports and
// weighted, undirected flight routes.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected routes only; each unordered pair holds at most one route.
//   - Non-negative integer weights (cost or distance).
//   - No self-loops.
//   - Endpoints must be registered with AddAirport before PutRoute.
//   - PutRoute on an existing pair overwrites its weight (last write wins).
//   - Freeze turns the graph read-only for the rest of its life.
//
// Deterministic iteration: Airports(), Codes() and Routes() are sorted;
// Neighbors() is sorted by (weight, code), which the shortest-path
// tie-break relies on.
//
// Core Methods:
//
//	// Airports
//	AddAirport(code, name string) error     // O(1)
//	HasAirport(code string) bool            // O(1)
//	Airport(code string) (Airport, error)   // O(1)
//	Airports() []Airport                    // O(V·log V)
//	Codes() []string                        // O(V·log V)
//
//	// Routes
//	PutRoute(a, b string, weight int64) error  // O(1)
//	HasRoute(a, b string) bool                 // O(1)
//	Route(a, b string) (Route, error)          // O(1)
//	Routes() []Route                           // O(E·log E)
//
//	// Adjacency
//	Neighbors(code string) ([]Neighbor, error) // O(d·log d)
//	NeighborCodes(code string) ([]string, error)
//	Degree(code string) (int, error)
//
//	// Lifecycle
//	Freeze(); Frozen() bool; Clone() *Graph; Stats() GraphStats
//
// Errors:
//
//	ErrEmptyCode, ErrUnknownAirport, ErrDuplicateAirport,
//	ErrInvalidRoute, ErrRouteNotFound, ErrFrozen
//
// A frozen graph may be shared freely between goroutines. Results derived
// from it (paths, forests, step sequences) belong to whoever computed them.
package core
