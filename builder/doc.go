// Package builder turns static airport data into frozen core.Graph values.
//
// Three input shapes are supported:
//
//	FromCostTable(airports, CostTable)   // nested code→code→weight, "-" = no route
//	FromRouteList(airports, []RouteSpec) // explicit (from, to, weight) triples
//	FromMatrix(airports, Matrix)         // square matrix indexed by a code list
//
// Weights in tables are tagged values: Cost(n) for a concrete weight,
// NoRoute for the explicit "no direct route" marker. NoRoute never creates
// an edge and can never be confused with any integer weight.
//
// Conflict policy: when the same unordered pair is declared more than once,
// the declaration processed last wins (rows in order, cells in order).
// WithStrictConflicts turns differing re-declarations into ErrConflictingRoute.
//
// All constructors return a frozen graph unless WithMutable is given.
package builder
