// Package prim_kruskal computes minimum spanning forests over a *core.Graph
// with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - What is a spanning forest?
//     For an undirected weighted graph G = (V, E), a minimum spanning forest holds
//     one minimum-weight tree per connected component. A component of k airports
//     contributes exactly k-1 routes; isolated airports contribute none.
//
//   - Why a forest and not a tree?
//     Route networks built from partial cost tables are often disconnected. Reporting
//     one tree per component keeps the answer useful instead of failing outright.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Forest, error)
//
//   - Strategy: sort all routes by (Weight, From, To) and accept each route whose
//     endpoints lie in different union-find sets.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(g *core.Graph, opts ...Option) (Forest, error)
//
//   - Strategy: per component, grow a tree from a root with a min-heap of
//     candidate routes ordered by (Weight, From, To).
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Determinism
//
// Route.Less is a strict total order on a simple graph, so the minimum spanning
// forest is unique and both algorithms return byte-for-byte equal Forests:
// the same Routes in the same (Weight, From, To) order, the same Total and the
// same Components.
//
// Error Conditions
//
//   - ErrNilGraph: graph is nil.
//   - ErrUnknownMethod (Compute only): Method is neither MethodPrim nor MethodKruskal.
//   - core.ErrUnknownAirport (Prim only): WithRoot names an absent airport.
//   - ErrTotalOverflow: the forest weight does not fit in an int64.
//
// An empty graph yields an empty Forest and no error.
package prim_kruskal
