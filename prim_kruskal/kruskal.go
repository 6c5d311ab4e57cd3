package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
)

// Kruskal computes the minimum spanning forest of g.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : if g is nil.
//   - ErrTotalOverflow : if the forest weight exceeds math.MaxInt64.
//
// Steps:
//  1. Validate g != nil; list components (empty graph → empty Forest).
//  2. Collect all routes and sort them by (Weight, From, To).
//  3. Initialize DSU parent[] and rank[] for every airport.
//  4. For each route (u,v) in order, if find(u) != find(v) then union and accept.
//  5. Stop once |V| - |components| routes are accepted.
//
// Acceptance order is the sort order, so Forest.Routes needs no re-sort.
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) (Forest, error) {
	// 1. Validate and partition.
	if g == nil {
		return Forest{}, ErrNilGraph
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return Forest{}, err
	}
	codes := g.Codes()
	want := len(codes) - len(comps)
	forest := Forest{Routes: make([]core.Route, 0, want), Components: comps}
	if want == 0 {
		return forest, nil
	}

	// 2. Sort routes under the strict total order; no two routes compare equal.
	routes := g.Routes()
	sort.Slice(routes, func(i, j int) bool { return routes[i].Less(routes[j]) })

	// 3. DSU state.
	parent := make(map[string]string, len(codes))
	rank := make(map[string]int, len(codes))
	for _, c := range codes {
		parent[c] = c
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(ru, rv string) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	// 4-5. Greedy acceptance.
	for _, r := range routes {
		ru, rv := find(r.From), find(r.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		if err = forest.accept(r); err != nil {
			return Forest{}, err
		}
		if len(forest.Routes) == want {
			break
		}
	}

	return forest, nil
}
