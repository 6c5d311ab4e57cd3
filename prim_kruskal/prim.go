package prim_kruskal

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
)

// Prim computes the minimum spanning forest of g by growing one tree per
// connected component using a min-heap of candidate routes.
//
// Each tree grows from the component's smallest code, except the component
// holding the WithRoot airport, which grows from that root. Because the heap
// orders candidates by the strict (Weight, From, To) order, the result equals
// Kruskal's for every choice of root.
//
// Error Conditions:
//   - ErrNilGraph           : if g is nil.
//   - core.ErrUnknownAirport: if a non-empty root is absent from g.
//   - ErrTotalOverflow      : if the forest weight exceeds math.MaxInt64.
//
// Steps:
//  1. Validate g and root; list components.
//  2. For each component, mark its root visited and push its routes.
//  3. Pop the smallest candidate; skip if both ends are visited.
//  4. Otherwise accept it, mark the new end visited, push its routes.
//  5. Sort all accepted routes by (Weight, From, To).
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate.
	if g == nil {
		return Forest{}, ErrNilGraph
	}
	if o.Root != "" && !g.HasAirport(o.Root) {
		return Forest{}, fmt.Errorf("prim_kruskal: root %q: %w", o.Root, core.ErrUnknownAirport)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return Forest{}, err
	}

	forest := Forest{
		Routes:     make([]core.Route, 0, g.AirportCount()-len(comps)),
		Components: comps,
	}
	visited := make(map[string]bool, g.AirportCount())
	pq := &routePQ{}

	// push enqueues every route from u to an unvisited neighbour.
	push := func(u string) error {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if !visited[nb.Code] {
				heap.Push(pq, core.NewRoute(u, nb.Code, nb.Weight))
			}
		}

		return nil
	}

	// 2-4. One tree per component.
	for _, comp := range comps {
		root := comp[0]
		if o.Root != "" && contains(comp, o.Root) {
			root = o.Root
		}
		visited[root] = true
		if err := push(root); err != nil {
			return Forest{}, err
		}
		for pq.Len() > 0 {
			r := heap.Pop(pq).(core.Route)
			next := r.To
			if visited[next] {
				next = r.From
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			if err := forest.accept(r); err != nil {
				return Forest{}, err
			}
			if err := push(next); err != nil {
				return Forest{}, err
			}
		}
	}

	// 5. Canonical order.
	sort.Slice(forest.Routes, func(i, j int) bool { return forest.Routes[i].Less(forest.Routes[j]) })

	return forest, nil
}

// contains reports whether sorted holds code.
func contains(sorted []string, code string) bool {
	i := sort.SearchStrings(sorted, code)

	return i < len(sorted) && sorted[i] == code
}

// routePQ implements heap.Interface for a min-heap of core.Route,
// ordered by Route.Less.
type routePQ []core.Route

func (pq routePQ) Len() int           { return len(pq) }
func (pq routePQ) Less(i, j int) bool { return pq[i].Less(pq[j]) }
func (pq routePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a core.Route; called by heap.Push.
func (pq *routePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Route)) }

// Pop removes the last element; called by heap.Pop.
func (pq *routePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	r := old[n-1]
	*pq = old[:n-1]

	return r
}
