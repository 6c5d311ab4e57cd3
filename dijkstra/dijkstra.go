// Package dijkstra implements Dijkstra's shortest-path algorithm on route graphs.
//
// It processes airports in order of increasing distance using a min-heap,
// relaxing routes and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
//
// Determinism:
//
//   - Heap entries are ordered by (distance, code).
//   - Each airport's neighbours are relaxed in (weight, code) order.
//   - A label is replaced only by a strictly shorter distance, so among
//     equal-cost paths the first one discovered under this order wins.
//
// Overflow: a route whose weight would push a distance past math.MaxInt64
// is not relaxed, so paths with unrepresentable cost are never returned.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/airgraph/core"
)

// Dijkstra computes shortest distances from Options.Source to every airport in g.
//
// Returns:
//
//   - dist: map from code to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and for unreachable v, prev[v] == "". prev is the
//     reachability record: a v at exactly math.MaxInt64 has a non-empty prev.
//   - err:  ErrEmptySource, ErrNilGraph or a wrapped core.ErrUnknownAirport.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasAirport(cfg.Source) {
		return nil, nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, core.ErrUnknownAirport)
	}

	// 3) Prepare runner state. prev is always tracked; it is dropped at the end
	//    when the caller did not ask for it.
	codes := g.Codes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(codes)),
		prev:    make(map[string]string, len(codes)),
		visited: make(map[string]bool, len(codes)),
		pq:      make(nodePQ, 0, len(codes)),
	}

	// 4) Run.
	r.init(codes)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-cost path from source to destination.
//
// Behavior:
//   - source == destination ⇒ Result{Path: [source], Cost: 0}.
//   - Either endpoint unknown ⇒ wrapped core.ErrUnknownAirport.
//   - Destination unreachable ⇒ wrapped ErrNoPathExists.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, source, destination string) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if source == "" {
		return Result{}, ErrEmptySource
	}
	for _, code := range [...]string{source, destination} {
		if !g.HasAirport(code) {
			return Result{}, fmt.Errorf("dijkstra: endpoint %q: %w", code, core.ErrUnknownAirport)
		}
	}
	if source == destination {
		return Result{Path: []string{source}, Cost: 0}, nil
	}

	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return Result{}, err
	}
	if prev[destination] == "" {
		return Result{}, fmt.Errorf("%w: %s → %s", ErrNoPathExists, source, destination)
	}

	return Result{Path: rebuild(prev, source, destination), Cost: dist[destination]}, nil
}

// PathCost sums the route weights along path.
//
// Errors:
//   - ErrEmptyPath for a zero-length path.
//   - wrapped core.ErrUnknownAirport for a code absent from g.
//   - wrapped ErrDisconnectedPath when two consecutive codes share no route.
//   - wrapped ErrCostOverflow when the sum exceeds math.MaxInt64.
//
// Complexity: O(len(path)).
func PathCost(g *core.Graph, path []string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if !g.HasAirport(path[0]) {
		return 0, fmt.Errorf("dijkstra: path[0] %q: %w", path[0], core.ErrUnknownAirport)
	}

	var total int64
	for i := 1; i < len(path); i++ {
		if !g.HasAirport(path[i]) {
			return 0, fmt.Errorf("dijkstra: path[%d] %q: %w", i, path[i], core.ErrUnknownAirport)
		}
		r, err := g.Route(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("%w: hop %d %s → %s", ErrDisconnectedPath, i, path[i-1], path[i])
		}
		if r.Weight > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: at hop %d %s → %s", ErrCostOverflow, i, path[i-1], path[i])
		}
		total += r.Weight
	}

	return total, nil
}

// rebuild walks prev backwards from destination and returns source…destination.
func rebuild(prev map[string]string, source, destination string) []string {
	path := []string{destination}
	for cur := destination; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // code → current best distance from Source.
	prev    map[string]string // code → predecessor on the shortest path.
	visited map[string]bool   // Tracks if an airport's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for every airport, dist[Source] = 0, and seeds the heap.
func (r *runner) init(codes []string) {
	for _, v := range codes {
		r.dist[v] = math.MaxInt64
		r.visited[v] = false
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the closest unsettled
// airport and relaxes its routes, until the heap drains or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}
		// Heap is ordered, so nothing further can be within range.
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve distances to every neighbour of u.
// Neighbours arrive sorted by (weight, code) from core.Graph.Neighbors.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[nb.Code] {
			continue
		}

		// Unrepresentable sums are dropped rather than wrapped.
		if nb.Weight > math.MaxInt64-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only: ties keep the earlier discovery. An airport
		// with no predecessor has no label yet, whatever dist holds.
		if r.prev[nb.Code] != "" && newDist >= r.dist[nb.Code] {
			continue
		}

		r.dist[nb.Code] = newDist
		r.prev[nb.Code] = u
		heap.Push(&r.pq, &nodeItem{id: nb.Code, dist: newDist})
	}

	return nil
}

// nodeItem represents an airport and its tentative distance from the source.
type nodeItem struct {
	id   string // airport code
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by code for a deterministic settle order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element after heap adjustment.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
