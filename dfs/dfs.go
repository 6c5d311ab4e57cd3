// Package dfs implements depth-first search (single-source and forest) on
// core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or every component via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - FindCycle: one canonical cycle witness, or none for a forest
//   - SimplePaths: every loop-free itinerary between two airports, cheapest first
//
// Neighbours are explored in ascending code order, so every result is
// deterministic.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil      if g is nil.
//   - ErrStartNotFound if start is missing.
//   - context.Canceled if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/airgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over every component
// when WithFullTraversal is set.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasAirport(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	// 4. Initialize result
	codes := g.Codes()
	res := &DFSResult{
		Preorder: make([]string, 0, len(codes)),
		Order:    make([]string, 0, len(codes)),
		Depth:    make(map[string]int, len(codes)),
		Parent:   make(map[string]string, len(codes)),
		Visited:  make(map[string]bool, len(codes)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, c := range codes {
			if !res.Visited[c] {
				if err := w.traverse(c, 0); err != nil {
					return res, err
				}
			}
		}
		return res, nil
	}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits code at depth, recursing into unvisited neighbours.
func (w *dfsWalker) traverse(code string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited
	w.res.Visited[code] = true
	w.res.Depth[code] = depth
	w.res.Preorder = append(w.res.Preorder, code)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(code); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", code, err)
		}
	}

	// 5. Explore neighbours in code order
	nbs, err := w.graph.NeighborCodes(code)
	if err != nil {
		return fmt.Errorf("dfs: NeighborCodes(%q): %w", code, err)
	}
	for _, nb := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb] = code
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(code); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", code, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, code)

	return nil
}
