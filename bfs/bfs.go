// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links, and visit order, plus connected components.
//
// Route weights are ignored: BFS answers "how many legs" and "what is
// reachable", never "how much does it cost".
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/airgraph/core"
)

// ErrNeighbors wraps a failure to list the neighbours of a queued airport.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// frontier is one queued airport and its hop count.
type frontier struct {
	code string
	hops int
}

// walker carries the state of one BFS run. The queue is consumed through
// head so the backing array is reused instead of re-sliced.
type walker struct {
	g     *core.Graph
	opts  BFSOptions
	queue []frontier
	head  int
	seen  map[string]bool
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Neighbours are enqueued in ascending code order, so Order is deterministic.
//
// Returns ErrGraphNil, ErrStartAirportNotFound, ErrOptionViolation,
// ErrNeighbors, a context error, or any OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	// 1. Validate graph and options
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Validate start
	if !g.HasAirport(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartAirportNotFound, start)
	}

	// 3. Seed the queue and drain it
	n := g.AirportCount()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]frontier, 0, n),
		seen:  make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.push(start, 0, "")

	return w.res, w.drain()
}

// push records code as discovered at hops via parent and queues it.
func (w *walker) push(code string, hops int, parent string) {
	w.seen[code] = true
	w.res.Depth[code] = hops
	if parent != "" {
		w.res.Parent[code] = parent
	}
	w.queue = append(w.queue, frontier{code: code, hops: hops})
}

// drain pops airports in FIFO order until the queue is empty.
func (w *walker) drain() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		cur := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, cur.code)
		if err := w.opts.OnVisit(cur.code, cur.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit at %q: %w", cur.code, err)
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

// expand queues every unseen neighbour of cur that passes the filter,
// unless cur already sits at MaxDepth.
func (w *walker) expand(cur frontier) error {
	if w.opts.MaxDepth > 0 && cur.hops >= w.opts.MaxDepth {
		return nil
	}
	codes, err := w.g.NeighborCodes(cur.code)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNeighbors, cur.code, err)
	}
	for _, nb := range codes {
		if w.seen[nb] || !w.opts.FilterNeighbor(cur.code, nb) {
			continue
		}
		w.push(nb, cur.hops+1, cur.code)
	}

	return nil
}
