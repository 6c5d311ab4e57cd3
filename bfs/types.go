// File: types.go
// Role: options, sentinel errors, and the result type for BFS.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartAirportNotFound: the start code is not registered in the graph.
	ErrStartAirportNotFound = errors.New("bfs: start airport not found")

	// ErrGraphNil: BFS was handed a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option carried an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo when the destination was not visited.
	ErrNotReached = errors.New("bfs: destination not reached")
)

// Option mutates BFSOptions. Bad values do not panic; they are stored and
// BFS returns them as ErrOptionViolation before touching the graph.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one BFS run.
type BFSOptions struct {
	// Ctx is checked before each dequeue.
	Ctx context.Context

	// OnVisit runs as each airport is dequeued, with its hop count.
	// A non-nil error stops the run and is returned wrapped.
	OnVisit func(code string, depth int) error

	// MaxDepth > 0 keeps airports more than MaxDepth legs away out of the queue.
	MaxDepth int

	// FilterNeighbor returns false to drop the route curr-neighbor for this run.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions: background context, unlimited depth, every route allowed.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext makes the run abort once ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the per-airport hook. nil keeps the no-op.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the hop count. 0 means unlimited; a negative d makes
// BFS fail with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts which routes the search may follow.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is what one run discovered.
type BFSResult struct {
	Order  []string          // dequeue order
	Depth  map[string]int    // legs from the start
	Parent map[string]string // BFS-tree predecessor; the start has none
}

// PathTo walks Parent back from dest and returns the fewest-legs path from
// the start. ErrNotReached if dest was never discovered.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
