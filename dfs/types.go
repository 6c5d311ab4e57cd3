// File: types.go
// Role: options, sentinel errors, and the result type for DFS traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation states used by the walkers.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates the start airport does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start airport not found")

	// ErrBadOption indicates an invalid option value, such as a negative hop limit.
	ErrBadOption = errors.New("dfs: invalid option")
)

// Option configures DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when an airport is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(code string) error

	// OnExit, if non-nil, runs after all descendants are explored (post-order).
	OnExit func(code string) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the start.
	MaxDepth int

	// FilterNeighbor, if non-nil, returns false to skip a neighbour.
	FilterNeighbor func(code string) bool

	// FullTraversal restarts from every unvisited airport, covering all components.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering, single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(code string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(code string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(code string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal covers every component, ignoring the start code.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Preorder records airports in discovery order.
	Preorder []string

	// Order records airports in finish order (post-order).
	Order []string

	// Depth maps each airport to its tree depth from its root.
	Depth map[string]int

	// Parent maps each non-root airport to the airport it was discovered from.
	Parent map[string]string

	// Visited flags which airports were reached.
	Visited map[string]bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}
