// File: types.go
// Role: options, sentinel errors, and the Forest result.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/airgraph/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrTotalOverflow indicates that the forest weight does not fit in an int64.
var ErrTotalOverflow = errors.New("prim_kruskal: forest total overflows int64")

// MethodPrim selects Prim's algorithm (grow each tree from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all routes and union-find).
const MethodKruskal = "kruskal"

// Forest is a minimum spanning forest: one tree per connected component.
//
// Routes are ordered by (Weight, From, To). Components lists the vertex
// partition the forest spans, each sorted and ordered by smallest code.
// Every component of size k contributes exactly k-1 routes.
type Forest struct {
	Routes     []core.Route
	Total      int64
	Components [][]string
}

// accept appends r and adds its weight to Total.
func (f *Forest) accept(r core.Route) error {
	if r.Weight > math.MaxInt64-f.Total {
		return fmt.Errorf("%w: adding %s-%s (%d) to %d", ErrTotalOverflow, r.From, r.To, r.Weight, f.Total)
	}
	f.Routes = append(f.Routes, r)
	f.Total += r.Weight

	return nil
}

// Len returns the number of routes in the forest.
func (f Forest) Len() int { return len(f.Routes) }

// Has reports whether the route between a and b belongs to the forest.
func (f Forest) Has(a, b string) bool {
	key := core.NewRoute(a, b, 0)
	for _, r := range f.Routes {
		if r.From == key.From && r.To == key.To {
			return true
		}
	}

	return false
}

// MSTOptions configures which algorithm to run, and for Prim, which airport
// its first tree grows from. Use DefaultOptions() for Kruskal.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: optional start airport for Prim; ignored by Kruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting airport for Prim's first tree. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting airport for Prim.
// Components not containing root still grow from their smallest code.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute selects and runs the algorithm named by opts.Method.
//
//	- MethodKruskal: Kruskal(g).
//	- MethodPrim:    Prim(g, WithRoot(opts.Root)).
//	- otherwise:     ErrUnknownMethod.
//
// Both methods return the same Forest for the same graph.
func Compute(g *core.Graph, opts MSTOptions) (Forest, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, WithRoot(opts.Root))
	default:
		return Forest{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
