package dfs

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/airgraph/core"
)

// Itinerary is one loop-free walk between two airports and its total weight.
type Itinerary struct {
	Path []string
	Cost int64
}

// PathOption configures SimplePaths.
type PathOption func(*pathOptions)

type pathOptions struct {
	ctx     context.Context
	maxHops int
	limit   int
}

// WithPathContext sets a context checked at every expansion.
func WithPathContext(ctx context.Context) PathOption {
	return func(o *pathOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxHops bounds the number of routes per itinerary. 0 means no bound.
// Panics if hops < 0.
func WithMaxHops(hops int) PathOption {
	if hops < 0 {
		panic(fmt.Sprintf("%v: WithMaxHops(%d)", ErrBadOption, hops))
	}
	return func(o *pathOptions) {
		o.maxHops = hops
	}
}

// WithLimit keeps only the k cheapest itineraries. 0 means all.
// Panics if k < 0.
func WithLimit(k int) PathOption {
	if k < 0 {
		panic(fmt.Sprintf("%v: WithLimit(%d)", ErrBadOption, k))
	}
	return func(o *pathOptions) {
		o.limit = k
	}
}

// SimplePaths enumerates every simple path from src to dst.
//
// Results are ordered by (Cost, hop count, codes lexicographically).
// src == dst yields the single itinerary [src] with cost 0. An unreachable
// dst yields an empty slice and no error.
//
// The enumeration is exponential in the worst case; bound it with
// WithMaxHops on dense graphs.
//
// Errors: ErrGraphNil, wrapped core.ErrUnknownAirport, a context error.
func SimplePaths(g *core.Graph, src, dst string, opts ...PathOption) ([]Itinerary, error) {
	o := pathOptions{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, c := range []string{src, dst} {
		if !g.HasAirport(c) {
			return nil, fmt.Errorf("dfs: SimplePaths %q: %w", c, core.ErrUnknownAirport)
		}
	}

	var out []Itinerary
	onPath := map[string]bool{src: true}
	path := []string{src}

	var walk func(cur string, cost int64) error
	walk = func(cur string, cost int64) error {
		if err := o.ctx.Err(); err != nil {
			return err
		}
		if cur == dst {
			out = append(out, Itinerary{Path: slices.Clone(path), Cost: cost})
			return nil
		}
		if o.maxHops > 0 && len(path)-1 >= o.maxHops {
			return nil
		}
		nbs, err := g.Neighbors(cur)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if onPath[nb.Code] {
				continue
			}
			onPath[nb.Code] = true
			path = append(path, nb.Code)
			if err = walk(nb.Code, cost+nb.Weight); err != nil {
				return err
			}
			path = path[:len(path)-1]
			onPath[nb.Code] = false
		}

		return nil
	}
	if err := walk(src, 0); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		if len(a.Path) != len(b.Path) {
			return len(a.Path) < len(b.Path)
		}
		return slices.Compare(a.Path, b.Path) < 0
	})
	if o.limit > 0 && len(out) > o.limit {
		out = out[:o.limit]
	}
	if out == nil {
		out = []Itinerary{}
	}

	return out, nil
}
