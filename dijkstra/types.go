// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on route graphs.
//
// Dijkstra computes the minimum-cost path from a single source airport to all
// other reachable airports. Route weights are non-negative by construction
// (core.Graph rejects negative weights), so no pre-scan is needed.
//
// Options:
//
//	- Source:           code of the starting airport (must be non-empty and present in the graph).
//	- ReturnPath:       if true, return the predecessor map for path reconstruction.
//	- MaxDistance:      optional cap on distances to explore; airports beyond this are skipped.
//	- InfEdgeThreshold: routes with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	- ErrEmptySource      if the provided source code is empty.
//	- ErrNilGraph         if the provided graph pointer is nil.
//	- core.ErrUnknownAirport if an endpoint does not exist in the graph.
//	- ErrNoPathExists     if the destination is unreachable from the source.
//	- ErrEmptyPath        if PathCost receives an empty path.
//	- ErrDisconnectedPath if PathCost receives a path with a hop that is not a route.
//	- ErrCostOverflow     if PathCost's sum does not fit in an int64.
//	- ErrBadMaxDistance   if MaxDistance < 0 (option constructor panics).
//	- ErrBadInfThreshold  if InfEdgeThreshold <= 0 (option constructor panics).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source code is empty.
	ErrEmptySource = errors.New("dijkstra: source airport code is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPathExists indicates the destination cannot be reached from the source.
	// This is an expected outcome; callers typically ask for another destination.
	ErrNoPathExists = errors.New("dijkstra: no path exists")

	// ErrEmptyPath indicates a zero-length path was supplied to PathCost.
	ErrEmptyPath = errors.New("dijkstra: path is empty")

	// ErrDisconnectedPath indicates two consecutive airports of a supplied path
	// are not joined by a route. It signals a programming error upstream.
	ErrDisconnectedPath = errors.New("dijkstra: path is not connected")

	// ErrCostOverflow indicates a path whose total weight exceeds math.MaxInt64.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows int64")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every route (including free ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           - starting airport code (must be non-empty and present in the graph).
// ReturnPath       - if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      - optional cap on distances to explore. Default math.MaxInt64 (no cap).
// InfEdgeThreshold - routes with weight ≥ this threshold are impassable. Default math.MaxInt64.
type Options struct {
	Source           string // The code of the source airport
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold above which routes are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting airport code. Required.
func Source(code string) Option {
	return func(o *Options) {
		o.Source = code
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Airports whose shortest distance would exceed this value are not explored.
// Panics on negative values (ErrBadMaxDistance).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which routes are
// treated as closed. Panics on zero or negative values (ErrBadInfThreshold).
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with defaults for the given source:
// no predecessor map, no distance cap, no closed routes.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is a computed shortest path and its total cost.
// Path always starts at the source and ends at the destination.
type Result struct {
	Path []string
	Cost int64
}
