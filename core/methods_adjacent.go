// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborCodes, Degree).
// Determinism:
//   - Neighbors() sorts by (Weight, Code) ascending; shortest-path tie-breaks depend on it.
//   - NeighborCodes() returns codes sorted lexicographically ascending.
// Concurrency:
//   - Read operations hold muAirport then muRoute read locks.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns every airport directly reachable from code, with route weights.
//
// Implementation:
//   - Stage 1: Validate code (ErrEmptyCode, ErrUnknownAirport).
//   - Stage 2: Snapshot adjacency[code] under muRoute read lock.
//   - Stage 3: Sort by ascending weight, then ascending code.
//
// Returns:
//   - []Neighbor: a fresh slice owned by the caller.
//   - error: nil on success; otherwise a sentinel.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of code.
func (g *Graph) Neighbors(code string) ([]Neighbor, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	if _, ok := g.airports[code]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAirport, code)
	}

	g.muRoute.RLock()
	out := make([]Neighbor, 0, len(g.adjacency[code]))
	for other, r := range g.adjacency[code] {
		out = append(out, Neighbor{Code: other, Weight: r.Weight})
	}
	g.muRoute.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}

		return out[i].Code < out[j].Code
	})

	return out, nil
}

// NeighborCodes returns the codes adjacent to code, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborCodes(code string) ([]string, error) {
	nbs, err := g.Neighbors(code)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nbs))
	for i, nb := range nbs {
		out[i] = nb.Code
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of routes incident to code.
func (g *Graph) Degree(code string) (int, error) {
	if code == "" {
		return 0, ErrEmptyCode
	}
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	if _, ok := g.airports[code]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAirport, code)
	}
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()

	return len(g.adjacency[code]), nil
}
