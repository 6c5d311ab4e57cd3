package bfs

import (
	"sort"

	"github.com/katalvlaran/airgraph/core"
)

// Components partitions the airports of g into connected components.
//
// Each component is sorted by code, and components are ordered by their
// smallest code, so the result is deterministic. An empty or nil graph
// yields nil.
//
// Complexity: O((V + E) log d) with d the maximum degree.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, nil
	}

	var out [][]string
	seen := make(map[string]bool, g.AirportCount())
	for _, code := range g.Codes() { // ascending, so each root is its component's minimum
		if seen[code] {
			continue
		}
		res, err := BFS(g, code)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, c := range comp {
			seen[c] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
