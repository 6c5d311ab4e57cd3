// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// export.go: the inverse direction, flattening a graph back into the static
// shapes accepted by the constructors.

package builder

import (
	"github.com/katalvlaran/airgraph/core"
)

// ToMatrix renders g as a square Matrix over its codes in ascending order.
// The diagonal and every pair without a direct route hold NoRoute, so
// FromMatrix(g.Airports(), ToMatrix(g)) rebuilds the same routes.
//
// Complexity: O(V² + E). Memory: O(V²).
func ToMatrix(g *core.Graph) Matrix {
	codes := g.Codes()
	idx := make(map[string]int, len(codes))
	for i, c := range codes {
		idx[c] = i
	}

	cells := make([][]Weight, len(codes))
	for i := range cells {
		cells[i] = make([]Weight, len(codes))
	}
	for _, r := range g.Routes() {
		i, j := idx[r.From], idx[r.To]
		cells[i][j] = Cost(r.Weight)
		cells[j][i] = Cost(r.Weight)
	}

	return Matrix{Codes: codes, Cells: cells}
}

// ToRouteList returns one RouteSpec per route of g, ordered by (From, To)
// with From < To.
//
// Complexity: O(E log E).
func ToRouteList(g *core.Graph) []RouteSpec {
	routes := g.Routes()
	out := make([]RouteSpec, len(routes))
	for i, r := range routes {
		out[i] = RouteSpec{From: r.From, To: r.To, Weight: r.Weight}
	}

	return out
}
