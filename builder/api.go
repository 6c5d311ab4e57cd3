// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// api.go: public constructors turning static input data into frozen graphs.
//
// Every constructor:
//   1) registers the airports in declaration order;
//   2) walks the input in declaration order, adding one undirected route per
//      concrete weight (the later declaration of a pair wins unless strict);
//   3) freezes the graph (unless WithMutable).

package builder

import (
	"github.com/katalvlaran/airgraph/core"
)

// Canonical constructor names used as error prefixes.
const (
	MethodCostTable = "FromCostTable"
	MethodRouteList = "FromRouteList"
	MethodMatrix    = "FromMatrix"
)

// CostCell is one (destination, weight) entry of a cost-table row.
type CostCell struct {
	To     string
	Weight Weight
}

// CostRow holds the cells declared for one source airport, in declaration order.
type CostRow struct {
	From  string
	Cells []CostCell
}

// CostTable is a nested code→code→weight table with explicit declaration
// order, so the last-write-wins tie-break is reproducible.
type CostTable []CostRow

// RouteSpec is one (source, destination, weight) triple of a route list.
type RouteSpec struct {
	From   string
	To     string
	Weight int64
}

// Matrix is a square weight matrix whose rows and columns are both indexed by Codes.
type Matrix struct {
	Codes []string
	Cells [][]Weight
}

// FromCostTable builds a frozen graph from a cost table.
//
// For every cell (src, dst) with src != dst and a concrete weight, an
// undirected route src-dst is added. Diagonal cells and NoRoute cells are
// skipped. Rows are processed in order, cells within a row in order; when
// both (a,b) and (b,a) carry weights, the later one wins.
//
// Errors:
//   - core.ErrEmptyCode / core.ErrDuplicateAirport from the airport list.
//   - core.ErrUnknownAirport if a row or cell names an unregistered code.
//   - core.ErrInvalidRoute for negative weights.
//   - ErrConflictingRoute under WithStrictConflicts.
//
// Complexity: O(V + C) where C is the number of cells.
func FromCostTable(airports []core.Airport, table CostTable, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g, err := registerAirports(MethodCostTable, airports)
	if err != nil {
		return nil, err
	}

	for _, row := range table {
		if !g.HasAirport(row.From) {
			return nil, wrapf(MethodCostTable, core.ErrUnknownAirport, "row %q", row.From)
		}
		for _, cell := range row.Cells {
			if !g.HasAirport(cell.To) {
				return nil, wrapf(MethodCostTable, core.ErrUnknownAirport, "cell %s→%s", row.From, cell.To)
			}
			w, ok := cell.Weight.Value()
			if !ok || row.From == cell.To {
				continue
			}
			if err = put(g, cfg, MethodCostTable, row.From, cell.To, w); err != nil {
				return nil, err
			}
		}
	}

	return finish(g, cfg), nil
}

// FromRouteList builds a frozen graph from an explicit list of triples.
// Each triple adds one undirected route; duplicates overwrite in list order.
//
// Errors:
//   - core.ErrInvalidRoute for self-loops and negative weights.
//   - core.ErrUnknownAirport for codes absent from airports.
//   - ErrConflictingRoute under WithStrictConflicts.
func FromRouteList(airports []core.Airport, routes []RouteSpec, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g, err := registerAirports(MethodRouteList, airports)
	if err != nil {
		return nil, err
	}

	for _, r := range routes {
		if err = put(g, cfg, MethodRouteList, r.From, r.To, r.Weight); err != nil {
			return nil, err
		}
	}

	return finish(g, cfg), nil
}

// FromMatrix builds a frozen graph from a square matrix.
// The diagonal is ignored (distance tables put 0 there); NoRoute cells are skipped.
// Rows are processed top to bottom, so for an asymmetric pair the lower
// triangle (processed later) wins.
//
// Errors:
//   - ErrBadMatrix if the matrix is not len(Codes)×len(Codes) or Codes repeats.
//   - core.ErrUnknownAirport if Codes names an unregistered airport.
//   - core.ErrInvalidRoute, ErrConflictingRoute as for FromCostTable.
func FromMatrix(airports []core.Airport, m Matrix, opts ...Option) (*core.Graph, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	table := make(CostTable, len(m.Codes))
	for i, from := range m.Codes {
		cells := make([]CostCell, len(m.Codes))
		for j, to := range m.Codes {
			cells[j] = CostCell{To: to, Weight: m.Cells[i][j]}
		}
		table[i] = CostRow{From: from, Cells: cells}
	}

	return FromCostTable(airports, table, opts...)
}

// Validate checks that m is square and its codes are unique.
func (m Matrix) Validate() error {
	n := len(m.Codes)
	if len(m.Cells) != n {
		return wrapf(MethodMatrix, ErrBadMatrix, "%d codes but %d rows", n, len(m.Cells))
	}
	seen := make(map[string]bool, n)
	for i, code := range m.Codes {
		if seen[code] {
			return wrapf(MethodMatrix, ErrBadMatrix, "code %q repeated", code)
		}
		seen[code] = true
		if len(m.Cells[i]) != n {
			return wrapf(MethodMatrix, ErrBadMatrix, "row %q has %d cells, want %d", code, len(m.Cells[i]), n)
		}
	}

	return nil
}

// registerAirports creates a mutable graph holding airports in declaration order.
func registerAirports(method string, airports []core.Airport) (*core.Graph, error) {
	g := core.NewGraph()
	for _, a := range airports {
		if err := g.AddAirport(a.Code, a.Name); err != nil {
			return nil, wrapf(method, err, "airport %q", a.Code)
		}
	}

	return g, nil
}

// put adds or overwrites a-b, enforcing the strict-conflict policy.
func put(g *core.Graph, cfg builderConfig, method, a, b string, w int64) error {
	if cfg.strict {
		if prev, err := g.Route(a, b); err == nil && prev.Weight != w {
			return wrapf(method, ErrConflictingRoute, "%s-%s declared as %d and %d", a, b, prev.Weight, w)
		}
	}
	if err := g.PutRoute(a, b, w); err != nil {
		return wrapf(method, err, "%s-%s", a, b)
	}

	return nil
}

// finish freezes g unless the caller asked for a mutable graph.
func finish(g *core.Graph, cfg builderConfig) *core.Graph {
	if !cfg.mutable {
		g.Freeze()
	}

	return g
}
