package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airgraph/builder"
)

// decodeCosts walks a code→code→weight mapping node in document order.
// An absent node yields a nil table.
func decodeCosts(n *yaml.Node) (builder.CostTable, error) {
	if n.Kind == 0 || n.ShortTag() == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: costs must be a mapping", ErrBadDataset, n.Line)
	}

	table := make(builder.CostTable, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: costs row %q must be a mapping", ErrBadDataset, val.Line, key.Value)
		}
		row := builder.CostRow{From: key.Value, Cells: make([]builder.CostCell, 0, len(val.Content)/2)}
		for j := 0; j+1 < len(val.Content); j += 2 {
			to, cell := val.Content[j], val.Content[j+1]
			w, err := scalarWeight(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: costs %s→%s: %w", ErrBadDataset, cell.Line, key.Value, to.Value, err)
			}
			row.Cells = append(row.Cells, builder.CostCell{To: to.Value, Weight: w})
		}
		table = append(table, row)
	}

	return table, nil
}

// decodeMatrix reads a sequence of rows whose columns follow the airport order.
// An absent node yields nil.
func decodeMatrix(n *yaml.Node, airports []Airport) (*builder.Matrix, error) {
	if n.Kind == 0 || n.ShortTag() == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: matrix must be a list of rows", ErrBadDataset, n.Line)
	}

	m := &builder.Matrix{
		Codes: make([]string, len(airports)),
		Cells: make([][]builder.Weight, 0, len(n.Content)),
	}
	for i, a := range airports {
		m.Codes[i] = a.Code
	}
	for i, rowNode := range n.Content {
		if rowNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: line %d: matrix row %d must be a list", ErrBadDataset, rowNode.Line, i)
		}
		row := make([]builder.Weight, len(rowNode.Content))
		for j, cell := range rowNode.Content {
			w, err := scalarWeight(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: matrix[%d][%d]: %w", ErrBadDataset, cell.Line, i, j, err)
			}
			row[j] = w
		}
		m.Cells = append(m.Cells, row)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDataset, err)
	}

	return m, nil
}

// scalarWeight parses a scalar cell with builder.ParseWeight.
func scalarWeight(n *yaml.Node) (builder.Weight, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return builder.NoRoute, fmt.Errorf("%w: want an integer or %q", builder.ErrBadWeight, builder.NoRouteMarker)
	}

	return builder.ParseWeight(n.Value)
}
