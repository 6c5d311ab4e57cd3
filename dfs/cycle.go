package dfs

import (
	"fmt"

	"github.com/katalvlaran/airgraph/core"
)

// FindCycle reports one simple cycle of g, or nil when g is a forest.
//
// The cycle is closed ([v0, v1, ..., v0]) and canonical: it starts at its
// smallest code and runs in the direction whose second element is smaller.
// Among all cycles, the one found first by a DFS in code order is returned,
// so the answer is deterministic.
//
// Complexity: O(V + E).
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	state := make(map[string]int, g.AirportCount())
	var path []string
	var found []string

	var visit func(code, parent string) error
	visit = func(code, parent string) error {
		state[code] = Gray
		path = append(path, code)

		nbs, err := g.NeighborCodes(code)
		if err != nil {
			return fmt.Errorf("dfs: FindCycle: %w", err)
		}
		for _, nb := range nbs {
			if found != nil {
				return nil
			}
			switch state[nb] {
			case White:
				if err = visit(nb, code); err != nil {
					return err
				}
			case Gray:
				// a simple graph has no parallel routes, so the parent edge is never a cycle
				if nb == parent {
					continue
				}
				found = canonicalCycle(path[indexOf(path, nb):])
				return nil
			}
		}

		path = path[:len(path)-1]
		state[code] = Black

		return nil
	}

	for _, c := range g.Codes() {
		if state[c] != White {
			continue
		}
		if err := visit(c, ""); err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	return nil, nil
}

// canonicalCycle rotates the open cycle seq to start at its minimum, picks
// the direction with the smaller second element, and closes it.
func canonicalCycle(seq []string) []string {
	n := len(seq)
	m := 0
	for i := 1; i < n; i++ {
		if seq[i] < seq[m] {
			m = i
		}
	}

	out := make([]string, 0, n+1)
	if seq[(m+1)%n] <= seq[(m-1+n)%n] {
		for i := 0; i < n; i++ {
			out = append(out, seq[(m+i)%n])
		}
	} else {
		for i := 0; i < n; i++ {
			out = append(out, seq[(m-i+n)%n])
		}
	}

	return append(out, out[0])
}

// indexOf returns the index of val in s, or -1.
func indexOf(s []string, val string) int {
	for i, v := range s {
		if v == val {
			return i
		}
	}

	return -1
}
