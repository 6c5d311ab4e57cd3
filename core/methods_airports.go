// File: methods_airports.go
// Role: Airport catalog lifecycle & queries.
//
// Determinism:
//   - Airports() returns airports sorted by Code ascending.
//
// Concurrency:
//   - Airport catalog protected by muAirport.
//   - Adjacency bootstrap under muRoute (to keep adjacency invariants consistent).
package core

import (
	"fmt"
	"sort"
)

// AddAirport registers an airport.
//
// Implementation:
//   - Stage 1: Validate non-empty code (ErrEmptyCode).
//   - Stage 2: Under muAirport write lock, reject frozen graphs and check presence.
//   - Stage 3: Under muRoute write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Idempotent when the same (code, name) pair is registered again.
//   - A second registration with a different name is a data-entry conflict (ErrDuplicateAirport).
//
// Errors:
//   - ErrEmptyCode, ErrFrozen, ErrDuplicateAirport.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddAirport(code, name string) error {
	if code == "" {
		return ErrEmptyCode
	}

	g.muAirport.Lock()
	defer g.muAirport.Unlock()

	if g.frozen {
		return ErrFrozen
	}

	if existing, ok := g.airports[code]; ok {
		if existing.Name == name {
			return nil // no-op for an identical registration
		}

		return fmt.Errorf("%w: %q is %q, not %q", ErrDuplicateAirport, code, existing.Name, name)
	}

	g.airports[code] = &Airport{Code: code, Name: name}

	g.muRoute.Lock()
	g.adjacency[code] = make(map[string]*Route)
	g.muRoute.Unlock()

	return nil
}

// HasAirport reports whether the code exists (empty code ⇒ false).
// Complexity: O(1).
func (g *Graph) HasAirport(code string) bool {
	if code == "" {
		return false
	}
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	_, ok := g.airports[code]

	return ok
}

// Airport returns a copy of the airport registered under code.
//
// Errors:
//   - ErrEmptyCode: if code == "".
//   - ErrUnknownAirport: if the airport does not exist.
func (g *Graph) Airport(code string) (Airport, error) {
	if code == "" {
		return Airport{}, ErrEmptyCode
	}
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	a, ok := g.airports[code]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %q", ErrUnknownAirport, code)
	}

	return *a, nil
}

// Airports returns copies of all airports sorted by Code ascending.
// Complexity: O(V log V).
func (g *Graph) Airports() []Airport {
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	out := make([]Airport, 0, len(g.airports))
	for _, a := range g.airports {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

// Codes returns all airport codes sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Codes() []string {
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	out := make([]string, 0, len(g.airports))
	for code := range g.airports {
		out = append(out, code)
	}
	sort.Strings(out)

	return out
}

// AirportCount returns the number of registered airports.
// Complexity: O(1).
func (g *Graph) AirportCount() int {
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()

	return len(g.airports)
}
