// File: api.go
// Role: Lifecycle facade: Freeze/Frozen, Clone, Stats.
// Policy:
//   - No algorithms here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Freeze makes the graph immutable. Later AddAirport/PutRoute calls return ErrFrozen.
// Freeze is idempotent.
//
// Complexity: O(1).
func (g *Graph) Freeze() {
	g.muAirport.Lock()
	g.frozen = true
	g.muAirport.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.muAirport.RLock()
	defer g.muAirport.RUnlock()

	return g.frozen
}

// Clone returns a deep, mutable copy of the graph (the frozen flag is not carried).
//
// Implementation:
//   - Stage 1: Snapshot airports under muAirport read lock.
//   - Stage 2: Snapshot routes under muRoute read lock and rebuild mirrored adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()

	g.muAirport.RLock()
	defer g.muAirport.RUnlock()
	for code, a := range g.airports {
		clone.airports[code] = &Airport{Code: a.Code, Name: a.Name}
		clone.adjacency[code] = make(map[string]*Route)
	}

	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	for k, r := range g.routes {
		nr := &Route{From: r.From, To: r.To, Weight: r.Weight}
		clone.routes[k] = nr
		clone.adjacency[nr.From][nr.To] = nr
		clone.adjacency[nr.To][nr.From] = nr
	}

	return clone
}

// Stats produces a read-only snapshot of the graph's size and shape.
//
// Implementation:
//   - Stage 1: Under muAirport, capture the frozen flag and airport count.
//   - Stage 2: Under muRoute, count routes, total weight and isolated airports.
//
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.muAirport.RLock()
	stats := GraphStats{
		AirportCount: len(g.airports),
		Frozen:       g.frozen,
	}
	g.muAirport.RUnlock()

	g.muRoute.RLock()
	stats.RouteCount = len(g.routes)
	for _, r := range g.routes {
		stats.TotalWeight += r.Weight
	}
	for _, adj := range g.adjacency {
		if len(adj) == 0 {
			stats.IsolatedCount++
		}
	}
	g.muRoute.RUnlock()

	return stats
}
