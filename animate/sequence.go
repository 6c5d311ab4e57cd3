package animate

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dijkstra"
)

// ErrStepOutOfRange is returned by Sequence.Step for an index outside [0, Len).
var ErrStepOutOfRange = errors.New("animate: step index out of range")

// Step is one reveal instruction.
type Step struct {
	// Index is the zero-based position of the step.
	Index int

	// Prefix is path[0..Index], owned by the receiver.
	Prefix []string

	// Edge is the route revealed by this step; nil for the first step.
	// It is stored canonically (From < To), so the direction travelled is
	// Prefix[Index-1] to Prefix[Index], not necessarily Edge.From to Edge.To.
	Edge *core.Route

	// RunningCost is the summed weight of Prefix.
	RunningCost int64
}

// Sequence is an immutable, restartable series of Steps over one path.
type Sequence struct {
	path    []string
	routes  []core.Route // routes[i] joins path[i] and path[i+1]
	running []int64      // running[i] is the cost of path[0..i]
}

// New validates path against g and returns its Sequence.
//
// Errors are those of dijkstra.PathCost: ErrEmptyPath, core.ErrUnknownAirport
// or ErrDisconnectedPath. The graph is read once; later changes to a mutable
// graph do not affect the Sequence.
func New(g *core.Graph, path []string) (*Sequence, error) {
	if _, err := dijkstra.PathCost(g, path); err != nil {
		return nil, fmt.Errorf("animate: %w", err)
	}

	s := &Sequence{
		path:    append([]string(nil), path...),
		routes:  make([]core.Route, 0, len(path)-1),
		running: make([]int64, len(path)),
	}
	for i := 1; i < len(path); i++ {
		r, err := g.Route(path[i-1], path[i])
		if err != nil {
			return nil, fmt.Errorf("animate: %w: %v", dijkstra.ErrDisconnectedPath, err)
		}
		s.routes = append(s.routes, r)
		s.running[i] = s.running[i-1] + r.Weight
	}

	return s, nil
}

// FromResult builds the Sequence for a shortest-path result.
func FromResult(g *core.Graph, res dijkstra.Result) (*Sequence, error) {
	return New(g, res.Path)
}

// Len returns the number of steps, which equals the path length.
func (s *Sequence) Len() int { return len(s.path) }

// Total returns the cost of the whole path.
func (s *Sequence) Total() int64 { return s.running[len(s.running)-1] }

// Path returns a copy of the underlying path.
func (s *Sequence) Path() []string { return append([]string(nil), s.path...) }

// Step returns step i.
func (s *Sequence) Step(i int) (Step, error) {
	if i < 0 || i >= len(s.path) {
		return Step{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, i, len(s.path))
	}

	return s.step(i), nil
}

// Steps materializes every step into a new slice.
func (s *Sequence) Steps() []Step {
	out := make([]Step, len(s.path))
	for i := range out {
		out[i] = s.step(i)
	}

	return out
}

// All returns a lazy iterator over the steps. Each range over it starts at step 0.
func (s *Sequence) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for i := range s.path {
			if !yield(s.step(i)) {
				return
			}
		}
	}
}

// Cursor returns a new pull-style cursor positioned before step 0.
func (s *Sequence) Cursor() *Cursor {
	return &Cursor{seq: s}
}

// step assembles step i with fresh slices.
func (s *Sequence) step(i int) Step {
	st := Step{
		Index:       i,
		Prefix:      append([]string(nil), s.path[:i+1]...),
		RunningCost: s.running[i],
	}
	if i > 0 {
		r := s.routes[i-1]
		st.Edge = &r
	}

	return st
}

// Cursor walks a Sequence one step at a time at the caller's cadence.
// A Cursor is not safe for concurrent use; create one per consumer.
type Cursor struct {
	seq *Sequence
	pos int
}

// Next returns the next step and true, or a zero Step and false when exhausted.
func (c *Cursor) Next() (Step, bool) {
	if c.pos >= c.seq.Len() {
		return Step{}, false
	}
	st := c.seq.step(c.pos)
	c.pos++

	return st, true
}

// Reset rewinds the cursor to step 0.
func (c *Cursor) Reset() { c.pos = 0 }

// Remaining reports how many steps Next will still return.
func (c *Cursor) Remaining() int { return c.seq.Len() - c.pos }
