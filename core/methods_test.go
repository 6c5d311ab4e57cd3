package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/core"
)

// Common airport codes used across core tests.
const (
	CodeAUS = "AUS"
	CodeDFW = "DFW"
	CodeJFK = "JFK"
	CodeORD = "ORD"
)

// newQuad registers AUS, DFW, ORD, JFK and the four routes of the
// canonical square scenario.
func newQuad(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, code := range []string{CodeAUS, CodeDFW, CodeORD, CodeJFK} {
		require.NoError(t, g.AddAirport(code, code+" International"))
	}
	require.NoError(t, g.PutRoute(CodeAUS, CodeDFW, 300))
	require.NoError(t, g.PutRoute(CodeAUS, CodeORD, 500))
	require.NoError(t, g.PutRoute(CodeDFW, CodeJFK, 400))
	require.NoError(t, g.PutRoute(CodeORD, CodeJFK, 350))

	return g
}

func TestAddAirport_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddAirport("", "nowhere"), core.ErrEmptyCode)
	require.NoError(t, g.AddAirport(CodeAUS, "Austin"))
	// identical re-registration is a no-op
	require.NoError(t, g.AddAirport(CodeAUS, "Austin"))
	assert.ErrorIs(t, g.AddAirport(CodeAUS, "Austin Bergstrom"), core.ErrDuplicateAirport)
	assert.Equal(t, 1, g.AirportCount())

	a, err := g.Airport(CodeAUS)
	require.NoError(t, err)
	assert.Equal(t, core.Airport{Code: CodeAUS, Name: "Austin"}, a)

	_, err = g.Airport("ZZZ")
	assert.ErrorIs(t, err, core.ErrUnknownAirport)
}

func TestPutRoute_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAirport(CodeAUS, ""))
	require.NoError(t, g.AddAirport(CodeDFW, ""))

	tests := []struct {
		name    string
		a, b    string
		weight  int64
		wantErr error
	}{
		{"empty code", "", CodeDFW, 1, core.ErrEmptyCode},
		{"self loop", CodeAUS, CodeAUS, 1, core.ErrInvalidRoute},
		{"negative weight", CodeAUS, CodeDFW, -1, core.ErrInvalidRoute},
		{"unknown endpoint", CodeAUS, "ZZZ", 1, core.ErrUnknownAirport},
		{"zero weight is fine", CodeAUS, CodeDFW, 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.PutRoute(tc.a, tc.b, tc.weight)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	// the unknown endpoint must not have been created implicitly
	assert.False(t, g.HasAirport("ZZZ"))
}

func TestPutRoute_LastWriteWins(t *testing.T) {
	g := newQuad(t)

	require.NoError(t, g.PutRoute(CodeDFW, CodeAUS, 120)) // reversed direction, same pair
	assert.Equal(t, 4, g.RouteCount())

	r, err := g.Route(CodeAUS, CodeDFW)
	require.NoError(t, err)
	assert.Equal(t, core.Route{From: CodeAUS, To: CodeDFW, Weight: 120}, r)

	// adjacency sees the new weight from both sides
	nbs, err := g.Neighbors(CodeDFW)
	require.NoError(t, err)
	assert.Equal(t, core.Neighbor{Code: CodeAUS, Weight: 120}, nbs[0])
}

func TestHasRoute_Symmetric(t *testing.T) {
	g := newQuad(t)

	assert.True(t, g.HasRoute(CodeAUS, CodeDFW))
	assert.True(t, g.HasRoute(CodeDFW, CodeAUS))
	assert.False(t, g.HasRoute(CodeAUS, CodeJFK))
	assert.False(t, g.HasRoute(CodeAUS, CodeAUS))
	assert.False(t, g.HasRoute("", CodeAUS))

	_, err := g.Route(CodeAUS, CodeJFK)
	assert.ErrorIs(t, err, core.ErrRouteNotFound)
	_, err = g.Route(CodeAUS, "ZZZ")
	assert.ErrorIs(t, err, core.ErrUnknownAirport)
}

func TestNeighbors_SortedByWeightThenCode(t *testing.T) {
	g := newQuad(t)
	require.NoError(t, g.AddAirport("BOS", ""))
	require.NoError(t, g.PutRoute(CodeJFK, "BOS", 350)) // ties with ORD-JFK

	nbs, err := g.Neighbors(CodeJFK)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{Code: "BOS", Weight: 350},
		{Code: CodeORD, Weight: 350},
		{Code: CodeDFW, Weight: 400},
	}, nbs)

	codes, err := g.NeighborCodes(CodeJFK)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOS", CodeDFW, CodeORD}, codes)

	deg, err := g.Degree(CodeJFK)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	_, err = g.Neighbors("ZZZ")
	assert.ErrorIs(t, err, core.ErrUnknownAirport)
}

func TestRoutes_CanonicalAndSorted(t *testing.T) {
	g := newQuad(t)

	assert.Equal(t, []core.Route{
		{From: CodeAUS, To: CodeDFW, Weight: 300},
		{From: CodeAUS, To: CodeORD, Weight: 500},
		{From: CodeDFW, To: CodeJFK, Weight: 400},
		{From: CodeJFK, To: CodeORD, Weight: 350},
	}, g.Routes())
	assert.Equal(t, []string{CodeAUS, CodeDFW, CodeJFK, CodeORD}, g.Codes())
}

func TestFreeze_RejectsMutation(t *testing.T) {
	g := newQuad(t)
	g.Freeze()

	assert.True(t, g.Frozen())
	assert.ErrorIs(t, g.AddAirport("LAX", ""), core.ErrFrozen)
	assert.ErrorIs(t, g.PutRoute(CodeAUS, CodeJFK, 1), core.ErrFrozen)

	// a clone starts mutable and leaves the original untouched
	c := g.Clone()
	assert.False(t, c.Frozen())
	require.NoError(t, c.PutRoute(CodeAUS, CodeJFK, 1))
	assert.False(t, g.HasRoute(CodeAUS, CodeJFK))
	assert.Equal(t, g.Airports(), c.Airports())
}

func TestStats(t *testing.T) {
	g := newQuad(t)
	require.NoError(t, g.AddAirport("SFO", ""))
	g.Freeze()

	assert.Equal(t, core.GraphStats{
		AirportCount:  5,
		RouteCount:    4,
		TotalWeight:   1550,
		IsolatedCount: 1,
		Frozen:        true,
	}, g.Stats())
}

func TestRoute_OtherAndLess(t *testing.T) {
	r := core.NewRoute(CodeJFK, CodeDFW, 400)
	assert.Equal(t, CodeDFW, r.From)
	assert.Equal(t, CodeJFK, r.Other(CodeDFW))
	assert.Equal(t, CodeDFW, r.Other(CodeJFK))
	assert.Equal(t, "", r.Other(CodeAUS))

	assert.True(t, core.NewRoute("A", "B", 1).Less(core.NewRoute("A", "B", 2)))
	assert.True(t, core.NewRoute("A", "C", 1).Less(core.NewRoute("B", "C", 1)))
	assert.True(t, core.NewRoute("A", "B", 1).Less(core.NewRoute("A", "C", 1)))
	assert.False(t, core.NewRoute("A", "B", 1).Less(core.NewRoute("A", "B", 1)))
}
