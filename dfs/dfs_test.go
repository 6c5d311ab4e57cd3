package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dfs"
)

func graphOf(t *testing.T, codes []string, routes ...builder.RouteSpec) *core.Graph {
	t.Helper()
	airports := make([]core.Airport, len(codes))
	for i, c := range codes {
		airports[i] = core.Airport{Code: c}
	}
	g, err := builder.FromRouteList(airports, routes)
	require.NoError(t, err)

	return g
}

// quad is AUS-DFW 300, AUS-ORD 500, DFW-JFK 400, ORD-JFK 350, plus isolated SEA.
func quad(t *testing.T) *core.Graph {
	return graphOf(t, []string{"AUS", "DFW", "JFK", "ORD", "SEA"},
		builder.RouteSpec{From: "AUS", To: "DFW", Weight: 300},
		builder.RouteSpec{From: "AUS", To: "ORD", Weight: 500},
		builder.RouteSpec{From: "DFW", To: "JFK", Weight: 400},
		builder.RouteSpec{From: "ORD", To: "JFK", Weight: 350},
	)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "AUS")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(quad(t), "ZZZ")
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestDFS_Order(t *testing.T) {
	res, err := dfs.DFS(quad(t), "AUS")
	require.NoError(t, err)

	assert.Equal(t, []string{"AUS", "DFW", "JFK", "ORD"}, res.Preorder)
	assert.Equal(t, []string{"ORD", "JFK", "DFW", "AUS"}, res.Order)
	assert.Equal(t, map[string]int{"AUS": 0, "DFW": 1, "JFK": 2, "ORD": 3}, res.Depth)
	assert.Equal(t, "JFK", res.Parent["ORD"])
	assert.False(t, res.Visited["SEA"])
}

func TestDFS_FullTraversalAndLimits(t *testing.T) {
	g := quad(t)

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Visited, 5)
	assert.Equal(t, "SEA", res.Preorder[len(res.Preorder)-1])

	res, err = dfs.DFS(g, "AUS", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"AUS", "DFW", "ORD"}, res.Preorder)
	assert.NotContains(t, res.Parent, "JFK")

	res, err = dfs.DFS(g, "AUS", dfs.WithFilterNeighbor(func(c string) bool { return c != "DFW" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"AUS", "ORD", "JFK"}, res.Preorder)
	assert.Equal(t, 2, res.SkippedNeighbors) // from AUS and from JFK
}

func TestDFS_Hooks(t *testing.T) {
	g := quad(t)
	stop := errors.New("stop")

	var exits []string
	_, err := dfs.DFS(g, "AUS", dfs.WithOnExit(func(c string) error {
		exits = append(exits, c)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD", "JFK", "DFW", "AUS"}, exits)

	_, err = dfs.DFS(g, "AUS", dfs.WithOnVisit(func(c string) error {
		if c == "JFK" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "AUS", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindCycle(t *testing.T) {
	cycle, err := dfs.FindCycle(quad(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"AUS", "DFW", "JFK", "ORD", "AUS"}, cycle)

	tree := graphOf(t, []string{"A", "B", "C", "D"},
		builder.RouteSpec{From: "A", To: "B", Weight: 1},
		builder.RouteSpec{From: "B", To: "C", Weight: 1},
		builder.RouteSpec{From: "B", To: "D", Weight: 1},
	)
	cycle, err = dfs.FindCycle(tree)
	require.NoError(t, err)
	assert.Nil(t, cycle)

	// routes given out of order; the witness is still canonical
	tri := graphOf(t, []string{"A", "B", "C"},
		builder.RouteSpec{From: "C", To: "A", Weight: 1},
		builder.RouteSpec{From: "A", To: "B", Weight: 1},
		builder.RouteSpec{From: "B", To: "C", Weight: 1},
	)
	cycle, err = dfs.FindCycle(tri)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "A"}, cycle)

	_, err = dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestSimplePaths(t *testing.T) {
	g := quad(t)

	got, err := dfs.SimplePaths(g, "AUS", "JFK")
	require.NoError(t, err)
	assert.Equal(t, []dfs.Itinerary{
		{Path: []string{"AUS", "DFW", "JFK"}, Cost: 700},
		{Path: []string{"AUS", "ORD", "JFK"}, Cost: 850},
	}, got)

	got, err = dfs.SimplePaths(g, "AUS", "JFK", dfs.WithLimit(1))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = dfs.SimplePaths(g, "AUS", "JFK", dfs.WithMaxHops(1))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = dfs.SimplePaths(g, "DFW", "ORD")
	require.NoError(t, err)
	assert.Equal(t, []dfs.Itinerary{
		{Path: []string{"DFW", "JFK", "ORD"}, Cost: 750},
		{Path: []string{"DFW", "AUS", "ORD"}, Cost: 800},
	}, got)

	got, err = dfs.SimplePaths(g, "SEA", "SEA")
	require.NoError(t, err)
	assert.Equal(t, []dfs.Itinerary{{Path: []string{"SEA"}, Cost: 0}}, got)

	got, err = dfs.SimplePaths(g, "AUS", "SEA")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSimplePaths_Errors(t *testing.T) {
	_, err := dfs.SimplePaths(nil, "A", "B")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.SimplePaths(quad(t), "AUS", "ZZZ")
	assert.ErrorIs(t, err, core.ErrUnknownAirport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.SimplePaths(quad(t), "AUS", "JFK", dfs.WithPathContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { dfs.WithMaxHops(-1) })
	assert.Panics(t, func() { dfs.WithLimit(-1) })
}
