package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/dataset"
	"github.com/katalvlaran/airgraph/dijkstra"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"costs", "distances", "fuel", "geodesic", "routes"}, dataset.Names())
}

func TestSamples(t *testing.T) {
	tests := []struct {
		name   string
		source dataset.Source
		routes int
	}{
		{"routes", dataset.SourceRoutes, 8},
		{"costs", dataset.SourceCosts, 15},
		{"fuel", dataset.SourceCosts, 15},
		{"distances", dataset.SourceMatrix, 15},
		{"geodesic", dataset.SourceGreatCircle, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := dataset.Sample(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, ds.Name)
			assert.Equal(t, tc.source, ds.Source())
			require.Len(t, ds.Airports, 6)

			// Every sample is symmetric, so strict conflict checking must pass.
			g, err := ds.Graph(builder.WithStrictConflicts())
			require.NoError(t, err)
			assert.True(t, g.Frozen())
			assert.Equal(t, tc.routes, g.RouteCount())
			assert.Equal(t, 6, g.AirportCount())
		})
	}
}

func TestSample_RoutesShortestPath(t *testing.T) {
	ds, err := dataset.Sample("routes")
	require.NoError(t, err)
	g, err := ds.Graph()
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(g, "AUS", "SFO")
	require.NoError(t, err)
	// AUS-ORD-LAX-SFO (1400) beats AUS-DFW-JFK-SFO (1500).
	assert.Equal(t, []string{"AUS", "ORD", "LAX", "SFO"}, res.Path)
	assert.Equal(t, int64(1400), res.Cost)

	a, err := g.Airport("ORD")
	require.NoError(t, err)
	assert.Equal(t, "O'Hare International Airport", a.Name)
}

func TestSample_Unknown(t *testing.T) {
	_, err := dataset.Sample("nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownSample)
}

func TestParse_CostsKeepOrder(t *testing.T) {
	// Both directions declared with different weights: the later one (B→A) wins.
	ds, err := dataset.Parse([]byte(`
airports: [{code: A}, {code: B}, {code: C}]
costs:
  A: {A: "-", B: 5, C: "-"}
  B: {A: 7, B: "-"}
`))
	require.NoError(t, err)
	require.Len(t, ds.Costs, 2)
	assert.Equal(t, "A", ds.Costs[0].From)
	assert.Equal(t, []string{"A", "B", "C"}, []string{ds.Costs[0].Cells[0].To, ds.Costs[0].Cells[1].To, ds.Costs[0].Cells[2].To})
	assert.True(t, ds.Costs[0].Cells[2].Weight.IsNoRoute())

	g, err := ds.Graph()
	require.NoError(t, err)
	r, err := g.Route("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.Weight)
	assert.False(t, g.HasRoute("A", "C"))

	_, err = ds.Graph(builder.WithStrictConflicts())
	assert.ErrorIs(t, err, builder.ErrConflictingRoute)
}

func TestParse_SentinelOnly(t *testing.T) {
	ds, err := dataset.Parse([]byte(`
airports: [{code: A}, {code: B}]
costs:
  A: {B: "-"}
  B: {A: "-"}
`))
	require.NoError(t, err)
	g, err := ds.Graph()
	require.NoError(t, err)
	assert.False(t, g.HasRoute("A", "B"))
}

func TestParse_JSON(t *testing.T) {
	ds, err := dataset.Parse([]byte(`{
  "name": "tiny",
  "airports": [{"code": "A", "lat": 1.5, "lon": 2.5}, {"code": "B", "lat": 1, "lon": 2}],
  "routes": [{"from": "A", "to": "B", "weight": 9}]
}`))
	require.NoError(t, err)
	assert.Equal(t, dataset.SourceRoutes, ds.Source())
	require.True(t, ds.Airports[0].Located())
	assert.Equal(t, 1.5, *ds.Airports[0].Lat)

	ix, err := ds.Index()
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())
}

func TestParse_NoSource(t *testing.T) {
	ds, err := dataset.Parse([]byte(`airports: [{code: A}, {code: B}]`))
	require.NoError(t, err)
	assert.Equal(t, dataset.SourceNone, ds.Source())

	g, err := ds.Graph()
	require.NoError(t, err)
	assert.Zero(t, g.RouteCount())
	assert.Equal(t, 2, g.AirportCount())

	_, err = ds.Index()
	assert.ErrorIs(t, err, dataset.ErrMissingCoordinates)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"syntax", `airports: [`, dataset.ErrBadDataset},
		{"unknown key", "airports: [{code: A}]\nedges: []", dataset.ErrBadDataset},
		{"no airports", `name: x`, dataset.ErrBadDataset},
		{"empty code", `airports: [{name: x}]`, dataset.ErrBadDataset},
		{"half coordinate", `airports: [{code: A, lat: 1}]`, dataset.ErrBadDataset},
		{"bad distances", "airports: [{code: A}]\ndistances: manhattan", dataset.ErrBadDataset},
		{"great-circle without coords", "airports: [{code: A}]\ndistances: great-circle", dataset.ErrMissingCoordinates},
		{"bad cost cell", "airports: [{code: A}, {code: B}]\ncosts: {A: {B: x}}", builder.ErrBadWeight},
		{"null cost cell", "airports: [{code: A}, {code: B}]\ncosts: {A: {B: ~}}", dataset.ErrBadDataset},
		{"costs not mapping", "airports: [{code: A}]\ncosts: [1]", dataset.ErrBadDataset},
		{"matrix not square", "airports: [{code: A}, {code: B}]\nmatrix: [[0, 1]]", builder.ErrBadMatrix},
		{
			"two sources",
			"airports: [{code: A}, {code: B}]\nroutes: [{from: A, to: B, weight: 1}]\nmatrix: [[0, 1], [1, 0]]",
			dataset.ErrAmbiguousSource,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(p, []byte("airports: [{code: A}, {code: B}]\nmatrix: [[0, \"-\"], [\"-\", 0]]\n"), 0o600))

	ds, err := dataset.Load(p)
	require.NoError(t, err)
	assert.Equal(t, dataset.SourceMatrix, ds.Source())
	g, err := ds.Graph()
	require.NoError(t, err)
	assert.Zero(t, g.RouteCount())

	_, err = dataset.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
