// Package dataset loads airport networks from YAML (or JSON) files and
// ships a handful of embedded sample networks.
//
// A dataset lists airports and at most one weight source:
//
//	airports:                  # required; lat/lon optional but paired
//	  - {code: AUS, name: Austin, lat: 30.19, lon: -97.67}
//	routes:                    # explicit (from, to, weight) list
//	  - {from: AUS, to: DFW, weight: 300}
//	costs:                     # nested table, "-" = no direct route
//	  AUS: {DFW: 150, ORD: "-"}
//	matrix:                    # square rows in airport order
//	  - [0, 320]
//	distances: great-circle    # derive a complete graph from coordinates
//
// Declaration order is preserved everywhere, including inside the costs
// mapping, so the builder's last-write-wins policy stays reproducible.
// Unknown keys are rejected.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/geo"
)

// Sentinel errors for dataset parsing.
var (
	// ErrBadDataset indicates malformed or inconsistent dataset content.
	ErrBadDataset = errors.New("dataset: malformed dataset")

	// ErrAmbiguousSource indicates more than one weight source was declared.
	ErrAmbiguousSource = errors.New("dataset: more than one weight source")

	// ErrMissingCoordinates indicates coordinates are required but absent.
	ErrMissingCoordinates = errors.New("dataset: airport has no coordinates")
)

// DistancesGreatCircle is the only supported value of the distances key.
const DistancesGreatCircle = "great-circle"

// Source names which weight source a dataset uses.
type Source string

// Weight sources, in the order Parse checks them.
const (
	SourceNone        Source = "none"
	SourceRoutes      Source = "routes"
	SourceCosts       Source = "costs"
	SourceMatrix      Source = "matrix"
	SourceGreatCircle Source = "great-circle"
)

// Airport is one airport entry. Lat and Lon are either both set or both nil.
type Airport struct {
	Code string   `yaml:"code"`
	Name string   `yaml:"name"`
	Lat  *float64 `yaml:"lat,omitempty"`
	Lon  *float64 `yaml:"lon,omitempty"`
}

// Located reports whether the airport carries coordinates.
func (a Airport) Located() bool { return a.Lat != nil && a.Lon != nil }

// Route is one entry of the routes list.
type Route struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Dataset is a parsed network description.
type Dataset struct {
	Name        string
	Description string
	Airports    []Airport
	Routes      []builder.RouteSpec
	Costs       builder.CostTable
	Matrix      *builder.Matrix
	Distances   string
}

// document mirrors the file layout; costs and matrix are decoded by hand to
// keep mapping order and to read "-" cells.
type document struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Airports    []Airport `yaml:"airports"`
	Routes      []Route   `yaml:"routes"`
	Costs       yaml.Node `yaml:"costs"`
	Matrix      yaml.Node `yaml:"matrix"`
	Distances   string    `yaml:"distances"`
}

// Load reads and parses the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Parse decodes a dataset from YAML or JSON bytes and validates it.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDataset, err)
	}

	ds := &Dataset{
		Name:        doc.Name,
		Description: doc.Description,
		Airports:    doc.Airports,
		Distances:   doc.Distances,
	}
	for _, r := range doc.Routes {
		ds.Routes = append(ds.Routes, builder.RouteSpec{From: r.From, To: r.To, Weight: r.Weight})
	}

	var err error
	if ds.Costs, err = decodeCosts(&doc.Costs); err != nil {
		return nil, err
	}
	if ds.Matrix, err = decodeMatrix(&doc.Matrix, ds.Airports); err != nil {
		return nil, err
	}
	if err = ds.Validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

// Validate checks airport entries and that at most one weight source is set.
func (ds *Dataset) Validate() error {
	if len(ds.Airports) == 0 {
		return fmt.Errorf("%w: no airports", ErrBadDataset)
	}
	for i, a := range ds.Airports {
		if a.Code == "" {
			return fmt.Errorf("%w: airport #%d: %v", ErrBadDataset, i, core.ErrEmptyCode)
		}
		if (a.Lat == nil) != (a.Lon == nil) {
			return fmt.Errorf("%w: airport %s: lat and lon must be given together", ErrBadDataset, a.Code)
		}
	}
	if ds.Distances != "" && ds.Distances != DistancesGreatCircle {
		return fmt.Errorf("%w: distances %q (want %q)", ErrBadDataset, ds.Distances, DistancesGreatCircle)
	}

	n := 0
	for _, set := range []bool{len(ds.Routes) > 0, len(ds.Costs) > 0, ds.Matrix != nil, ds.Distances != ""} {
		if set {
			n++
		}
	}
	if n > 1 {
		return ErrAmbiguousSource
	}
	if ds.Distances == DistancesGreatCircle {
		_, err := ds.Sites()
		return err
	}

	return nil
}

// Source reports which weight source the dataset declares.
func (ds *Dataset) Source() Source {
	switch {
	case len(ds.Routes) > 0:
		return SourceRoutes
	case len(ds.Costs) > 0:
		return SourceCosts
	case ds.Matrix != nil:
		return SourceMatrix
	case ds.Distances == DistancesGreatCircle:
		return SourceGreatCircle
	default:
		return SourceNone
	}
}

// CoreAirports returns the airport list as core.Airport values.
func (ds *Dataset) CoreAirports() []core.Airport {
	out := make([]core.Airport, len(ds.Airports))
	for i, a := range ds.Airports {
		out[i] = core.Airport{Code: a.Code, Name: a.Name}
	}

	return out
}

// Sites returns every airport as a geo.Site.
// Returns ErrMissingCoordinates if any airport lacks coordinates.
func (ds *Dataset) Sites() ([]geo.Site, error) {
	out := make([]geo.Site, 0, len(ds.Airports))
	for _, a := range ds.Airports {
		if !a.Located() {
			return nil, fmt.Errorf("%w: %s", ErrMissingCoordinates, a.Code)
		}
		out = append(out, geo.Site{Code: a.Code, Lat: *a.Lat, Lon: *a.Lon})
	}

	return out, nil
}

// Index builds a nearest-airport index over the dataset's coordinates.
func (ds *Dataset) Index() (*geo.Index, error) {
	sites, err := ds.Sites()
	if err != nil {
		return nil, err
	}

	return geo.NewIndex(sites)
}

// Graph builds the frozen route graph with the builder matching Source.
// A dataset without a weight source yields a graph of isolated airports.
func (ds *Dataset) Graph(opts ...builder.Option) (*core.Graph, error) {
	airports := ds.CoreAirports()
	switch ds.Source() {
	case SourceRoutes:
		return builder.FromRouteList(airports, ds.Routes, opts...)
	case SourceCosts:
		return builder.FromCostTable(airports, ds.Costs, opts...)
	case SourceMatrix:
		return builder.FromMatrix(airports, *ds.Matrix, opts...)
	case SourceGreatCircle:
		sites, err := ds.Sites()
		if err != nil {
			return nil, err
		}
		m, err := geo.DistanceMatrix(sites)
		if err != nil {
			return nil, err
		}
		return builder.FromMatrix(airports, m, opts...)
	default:
		return builder.FromRouteList(airports, nil, opts...)
	}
}
