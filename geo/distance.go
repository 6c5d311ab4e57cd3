// Package geo derives route weights and proximity queries from airport
// coordinates.
//
// DistanceMatrix turns a list of located airports into a builder.Matrix of
// great-circle distances in whole kilometres. Index answers "which airports
// are closest to this point" with an R-tree.
//
// Coordinates are WGS84 degrees. Points follow the orb convention
// [longitude, latitude].
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/katalvlaran/airgraph/builder"
)

// ErrBadCoordinate indicates a latitude outside [-90, 90] or a longitude
// outside [-180, 180], or a NaN.
var ErrBadCoordinate = errors.New("geo: coordinate out of range")

// ErrDuplicateSite indicates the same code was supplied twice.
var ErrDuplicateSite = errors.New("geo: duplicate site code")

// Site is an airport code pinned to a coordinate.
type Site struct {
	Code string
	Lat  float64
	Lon  float64
}

// Point returns the site as an orb.Point.
func (s Site) Point() orb.Point {
	return orb.Point{s.Lon, s.Lat}
}

// Validate checks the coordinate ranges.
func (s Site) Validate() error {
	if math.IsNaN(s.Lat) || math.IsNaN(s.Lon) || s.Lat < -90 || s.Lat > 90 || s.Lon < -180 || s.Lon > 180 {
		return fmt.Errorf("%w: %s at (%g, %g)", ErrBadCoordinate, s.Code, s.Lat, s.Lon)
	}

	return nil
}

// DistanceKm returns the great-circle distance between a and b rounded to
// the nearest kilometre.
func DistanceKm(a, b Site) int64 {
	return int64(math.Round(orbgeo.DistanceHaversine(a.Point(), b.Point()) / 1000))
}

// DistanceMatrix builds the complete symmetric matrix of great-circle
// distances between sites, in the given order. The diagonal is NoRoute;
// every other cell is a concrete cost, so FromMatrix yields a complete graph.
//
// Errors: ErrBadCoordinate, ErrDuplicateSite.
func DistanceMatrix(sites []Site) (builder.Matrix, error) {
	n := len(sites)
	m := builder.Matrix{
		Codes: make([]string, n),
		Cells: make([][]builder.Weight, n),
	}
	seen := make(map[string]bool, n)
	for i, s := range sites {
		if err := s.Validate(); err != nil {
			return builder.Matrix{}, err
		}
		if seen[s.Code] {
			return builder.Matrix{}, fmt.Errorf("%w: %q", ErrDuplicateSite, s.Code)
		}
		seen[s.Code] = true
		m.Codes[i] = s.Code
		m.Cells[i] = make([]builder.Weight, n)
	}

	// Fill the upper triangle and mirror it, so rounding can never break symmetry.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := builder.Cost(DistanceKm(sites[i], sites[j]))
			m.Cells[i][j] = w
			m.Cells[j][i] = w
		}
	}

	return m, nil
}
