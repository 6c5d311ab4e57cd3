package geo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// ErrEmptyIndex is returned by Nearest when the index holds no sites.
var ErrEmptyIndex = errors.New("geo: index is empty")

// rtree fan-out: 2D, min 25, max 50 entries per node.
const (
	treeDim      = 2
	treeMinChild = 25
	treeMaxChild = 50
)

// pointTol is the side length of the degenerate rectangle stored per site.
const pointTol = 1e-9

// siteEntry wraps a Site for R-tree storage.
type siteEntry struct {
	site Site
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *siteEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Neighbor is one Nearest result.
type Neighbor struct {
	Site       Site
	DistanceKm int64
}

// Index answers nearest-airport queries over a fixed set of sites.
// It is read-only after NewIndex and safe for concurrent Nearest calls.
type Index struct {
	tree  *rtreego.Rtree
	sites []Site
}

// NewIndex builds an Index over sites.
//
// Errors: ErrBadCoordinate, ErrDuplicateSite.
func NewIndex(sites []Site) (*Index, error) {
	tree := rtreego.NewTree(treeDim, treeMinChild, treeMaxChild)
	seen := make(map[string]bool, len(sites))
	for _, s := range sites {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if seen[s.Code] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSite, s.Code)
		}
		seen[s.Code] = true
		tree.Insert(&siteEntry{site: s, bbox: rtreego.Point{s.Lon, s.Lat}.ToRect(pointTol)})
	}

	return &Index{tree: tree, sites: append([]Site(nil), sites...)}, nil
}

// Len returns the number of indexed sites.
func (ix *Index) Len() int { return len(ix.sites) }

// Nearest returns up to k sites closest to (lat, lon), nearest first, ties
// broken by code.
//
// The R-tree ranks by planar degree distance, which is close to but not the
// same as great-circle order, so it over-fetches candidates and the final
// order is by great-circle distance.
//
// Errors: ErrEmptyIndex, ErrBadCoordinate.
func (ix *Index) Nearest(lat, lon float64, k int) ([]Neighbor, error) {
	q := Site{Code: "?", Lat: lat, Lon: lon}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if len(ix.sites) == 0 {
		return nil, ErrEmptyIndex
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}

	fetch := k * 4
	if fetch < 8 {
		fetch = 8
	}
	if fetch > len(ix.sites) {
		fetch = len(ix.sites)
	}

	candidates := ix.tree.NearestNeighbors(fetch, rtreego.Point{lon, lat})
	out := make([]Neighbor, 0, len(candidates))
	for _, c := range candidates {
		e, ok := c.(*siteEntry)
		if !ok || e == nil {
			continue
		}
		out = append(out, Neighbor{Site: e.site, DistanceKm: DistanceKm(q, e.site)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].Site.Code < out[j].Site.Code
	})
	if len(out) > k {
		out = out[:k]
	}

	return out, nil
}
