package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// NoRouteMarker is the textual spelling of NoRoute in tables and data files.
const NoRouteMarker = "-"

// Weight is a tagged cost-table cell: either a concrete integer cost or the
// explicit "no direct route" marker. The zero value is NoRoute, so an
// uninitialised cell can never be mistaken for a free route.
type Weight struct {
	value int64
	set   bool
}

// NoRoute marks the absence of a direct route. It never becomes an edge.
var NoRoute = Weight{}

// Cost returns a Weight carrying the concrete cost n.
// Negative costs are representable here and rejected when the graph is built.
func Cost(n int64) Weight {
	return Weight{value: n, set: true}
}

// Value returns the cost and true, or 0 and false for NoRoute.
func (w Weight) Value() (int64, bool) {
	return w.value, w.set
}

// IsNoRoute reports whether w is the "no route" marker.
func (w Weight) IsNoRoute() bool {
	return !w.set
}

// String renders the cost in decimal, or NoRouteMarker.
func (w Weight) String() string {
	if !w.set {
		return NoRouteMarker
	}

	return strconv.FormatInt(w.value, 10)
}

// ParseWeight converts a textual cell into a Weight.
// NoRouteMarker (surrounding spaces ignored) yields NoRoute; any base-10
// integer yields Cost. Everything else is ErrBadWeight.
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	if s == NoRouteMarker {
		return NoRoute, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NoRoute, fmt.Errorf("%w: %q", ErrBadWeight, s)
	}

	return Cost(n), nil
}
