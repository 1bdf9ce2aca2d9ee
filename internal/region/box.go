package region

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Box is an axis-aligned region with inclusive bounds on all four edges.
//
// The invariant min.x <= max.x and min.y <= max.y is enforced at
// construction; an inverted box almost always indicates a caller error and
// is rejected rather than silently treated as empty.
type Box struct {
	orb.Bound
}

// NewBox constructs a Box from its corner coordinates.
func NewBox(minX, minY, maxX, maxY float64) (Box, error) {
	if minX > maxX {
		return Box{}, fmt.Errorf("inverted box: min.x %v > max.x %v", minX, maxX)
	}
	if minY > maxY {
		return Box{}, fmt.Errorf("inverted box: min.y %v > max.y %v", minY, maxY)
	}
	return Box{Bound: orb.Bound{
		Min: orb.Point{minX, minY},
		Max: orb.Point{maxX, maxY},
	}}, nil
}

// ContainsPoint reports whether p lies within the box, boundaries included.
func (b Box) ContainsPoint(p Point) bool {
	return b.Contains(p.Coord)
}
