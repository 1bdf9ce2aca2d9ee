package region

import "github.com/paulmach/orb"

// Point is a labeled 2D inspection point.
//
// Identity is ID: two points with the same id are the same point, and id
// determines all other attributes. Coord and Category are attributes, not
// identity. Points are read-only values for the duration of a query.
type Point struct {
	ID       int64
	GroupID  int64
	Coord    orb.Point
	Category int64
}

// X returns the point's x coordinate.
func (p Point) X() float64 { return p.Coord.X() }

// Y returns the point's y coordinate.
func (p Point) Y() float64 { return p.Coord.Y() }

// Less orders points ascending by y, ties broken by ascending x.
//
// Coincident points with different ids fall back to ascending id so the
// order stays deterministic for a fixed input set.
func Less(a, b Point) bool {
	if a.Y() != b.Y() {
		return a.Y() < b.Y()
	}
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.ID < b.ID
}
