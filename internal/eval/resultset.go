package eval

import (
	"sort"

	"github.com/inspectlab/regionq/internal/region"
)

// ResultSet is a set of points unique by id. Intermediate evaluator
// output; it never holds two entries for one id, so union and intersection
// reduce to map operations on the keys.
type ResultSet map[int64]region.Point

// NewResultSet builds a set from a slice of points, deduplicating by id.
func NewResultSet(points []region.Point) ResultSet {
	set := make(ResultSet, len(points))
	for _, p := range points {
		set[p.ID] = p
	}
	return set
}

// Intersect returns the points present in both sets, by id.
func (s ResultSet) Intersect(other ResultSet) ResultSet {
	// Iterate the smaller side.
	if len(other) < len(s) {
		s, other = other, s
	}
	out := make(ResultSet)
	for id, p := range s {
		if _, ok := other[id]; ok {
			out[id] = p
		}
	}
	return out
}

// Merge adds every point of other into s. A point present in both sets
// contributes one entry; id determines all attributes, so the copies agree.
func (s ResultSet) Merge(other ResultSet) {
	for id, p := range other {
		s[id] = p
	}
}

// Finalize converts a result set to the ordered output sequence: ascending
// y, ties broken by ascending x, residual ties by ascending id. No further
// dedup is needed - the set already guarantees uniqueness by id.
func Finalize(s ResultSet) []region.Point {
	points := make([]region.Point, 0, len(s))
	for _, p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return region.Less(points[i], points[j])
	})
	return points
}
