package region

import (
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox_RejectsInvertedBounds(t *testing.T) {
	_, err := NewBox(5, 0, 4, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted box")

	_, err = NewBox(0, 10, 10, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted box")
}

func TestNewBox_AllowsDegenerateLine(t *testing.T) {
	// Equal min and max is a valid (zero-area) box, not an inversion.
	box, err := NewBox(3, 3, 3, 3)
	require.NoError(t, err)
	assert.True(t, box.ContainsPoint(Point{Coord: orb.Point{3, 3}}))
}

func TestBox_ContainsPoint_InclusiveEdges(t *testing.T) {
	box, err := NewBox(0, 0, 10, 10)
	require.NoError(t, err)

	corners := []orb.Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	for _, c := range corners {
		assert.True(t, box.ContainsPoint(Point{Coord: c}), "corner %v", c)
	}

	assert.True(t, box.ContainsPoint(Point{Coord: orb.Point{5, 10}}), "edge")
	assert.False(t, box.ContainsPoint(Point{Coord: orb.Point{10.0001, 5}}))
	assert.False(t, box.ContainsPoint(Point{Coord: orb.Point{5, -0.0001}}))
}

func TestLess_OrdersByYThenX(t *testing.T) {
	points := []Point{
		{ID: 1, Coord: orb.Point{5, 2}},
		{ID: 2, Coord: orb.Point{1, 2}},
		{ID: 3, Coord: orb.Point{0, 1}},
	}

	sort.Slice(points, func(i, j int) bool { return Less(points[i], points[j]) })

	var ids []int64
	for _, p := range points {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 2, 1}, ids)
}

func TestLess_CoincidentPointsFallBackToID(t *testing.T) {
	a := Point{ID: 7, Coord: orb.Point{1, 1}}
	b := Point{ID: 3, Coord: orb.Point{1, 1}}

	assert.True(t, Less(b, a))
	assert.False(t, Less(a, b))
}
