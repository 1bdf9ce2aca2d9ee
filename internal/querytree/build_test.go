package querytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_CropWithAllOptions(t *testing.T) {
	raw := []byte(`{
		"query": {
			"operator_crop": {
				"region": {"p_min": {"x": 1, "y": 2}, "p_max": {"x": 3, "y": 4}},
				"category": 7,
				"one_of_groups": [10, 20],
				"proper": true
			}
		}
	}`)

	node, err := Build(raw)
	require.NoError(t, err)

	crop, ok := node.(Crop)
	require.True(t, ok, "expected Crop, got %T", node)

	assert.Equal(t, 1.0, crop.Box.Min.X())
	assert.Equal(t, 2.0, crop.Box.Min.Y())
	assert.Equal(t, 3.0, crop.Box.Max.X())
	assert.Equal(t, 4.0, crop.Box.Max.Y())
	require.NotNil(t, crop.Category)
	assert.Equal(t, int64(7), *crop.Category)
	assert.Equal(t, []int64{10, 20}, crop.OneOfGroups)
	assert.True(t, crop.Proper)
}

func TestBuild_CropDefaults(t *testing.T) {
	raw := []byte(`{
		"query": {
			"operator_crop": {
				"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 1, "y": 1}}
			}
		}
	}`)

	node, err := Build(raw)
	require.NoError(t, err)

	crop, ok := node.(Crop)
	require.True(t, ok)

	// Absent optionals mean "no restriction"; there is no sentinel.
	assert.Nil(t, crop.Category)
	assert.Empty(t, crop.OneOfGroups)
	assert.False(t, crop.Proper)
}

func TestBuild_NegativeCategoryIsARealCategory(t *testing.T) {
	raw := []byte(`{
		"query": {
			"operator_crop": {
				"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 1, "y": 1}},
				"category": -1
			}
		}
	}`)

	node, err := Build(raw)
	require.NoError(t, err)

	crop := node.(Crop)
	require.NotNil(t, crop.Category)
	assert.Equal(t, int64(-1), *crop.Category)
}

func TestBuild_NestedAndOrPreservesOperandOrder(t *testing.T) {
	raw := []byte(`{
		"query": {
			"operator_and": [
				{"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 10, "y": 10}}}},
				{"operator_or": [
					{"operator_crop": {"region": {"p_min": {"x": 1, "y": 1}, "p_max": {"x": 2, "y": 2}}}},
					{"operator_crop": {"region": {"p_min": {"x": 3, "y": 3}, "p_max": {"x": 4, "y": 4}}}}
				]}
			]
		}
	}`)

	node, err := Build(raw)
	require.NoError(t, err)

	and, ok := node.(And)
	require.True(t, ok, "expected And, got %T", node)
	require.Len(t, and.Operands, 2)

	first, ok := and.Operands[0].(Crop)
	require.True(t, ok)
	assert.Equal(t, 10.0, first.Box.Max.X())

	or, ok := and.Operands[1].(Or)
	require.True(t, ok, "expected Or, got %T", and.Operands[1])
	require.Len(t, or.Operands, 2)

	left := or.Operands[0].(Crop)
	right := or.Operands[1].(Crop)
	assert.Equal(t, 1.0, left.Box.Min.X())
	assert.Equal(t, 3.0, right.Box.Min.X())
}

func TestBuild_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "not JSON",
			raw:  `{"query": `,
		},
		{
			name: "missing query key",
			raw:  `{"other": {}}`,
		},
		{
			name: "no recognized operator",
			raw:  `{"query": {"operator_shrink": {}}}`,
		},
		{
			name: "two operators on one node",
			raw: `{"query": {
				"operator_and": [{"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 1, "y": 1}}}}],
				"operator_or":  [{"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 1, "y": 1}}}}]
			}}`,
		},
		{
			name: "crop missing region",
			raw:  `{"query": {"operator_crop": {"category": 1}}}`,
		},
		{
			name: "crop missing p_max",
			raw:  `{"query": {"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}}}}}`,
		},
		{
			name: "non-numeric bound",
			raw:  `{"query": {"operator_crop": {"region": {"p_min": {"x": "zero", "y": 0}, "p_max": {"x": 1, "y": 1}}}}}`,
		},
		{
			name: "corner missing y",
			raw:  `{"query": {"operator_crop": {"region": {"p_min": {"x": 0}, "p_max": {"x": 1, "y": 1}}}}}`,
		},
		{
			name: "inverted box x",
			raw:  `{"query": {"operator_crop": {"region": {"p_min": {"x": 5, "y": 0}, "p_max": {"x": 4, "y": 1}}}}}`,
		},
		{
			name: "inverted box y",
			raw:  `{"query": {"operator_crop": {"region": {"p_min": {"x": 0, "y": 5}, "p_max": {"x": 1, "y": 4}}}}}`,
		},
		{
			name: "and with empty operand list",
			raw:  `{"query": {"operator_and": []}}`,
		},
		{
			name: "or with missing operand list",
			raw:  `{"query": {"operator_or": null}}`,
		},
		{
			name: "operand is not an operator node",
			raw:  `{"query": {"operator_and": [42]}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Build([]byte(tc.raw))
			require.Error(t, err)
			assert.Nil(t, node)
			assert.True(t, IsMalformed(err), "expected MalformedQueryError, got %T: %v", err, err)
		})
	}
}

func TestBuild_SingleOperandIsValid(t *testing.T) {
	raw := []byte(`{
		"query": {
			"operator_and": [
				{"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 1, "y": 1}}}}
			]
		}
	}`)

	node, err := Build(raw)
	require.NoError(t, err)

	and, ok := node.(And)
	require.True(t, ok)
	assert.Len(t, and.Operands, 1)
}
