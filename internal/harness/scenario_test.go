package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.yaml")
	writeFile(t, path, `
name: ok
description: two points, one box
points:
  - {x: 1, y: 1, category: 1, group: 1}
  - {x: 2, y: 2, category: 2, group: 1}
query: |
  {"query": {"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 10, "y": 10}}}}}
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "ok", scenario.Name)
	require.Len(t, scenario.Points, 2)
	assert.Equal(t, 2.0, scenario.Points[1].X)
	assert.Equal(t, int64(2), scenario.Points[1].Category)
}

func TestScenarioRun_EmptyResult(t *testing.T) {
	scenario := &Scenario{
		Name: "empty",
		Points: []SeedPoint{
			{X: 50, Y: 50, Category: 1, Group: 1},
		},
		Query: `{"query": {"operator_crop": {"region": {"p_min": {"x": 0, "y": 0}, "p_max": {"x": 10, "y": 10}}}}}`,
	}

	points := scenario.Run(t)
	assert.Empty(t, points)
}
