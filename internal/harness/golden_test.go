package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_Golden(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			RunWithGolden(t, path)
		})
	}
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typo.yaml")
	writeFile(t, path, `
name: typo
point:
  - {x: 1, y: 1, category: 1, group: 1}
query: "{}"
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestLoadScenario_RequiresNameAndQuery(t *testing.T) {
	dir := t.TempDir()

	noName := filepath.Join(dir, "noname.yaml")
	writeFile(t, noName, "query: \"{}\"\n")
	_, err := LoadScenario(noName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	noQuery := filepath.Join(dir, "noquery.yaml")
	writeFile(t, noQuery, "name: noquery\n")
	_, err = LoadScenario(noQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}
