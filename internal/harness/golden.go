package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/inspectlab/regionq/internal/cli"
)

// RunWithGolden executes a scenario and compares the rendered output
// against testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenarioPath string) {
	t.Helper()

	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	points := scenario.Run(t)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, cli.RenderPoints(points))
}
