package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/inspectlab/regionq/internal/eval"
	"github.com/inspectlab/regionq/internal/querytree"
	"github.com/inspectlab/regionq/internal/region"
	"github.com/inspectlab/regionq/internal/store"
)

// Scenario describes a seeded point set and a query to run against it.
type Scenario struct {
	// Name identifies the scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description,omitempty"`

	// Points seeds the store. Point ids are assigned from position,
	// starting at 1, matching the bulk loader.
	Points []SeedPoint `yaml:"points"`

	// Query is the JSON query description to evaluate.
	Query string `yaml:"query"`
}

// SeedPoint is one point of a scenario's data set.
type SeedPoint struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Category int64   `yaml:"category"`
	Group    int64   `yaml:"group"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected to catch typos.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario missing required field: name")
	}
	if scenario.Query == "" {
		return nil, fmt.Errorf("scenario %q missing required field: query", scenario.Name)
	}

	return &scenario, nil
}

// Run seeds a temporary store with the scenario's points via the bulk
// loader, evaluates the query, and returns the finalized ordered result.
func (s *Scenario) Run(t *testing.T) []region.Point {
	t.Helper()

	dataDir := t.TempDir()
	writeDataFiles(t, dataDir, s.Points)

	st, err := store.Open(filepath.Join(t.TempDir(), "scenario.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := t.Context()
	if _, err := st.Load(ctx, dataDir); err != nil {
		t.Fatalf("load scenario data: %v", err)
	}

	node, err := querytree.Build([]byte(s.Query))
	if err != nil {
		t.Fatalf("build scenario query: %v", err)
	}

	set, err := eval.New(st).Evaluate(ctx, node)
	if err != nil {
		t.Fatalf("evaluate scenario query: %v", err)
	}

	return eval.Finalize(set)
}

// writeDataFiles renders seed points as the three line-aligned bulk-load
// files.
func writeDataFiles(t *testing.T, dir string, points []SeedPoint) {
	t.Helper()

	var pts, cats, groups bytes.Buffer
	for _, p := range points {
		pts.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		pts.WriteByte(' ')
		pts.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		pts.WriteByte('\n')
		fmt.Fprintf(&cats, "%d\n", p.Category)
		fmt.Fprintf(&groups, "%d\n", p.Group)
	}

	files := map[string][]byte{
		"points.txt":     pts.Bytes(),
		"categories.txt": cats.Bytes(),
		"groups.txt":     groups.Bytes(),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
