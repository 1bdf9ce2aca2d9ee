// Package harness runs end-to-end query scenarios for tests.
//
// A scenario is a YAML file describing a seeded point set and a JSON query
// to run against it. The harness writes the seed points as the three
// line-aligned data files, bulk-loads them into a temporary SQLite store,
// evaluates the query through the builder and evaluator, and renders the
// ordered result the way the query command does.
//
// RunWithGolden compares the rendered output against a golden file in
// testdata/golden; regenerate with go test ./internal/harness -update.
package harness
