package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/inspectlab/regionq/internal/region"
)

// RenderPoints formats an ordered result sequence as output text: one
// "<x> <y>" line per point, newline-terminated, no trailing metadata.
// Floats use the shortest representation that round-trips.
func RenderPoints(points []region.Point) []byte {
	var buf bytes.Buffer
	for _, p := range points {
		buf.WriteString(strconv.FormatFloat(p.X(), 'g', -1, 64))
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(p.Y(), 'g', -1, 64))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// writeOutput writes the result file all-or-nothing: the rendered output
// lands in a temp file in the target directory and is renamed into place,
// so a failed query never leaves a partially written artifact.
func writeOutput(path string, points []region.Point) error {
	data := RenderPoints(points)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".regionq-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
