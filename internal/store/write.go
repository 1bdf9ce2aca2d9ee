package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Load bulk-populates the store from a directory of line-aligned data
// files: points.txt ("x y" per line), categories.txt (one category id per
// line) and groups.txt (one group id per line). Line i of each file
// describes point i; point ids are assigned from the line number, starting
// at 1.
//
// Any prior contents are replaced. The whole load runs in one transaction,
// so a failed load leaves the previous contents intact. Returns the number
// of points loaded.
func (s *Store) Load(ctx context.Context, dir string) (int, error) {
	coords, err := readPointsFile(filepath.Join(dir, "points.txt"))
	if err != nil {
		return 0, err
	}
	categories, err := readIntFile(filepath.Join(dir, "categories.txt"))
	if err != nil {
		return 0, err
	}
	groups, err := readIntFile(filepath.Join(dir, "groups.txt"))
	if err != nil {
		return 0, err
	}

	if len(coords) != len(categories) || len(coords) != len(groups) {
		return 0, fmt.Errorf("data files disagree on line count: %d points, %d categories, %d groups",
			len(coords), len(categories), len(groups))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &QueryError{Op: "load", Err: err}
	}
	defer tx.Rollback()

	for _, table := range []string{"inspection_point", "inspection_group"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return 0, &QueryError{Op: "load", Err: fmt.Errorf("clear %s: %w", table, err)}
		}
	}

	insertPoint, err := tx.PrepareContext(ctx,
		"INSERT INTO inspection_point (id, group_id, coord_x, coord_y, category) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, &QueryError{Op: "load", Err: err}
	}
	defer insertPoint.Close()

	insertGroup, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO inspection_group (id) VALUES (?)")
	if err != nil {
		return 0, &QueryError{Op: "load", Err: err}
	}
	defer insertGroup.Close()

	for i, coord := range coords {
		id := int64(i + 1)
		if _, err := insertPoint.ExecContext(ctx, id, groups[i], coord.X(), coord.Y(), categories[i]); err != nil {
			return 0, &QueryError{Op: "load", Err: fmt.Errorf("insert point %d: %w", id, err)}
		}
		if _, err := insertGroup.ExecContext(ctx, groups[i]); err != nil {
			return 0, &QueryError{Op: "load", Err: fmt.Errorf("insert group %d: %w", groups[i], err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &QueryError{Op: "load", Err: err}
	}

	return len(coords), nil
}

// readPointsFile reads "x y" coordinate pairs, one per line. Blank lines
// are skipped so the three data files stay line-aligned on their non-empty
// lines.
func readPointsFile(path string) ([]orb.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var points []orb.Point
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected \"x y\", got %q", path, line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parse x: %w", path, line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parse y: %w", path, line, err)
		}
		points = append(points, orb.Point{x, y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return points, nil
}

// readIntFile reads one integer per line, skipping blank lines.
func readIntFile(path string) ([]int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var values []int64
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parse value: %w", path, line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return values, nil
}
