package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/paulmach/orb"

	"github.com/inspectlab/regionq/internal/region"
)

// builder is the statement builder for all store SQL. SQLite uses ?
// placeholders; values are always parameterized, never interpolated.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const pointTable = "inspection_point"

var pointColumns = []string{"id", "group_id", "coord_x", "coord_y", "category"}

// RangeScan returns the points whose coordinates lie within box (bounds
// inclusive on both ends), whose category equals *category when category is
// non-nil, and whose group id is in groupIDs when groupIDs is non-empty.
//
// Rows are scanned in ascending id order so an unchanged store yields an
// identical sequence for identical arguments.
func (s *Store) RangeScan(ctx context.Context, box region.Box, category *int64, groupIDs []int64) ([]region.Point, error) {
	q := builder.
		Select(pointColumns...).
		From(pointTable).
		Where(sq.GtOrEq{"coord_x": box.Min.X()}).
		Where(sq.LtOrEq{"coord_x": box.Max.X()}).
		Where(sq.GtOrEq{"coord_y": box.Min.Y()}).
		Where(sq.LtOrEq{"coord_y": box.Max.Y()})

	if category != nil {
		q = q.Where(sq.Eq{"category": *category})
	}
	if len(groupIDs) > 0 {
		q = q.Where(sq.Eq{"group_id": groupIDs})
	}

	return s.queryPoints(ctx, "range scan", q)
}

// FullyContainedGroups returns the ids of groups whose every member point
// lies within box. The check runs over full group membership regardless of
// any category or group filters a caller applies to its own scans.
func (s *Store) FullyContainedGroups(ctx context.Context, box region.Box) (map[int64]struct{}, error) {
	q := builder.
		Select("group_id").
		From(pointTable).
		GroupBy("group_id").
		Having(sq.GtOrEq{"MIN(coord_x)": box.Min.X()}).
		Having(sq.LtOrEq{"MAX(coord_x)": box.Max.X()}).
		Having(sq.GtOrEq{"MIN(coord_y)": box.Min.Y()}).
		Having(sq.LtOrEq{"MAX(coord_y)": box.Max.Y()}).
		OrderBy("group_id ASC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, &QueryError{Op: "contained groups", Err: err}
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, &QueryError{Op: "contained groups", Err: err}
	}
	defer rows.Close()

	groups := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &QueryError{Op: "contained groups", Err: err}
		}
		groups[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "contained groups", Err: err}
	}

	return groups, nil
}

// PointsByGroup returns every point belonging to the given group.
func (s *Store) PointsByGroup(ctx context.Context, groupID int64) ([]region.Point, error) {
	q := builder.
		Select(pointColumns...).
		From(pointTable).
		Where(sq.Eq{"group_id": groupID})

	return s.queryPoints(ctx, "points by group", q)
}

func (s *Store) queryPoints(ctx context.Context, op string, q sq.SelectBuilder) ([]region.Point, error) {
	sqlStr, args, err := q.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	return points, nil
}

func scanPoints(rows *sql.Rows) ([]region.Point, error) {
	var points []region.Point
	for rows.Next() {
		var p region.Point
		var x, y float64
		if err := rows.Scan(&p.ID, &p.GroupID, &x, &y, &p.Category); err != nil {
			return nil, err
		}
		p.Coord = orb.Point{x, y}
		points = append(points, p)
	}
	return points, rows.Err()
}
