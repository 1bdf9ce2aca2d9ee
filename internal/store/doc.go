// Package store provides the SQLite-backed system of record for inspection
// points and groups.
//
// The store answers the primitive queries a region query needs:
//
//   - RangeScan: inclusive-bounds box filter with optional category and
//     group-membership restrictions
//   - FullyContainedGroups: group ids whose every member point lies within
//     a box
//   - PointsByGroup: the full membership of one group
//
// Combining primitive results into query answers is the evaluator's
// business; the store never interprets predicate trees.
//
// All SQL is built with squirrel and parameterized - values are never
// interpolated into query text. Scans order by id so identical inputs
// produce identical row sequences.
//
// Load performs the initial bulk population from the three line-aligned
// data files (points.txt, categories.txt, groups.txt); line i of each file
// describes point i.
package store
