// Package querytree defines the predicate tree for region queries and
// builds trees from JSON query descriptions.
//
// A query is a boolean expression over labeled inspection points:
//
//   - Crop: points inside an axis-aligned box, optionally restricted by
//     category, by group membership, and by proper full-group containment
//   - And: intersection of its operands' results, by point id
//   - Or: union of its operands' results, by point id
//
// The Node interface is sealed - only types in this package implement it -
// so the evaluator can type-switch exhaustively over a closed operator set.
//
// Build performs no I/O and no evaluation. It validates the raw description
// against an embedded JSON Schema, then translates it structurally. All
// failures are reported as *MalformedQueryError with the path of the
// offending node.
package querytree
