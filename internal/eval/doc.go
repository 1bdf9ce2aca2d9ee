// Package eval evaluates predicate trees against a point source.
//
// Evaluation walks the tree recursively. Each Crop leaf becomes one range
// scan (plus one fully-contained-groups check when proper), and each
// And/Or node combines its children's result sets by point id. The store
// calls are the only blocking points; the evaluator itself is pure and
// synchronous, and introduces no failure modes beyond propagating the
// source's.
//
// Re-evaluating the same tree against an unchanged source yields an
// identical set. Finalize imposes the only ordering: ascending y, then x,
// then id.
package eval
