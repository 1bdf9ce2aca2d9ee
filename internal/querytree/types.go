package querytree

import "github.com/inspectlab/regionq/internal/region"

// Node is a node of a parsed query expression tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the evaluator.
type Node interface {
	queryNode() // Marker method - seals interface to this package
}

// Crop is a leaf predicate selecting points within an axis-aligned box.
type Crop struct {
	// Box bounds the selection; all four edges are inclusive.
	Box region.Box

	// Category restricts matches to a single category when non-nil.
	// nil means no category restriction; there is no sentinel value.
	Category *int64

	// OneOfGroups restricts matches to points whose group id appears in
	// the slice. Empty means no group restriction.
	OneOfGroups []int64

	// Proper additionally requires the entire group of a matching point -
	// every member, not just the ones matching the box - to lie within
	// Box. Groups failing the check contribute no points at all.
	Proper bool
}

func (Crop) queryNode() {}

// And intersects its operands' results by point id.
//
// Operand order is the insertion order of the source description. It has no
// semantic effect (intersection is commutative) but is preserved for
// diagnostics.
type And struct {
	Operands []Node
}

func (And) queryNode() {}

// Or unions its operands' results by point id. A point matched by several
// operands contributes exactly one copy.
type Or struct {
	Operands []Node
}

func (Or) queryNode() {}
