package eval

import (
	"context"
	"fmt"

	"github.com/inspectlab/regionq/internal/querytree"
	"github.com/inspectlab/regionq/internal/region"
)

// PointSource is the subset of store primitives evaluation needs. The
// SQLite store satisfies it; tests substitute an in-memory source.
type PointSource interface {
	// RangeScan returns the points inside box (inclusive bounds) matching
	// the optional category and group-membership restrictions.
	RangeScan(ctx context.Context, box region.Box, category *int64, groupIDs []int64) ([]region.Point, error)

	// FullyContainedGroups returns the ids of groups whose every member
	// lies within box.
	FullyContainedGroups(ctx context.Context, box region.Box) (map[int64]struct{}, error)
}

// Evaluator walks a predicate tree against a point source. It holds no
// state across queries; each Evaluate call owns its result sets
// exclusively.
type Evaluator struct {
	src PointSource
}

// New creates an Evaluator backed by the given point source.
func New(src PointSource) *Evaluator {
	return &Evaluator{src: src}
}

// Evaluate computes the result set of a predicate tree.
//
// Source errors propagate unchanged and abort the whole query; no partial
// result set is ever returned alongside an error.
func (e *Evaluator) Evaluate(ctx context.Context, node querytree.Node) (ResultSet, error) {
	switch n := node.(type) {
	case querytree.Crop:
		return e.evalCrop(ctx, n)
	case *querytree.Crop:
		return e.evalCrop(ctx, *n)
	case querytree.And:
		return e.evalAnd(ctx, n)
	case *querytree.And:
		return e.evalAnd(ctx, *n)
	case querytree.Or:
		return e.evalOr(ctx, n)
	case *querytree.Or:
		return e.evalOr(ctx, *n)
	default:
		return nil, fmt.Errorf("unsupported node type: %T", node)
	}
}

// evalCrop delegates to the range-scan primitive. When the crop is proper,
// every candidate group must be fully contained in the box: the containment
// check runs over the group's entire membership, while category and group
// filters only affect which points are returned. A group with even one
// member outside the box contributes nothing.
func (e *Evaluator) evalCrop(ctx context.Context, n querytree.Crop) (ResultSet, error) {
	points, err := e.src.RangeScan(ctx, n.Box, n.Category, n.OneOfGroups)
	if err != nil {
		return nil, err
	}

	if !n.Proper {
		return NewResultSet(points), nil
	}

	contained, err := e.src.FullyContainedGroups(ctx, n.Box)
	if err != nil {
		return nil, err
	}

	set := make(ResultSet)
	for _, p := range points {
		if _, ok := contained[p.GroupID]; ok {
			set[p.ID] = p
		}
	}
	return set, nil
}

// evalAnd intersects the operands' results by point id. Operand order does
// not affect the outcome; an empty operand list is rejected at build time.
func (e *Evaluator) evalAnd(ctx context.Context, n querytree.And) (ResultSet, error) {
	var acc ResultSet
	for i, op := range n.Operands {
		cur, err := e.Evaluate(ctx, op)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			acc = cur
			continue
		}
		acc = acc.Intersect(cur)
	}
	return acc, nil
}

// evalOr unions the operands' results by point id; a point matched by
// several operands contributes exactly one entry.
func (e *Evaluator) evalOr(ctx context.Context, n querytree.Or) (ResultSet, error) {
	acc := make(ResultSet)
	for _, op := range n.Operands {
		cur, err := e.Evaluate(ctx, op)
		if err != nil {
			return nil, err
		}
		acc.Merge(cur)
	}
	return acc, nil
}
