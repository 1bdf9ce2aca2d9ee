package querytree

import (
	"encoding/json"
	"fmt"

	"github.com/inspectlab/regionq/internal/region"
)

// Operator keys recognized in query descriptions.
const (
	keyCrop = "operator_crop"
	keyAnd  = "operator_and"
	keyOr   = "operator_or"
)

// Build translates a raw JSON query description into a predicate tree.
//
// The description has the shape {"query": <operator-node>} where each
// operator node carries exactly one of the operator_crop / operator_and /
// operator_or keys. Build validates structure only; it performs no I/O and
// no evaluation. All failures are *MalformedQueryError.
func Build(raw []byte) (Node, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc struct {
		Query json.RawMessage `json:"query"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedQueryError{Path: "query", Message: fmt.Sprintf("decode: %v", err)}
	}
	if len(doc.Query) == 0 {
		return nil, &MalformedQueryError{Path: "query", Message: "missing query object"}
	}

	return buildNode(doc.Query, "query")
}

// buildNode dispatches on the single operator key of a node.
func buildNode(raw json.RawMessage, path string) (Node, error) {
	var node map[string]json.RawMessage
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, &MalformedQueryError{Path: path, Message: fmt.Sprintf("decode operator node: %v", err)}
	}

	switch {
	case node[keyCrop] != nil:
		return buildCrop(node[keyCrop], path+"."+keyCrop)
	case node[keyAnd] != nil:
		operands, err := buildOperands(node[keyAnd], path+"."+keyAnd)
		if err != nil {
			return nil, err
		}
		return And{Operands: operands}, nil
	case node[keyOr] != nil:
		operands, err := buildOperands(node[keyOr], path+"."+keyOr)
		if err != nil {
			return nil, err
		}
		return Or{Operands: operands}, nil
	default:
		return nil, &MalformedQueryError{Path: path, Message: "no recognized operator key"}
	}
}

type cropDesc struct {
	Region *struct {
		PMin *coordDesc `json:"p_min"`
		PMax *coordDesc `json:"p_max"`
	} `json:"region"`
	Category    *int64  `json:"category"`
	OneOfGroups []int64 `json:"one_of_groups"`
	Proper      bool    `json:"proper"`
}

type coordDesc struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func buildCrop(raw json.RawMessage, path string) (Node, error) {
	var desc cropDesc
	if err := json.Unmarshal(raw, &desc); err != nil {
		return nil, &MalformedQueryError{Path: path, Message: fmt.Sprintf("decode crop: %v", err)}
	}
	if desc.Region == nil || desc.Region.PMin == nil || desc.Region.PMax == nil {
		return nil, &MalformedQueryError{Path: path, Message: "crop requires region.p_min and region.p_max"}
	}
	pmin, pmax := desc.Region.PMin, desc.Region.PMax
	if pmin.X == nil || pmin.Y == nil || pmax.X == nil || pmax.Y == nil {
		return nil, &MalformedQueryError{Path: path, Message: "region corners require numeric x and y"}
	}

	box, err := region.NewBox(*pmin.X, *pmin.Y, *pmax.X, *pmax.Y)
	if err != nil {
		return nil, &MalformedQueryError{Path: path + ".region", Message: err.Error()}
	}

	return Crop{
		Box:         box,
		Category:    desc.Category,
		OneOfGroups: desc.OneOfGroups,
		Proper:      desc.Proper,
	}, nil
}

// buildOperands builds the child list of an And/Or node, preserving the
// order of the source description.
func buildOperands(raw json.RawMessage, path string) ([]Node, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &MalformedQueryError{Path: path, Message: fmt.Sprintf("operand list: %v", err)}
	}
	if len(items) == 0 {
		return nil, &MalformedQueryError{Path: path, Message: "operand list must not be empty"}
	}

	operands := make([]Node, 0, len(items))
	for i, item := range items {
		child, err := buildNode(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		operands = append(operands, child)
	}
	return operands, nil
}
