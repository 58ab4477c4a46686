package plan

import "toydb/internal/dtype"

// ProjectionNode resolves a requested column-name list against its child's
// table at construction time, then projects each pulled row by those
// indices, preserving requested order.
type ProjectionNode struct {
	child   Node
	table   *dtype.Table
	indices []int
}

// NewProjection resolves cols against child's schema, failing with
// ErrUnknownColumn if any name is missing.
func NewProjection(child Node, cols []string) (*ProjectionNode, error) {
	childSchema := child.Table().Schema
	indices := make([]int, len(cols))
	outSchema := make(dtype.Schema, len(cols))
	for i, name := range cols {
		idx, err := childSchema.MustIndexOf(name)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
		outSchema[i] = childSchema[idx]
	}
	return &ProjectionNode{
		child:   child,
		table:   &dtype.Table{Schema: outSchema},
		indices: indices,
	}, nil
}

func (n *ProjectionNode) Table() *dtype.Table { return n.table }

func (n *ProjectionNode) Next() (dtype.Row, error) {
	row, err := n.child.Next()
	if err != nil {
		return nil, err
	}
	out := make(dtype.Row, len(n.indices))
	for i, idx := range n.indices {
		out[i] = row[idx]
	}
	return out, nil
}
