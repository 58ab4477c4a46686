package plan

import "toydb/internal/dtype"

// Filter names the columns a predicate reads, plus the predicate itself.
// Argument indices are resolved once, at SelectionNode construction, not
// per row.
type Filter struct {
	Columns   []string
	Predicate func(args []dtype.Value) bool
}

// SelectionNode pulls its child until Predicate returns true, yielding that
// row unchanged. End propagates from the child.
type SelectionNode struct {
	child   Node
	filter  Filter
	indices []int
}

// NewSelection resolves filter.Columns against child's schema, failing with
// ErrUnknownColumn if any name is missing.
func NewSelection(child Node, filter Filter) (*SelectionNode, error) {
	schema := child.Table().Schema
	indices := make([]int, len(filter.Columns))
	for i, name := range filter.Columns {
		idx, err := schema.MustIndexOf(name)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return &SelectionNode{child: child, filter: filter, indices: indices}, nil
}

func (n *SelectionNode) Table() *dtype.Table { return n.child.Table() }

func (n *SelectionNode) Next() (dtype.Row, error) {
	for {
		row, err := n.child.Next()
		if err != nil {
			return nil, err
		}
		args := make([]dtype.Value, len(n.indices))
		for i, idx := range n.indices {
			args[i] = row[idx]
		}
		if n.filter.Predicate(args) {
			return row, nil
		}
	}
}
