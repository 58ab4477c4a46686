package plan

import (
	"toydb/internal/dberrors"
	"toydb/internal/dtype"
)

// LimitNode delegates to its child until a nonnegative budget is exhausted.
// The child is not pulled again once the limit is reached.
type LimitNode struct {
	child  Node
	budget int
}

// NewLimit wraps child with a budget of n rows.
func NewLimit(child Node, n int) *LimitNode {
	return &LimitNode{child: child, budget: n}
}

func (n *LimitNode) Table() *dtype.Table { return n.child.Table() }

func (n *LimitNode) Next() (dtype.Row, error) {
	if n.budget <= 0 {
		return nil, dberrors.ErrEndOfStream
	}
	row, err := n.child.Next()
	if err != nil {
		return nil, err
	}
	n.budget--
	return row, nil
}
