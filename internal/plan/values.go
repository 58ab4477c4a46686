package plan

import (
	"toydb/internal/dberrors"
	"toydb/internal/dtype"
)

// ValuesNode lazily yields rows obtained by applying each column's from_str
// to the corresponding string literal, in order.
type ValuesNode struct {
	table *dtype.Table
	rows  [][]string
	next  int
}

// NewValues builds a node over schema with literal rows; table carries no
// backing file (Values has no on-disk input) but still exposes schema for
// downstream column resolution.
func NewValues(schema dtype.Schema, rows [][]string) *ValuesNode {
	return &ValuesNode{
		table: &dtype.Table{Schema: schema},
		rows:  rows,
	}
}

func (n *ValuesNode) Table() *dtype.Table { return n.table }

func (n *ValuesNode) Next() (dtype.Row, error) {
	if n.next >= len(n.rows) {
		return nil, dberrors.ErrEndOfStream
	}
	literals := n.rows[n.next]
	n.next++
	return dtype.FromStrRow(n.table.Schema, literals)
}
