// Package plan implements the Volcano-style pull-based operator framework:
// FileScan, Values, Insert, Projection, Selection, Sort, and Limit nodes
// compose into a tree whose root is pulled to exhaustion by the executor.
package plan

import "toydb/internal/dtype"

// Node is the single pull operation every operator implements. Next yields
// the next row, or returns dberrors.ErrEndOfStream once exhausted. Nodes are
// single-pass: once ended, they stay ended.
//
// Table returns the effective input table descriptor, used by downstream
// nodes to resolve column names to positional indices at construction time.
type Node interface {
	Next() (dtype.Row, error)
	Table() *dtype.Table
}
