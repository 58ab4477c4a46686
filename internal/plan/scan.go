package plan

import (
	"fmt"
	"os"

	"toydb/internal/dberrors"
	"toydb/internal/dtype"
	"toydb/internal/heap"
)

// FileScanNode reads a table's backing heap file one page at a time,
// yielding decoded rows in insertion order: page order on disk, then
// insertion order within a page.
type FileScanNode struct {
	table      *dtype.Table
	pageSize   int
	f          *os.File
	totalPages int
	curPage    int
	curIter    *heap.RowIter
	closed     bool
}

// NewFileScan opens table's backing file read-only.
func NewFileScan(table *dtype.Table, pageSize int) (*FileScanNode, error) {
	n, err := heap.NumPages(table.Path, pageSize)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(table.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", dberrors.ErrIOError, table.Path, err)
	}
	return &FileScanNode{
		table:      table,
		pageSize:   pageSize,
		f:          f,
		totalPages: n,
	}, nil
}

func (n *FileScanNode) Table() *dtype.Table { return n.table }

// Next advances to the next page when the current page's iterator is
// exhausted, terminating when no pages remain.
func (n *FileScanNode) Next() (dtype.Row, error) {
	for {
		if n.curIter == nil {
			if n.curPage >= n.totalPages {
				n.close()
				return nil, dberrors.ErrEndOfStream
			}
			page, err := heap.ReadPageAt(n.f, n.table.Schema, n.pageSize, n.curPage)
			if err != nil {
				n.close()
				return nil, err
			}
			n.curIter = page.Rows()
		}

		row, ok, err := n.curIter.Next()
		if err != nil {
			n.close()
			return nil, err
		}
		if !ok {
			n.curPage++
			n.curIter = nil
			continue
		}
		return row, nil
	}
}

func (n *FileScanNode) close() {
	if !n.closed {
		_ = n.f.Close()
		n.closed = true
	}
}
