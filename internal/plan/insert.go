package plan

import (
	"errors"
	"fmt"
	"os"

	"toydb/internal/dberrors"
	"toydb/internal/dtype"
	"toydb/internal/heap"
)

// insertResultSchema describes the single-row, single-column result every
// InsertNode yields: the count of rows actually consumed from its child.
var insertResultSchema = dtype.Schema{{Name: "count", Type: dtype.UInt32}}

// InsertNode is a single-shot sink: on its first pull it drains child
// entirely, writing rows into dest's heap file, then yields one row
// containing the number of rows inserted. Every later pull ends.
//
// Crash hazard: there is no transactional atomicity here. If the process
// dies mid-insert, dest's file may already be extended with a fresh page
// that only partially absorbed the in-flight row, or the previous page may
// have been rewritten without the new page yet appended. The caller is
// responsible for detecting and cleaning up such partial state.
type InsertNode struct {
	child    Node
	dest     *dtype.Table
	pageSize int

	resultTable *dtype.Table
	started     bool
	yielded     bool
}

// NewInsert wraps child, a node producing rows matching dest's schema, as a
// sink targeting dest.
func NewInsert(child Node, dest *dtype.Table, pageSize int) *InsertNode {
	return &InsertNode{
		child:       child,
		dest:        dest,
		pageSize:    pageSize,
		resultTable: &dtype.Table{Schema: insertResultSchema},
	}
}

func (n *InsertNode) Table() *dtype.Table { return n.resultTable }

func (n *InsertNode) Next() (dtype.Row, error) {
	if n.yielded {
		return nil, dberrors.ErrEndOfStream
	}
	if !n.started {
		n.started = true
		count, err := n.run()
		if err != nil {
			return nil, err
		}
		n.yielded = true
		return dtype.Row{dtype.UInt32Value(count)}, nil
	}
	return nil, dberrors.ErrEndOfStream
}

func (n *InsertNode) run() (uint32, error) {
	f, err := os.OpenFile(n.dest.Path, os.O_RDWR, 0o644)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s for insert: %v", dberrors.ErrIOError, n.dest.Path, err)
	}
	defer f.Close()

	numPages, err := heap.NumPages(n.dest.Path, n.pageSize)
	if err != nil {
		return 0, err
	}

	curPageIdx := numPages - 1
	curPage, err := heap.ReadPageAt(f, n.dest.Schema, n.pageSize, curPageIdx)
	if err != nil {
		return 0, err
	}

	var count uint32
	for {
		row, err := n.child.Next()
		if errors.Is(err, dberrors.ErrEndOfStream) {
			break
		}
		if err != nil {
			return 0, err
		}

		if err := curPage.InsertRecord(row); err != nil {
			if !errors.Is(err, dberrors.ErrInsufficientSpace) {
				return 0, err
			}

			if err := heap.WritePageAt(f, curPage, curPageIdx); err != nil {
				return 0, err
			}

			curPageIdx++
			curPage = heap.New(n.dest.Schema, n.pageSize)

			if err := curPage.InsertRecord(row); err != nil {
				return 0, fmt.Errorf("%w: record does not fit in a fresh empty page", err)
			}
		}

		count++
	}

	if curPage.NumRecords() > 0 {
		if err := heap.WritePageAt(f, curPage, curPageIdx); err != nil {
			return 0, err
		}
	}

	return count, nil
}
