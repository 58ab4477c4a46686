// Package engine dispatches statements (CreateTable, Query, Insert) by
// building the corresponding operator tree from internal/plan and draining
// its root to a materialized result.
package engine

import (
	"errors"
	"fmt"

	"toydb/internal/dberrors"
	"toydb/internal/dtype"
	"toydb/internal/heap"
	"toydb/internal/plan"
)

// Engine executes statements against heap-file-backed tables. It holds no
// catalog: callers pass Table descriptors explicitly with every statement.
type Engine struct {
	pageSize int
}

// New builds an Engine that reads and writes pages of pageSize bytes.
func New(pageSize int) *Engine {
	return &Engine{pageSize: pageSize}
}

// Default builds an Engine using the default page size.
func Default() *Engine {
	return New(heap.PageSize)
}

// Execute dispatches stmt by kind. DDL returns a nil result; Query returns
// its projected rows; Insert returns a single one-row/one-column result
// holding the number of rows inserted.
func (e *Engine) Execute(stmt Statement) ([]dtype.Row, error) {
	switch s := stmt.(type) {
	case *CreateTable:
		return nil, e.createTable(s)
	case *Query:
		node, err := e.buildQuery(s)
		if err != nil {
			return nil, err
		}
		return drain(node)
	case *Insert:
		node, err := e.buildInsert(s)
		if err != nil {
			return nil, err
		}
		return drain(node)
	default:
		return nil, fmt.Errorf("engine: unsupported statement type %T", stmt)
	}
}

func (e *Engine) createTable(s *CreateTable) error {
	return heap.CreateFile(s.Table.Path, e.pageSize)
}

// buildQuery composes nodes in the fixed order FileScan -> Selection ->
// Sort -> Limit -> Projection, each conditional on the clause being
// present. Selection runs first to shrink input; sort runs before limit;
// projection runs last so earlier operators can reference any column.
func (e *Engine) buildQuery(q *Query) (plan.Node, error) {
	scan, err := plan.NewFileScan(q.From, e.pageSize)
	if err != nil {
		return nil, err
	}
	var node plan.Node = scan

	if q.Where != nil {
		node, err = plan.NewSelection(node, *q.Where)
		if err != nil {
			return nil, err
		}
	}

	if len(q.OrderBy) > 0 {
		node, err = plan.NewSort(node, q.OrderBy)
		if err != nil {
			return nil, err
		}
	}

	if q.Limit != nil {
		node = plan.NewLimit(node, *q.Limit)
	}

	if q.Select != nil {
		node, err = plan.NewProjection(node, q.Select)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

func (e *Engine) buildInsert(ins *Insert) (plan.Node, error) {
	haveValues := ins.Values != nil
	haveFromQuery := ins.FromQuery != nil
	if haveValues == haveFromQuery {
		return nil, fmt.Errorf("%w: insert requires exactly one of values or from_query", dberrors.ErrMalformedStatement)
	}

	var child plan.Node
	var err error
	if haveValues {
		child = plan.NewValues(ins.Into.Schema, ins.Values)
	} else {
		child, err = e.buildQuery(ins.FromQuery)
		if err != nil {
			return nil, err
		}
	}

	return plan.NewInsert(child, ins.Into, e.pageSize), nil
}

func drain(node plan.Node) ([]dtype.Row, error) {
	var rows []dtype.Row
	for {
		row, err := node.Next()
		if errors.Is(err, dberrors.ErrEndOfStream) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
