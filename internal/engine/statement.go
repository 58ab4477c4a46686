package engine

import (
	"toydb/internal/dtype"
	"toydb/internal/plan"
)

// Statement is the common interface for all statements the executor
// dispatches on. Statements arrive pre-parsed as structured values; there
// is no SQL parser in this engine.
type Statement interface {
	stmtNode()
}

// CreateTable creates table's backing heap file with a single empty page.
type CreateTable struct {
	Table *dtype.Table
}

func (*CreateTable) stmtNode() {}

// Query selects rows From a table, optionally filtering, sorting, limiting,
// and projecting. A nil Select means "all columns in schema order".
type Query struct {
	From    *dtype.Table
	Select  []string
	Where   *plan.Filter
	OrderBy []plan.SortKey
	Limit   *int
}

func (*Query) stmtNode() {}

// Insert appends rows into Into's backing file. Exactly one of Values or
// FromQuery must be set.
type Insert struct {
	Into      *dtype.Table
	Values    [][]string
	FromQuery *Query
}

func (*Insert) stmtNode() {}
