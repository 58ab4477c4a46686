package dtype

// Table is a schema plus the filesystem path of its backing heap file.
// Immutable once constructed; carried by reference through the execution
// pipeline so downstream operators can resolve column names to positional
// indices without re-reading the schema.
type Table struct {
	Schema Schema
	Path   string
}

// NewTable builds a Table descriptor. Callers are responsible for ensuring
// the backing file at path matches schema; this constructor performs no I/O.
func NewTable(schema Schema, path string) *Table {
	return &Table{Schema: schema, Path: path}
}
