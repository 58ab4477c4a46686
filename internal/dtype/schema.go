package dtype

import (
	"fmt"

	"toydb/internal/dberrors"
)

// Column is one (name, type) pair in a schema.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is an ordered sequence of columns. Names are unique within a schema.
type Schema []Column

// IndexOf resolves a column name to its positional index.
func (s Schema) IndexOf(name string) (int, bool) {
	for i, c := range s {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// MustIndexOf resolves name or returns ErrUnknownColumn, the form every
// operator in internal/plan uses once at construction time.
func (s Schema) MustIndexOf(name string) (int, error) {
	i, ok := s.IndexOf(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", dberrors.ErrUnknownColumn, name)
	}
	return i, nil
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// MarshallRow encodes row as the concatenation of each column's marshalled
// bytes in schema order, with no framing or padding (spec.md §6).
func MarshallRow(s Schema, row Row) ([]byte, error) {
	if len(row) != len(s) {
		return nil, fmt.Errorf("%w: row has %d values, schema has %d columns", dberrors.ErrSchemaMismatch, len(row), len(s))
	}
	var out []byte
	for i, col := range s {
		codec, err := codecFor(col.Type)
		if err != nil {
			return nil, err
		}
		b, err := codec.Marshall(row[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// UnmarshallRow decodes exactly one row's bytes from c, consuming one value
// per schema column in order.
func UnmarshallRow(s Schema, c *Cursor) (Row, error) {
	row := make(Row, len(s))
	for i, col := range s {
		codec, err := codecFor(col.Type)
		if err != nil {
			return nil, err
		}
		v, err := codec.Unmarshall(c)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// FromStrRow parses a sequence of string literals against schema, applying
// each column's from_str in order. Used by ValuesNode.
func FromStrRow(s Schema, literals []string) (Row, error) {
	if len(literals) != len(s) {
		return nil, fmt.Errorf("%w: row has %d values, schema has %d columns", dberrors.ErrSchemaMismatch, len(literals), len(s))
	}
	row := make(Row, len(s))
	for i, col := range s {
		codec, err := codecFor(col.Type)
		if err != nil {
			return nil, err
		}
		v, err := codec.FromStr(literals[i])
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}
