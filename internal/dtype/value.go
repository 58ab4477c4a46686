package dtype

// ColumnType is the closed set of column types this engine understands.
type ColumnType uint8

const (
	UInt32 ColumnType = iota
	Text
)

func (t ColumnType) String() string {
	switch t {
	case UInt32:
		return "UInt32"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Value is one cell in a row. Only the field matching Type is meaningful.
type Value struct {
	Type ColumnType
	U32  uint32
	Str  string
}

// UInt32Value constructs a UInt32-typed cell.
func UInt32Value(v uint32) Value {
	return Value{Type: UInt32, U32: v}
}

// TextValue constructs a Text-typed cell.
func TextValue(v string) Value {
	return Value{Type: Text, Str: v}
}

// Row is a positional sequence of values, one per schema column.
type Row []Value
