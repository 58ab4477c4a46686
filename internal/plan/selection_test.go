package plan

import (
	"strings"
	"testing"

	"toydb/internal/dtype"
)

func TestSelectionFiltersRows(t *testing.T) {
	schema := dtype.Schema{
		{Name: "id", Type: dtype.UInt32},
		{Name: "genres", Type: dtype.Text},
	}
	values := NewValues(schema, [][]string{
		{"1", "Adventure|Action"},
		{"2", "Comedy"},
		{"3", "Drama|Adventure"},
	})

	sel, err := NewSelection(values, Filter{
		Columns: []string{"genres"},
		Predicate: func(args []dtype.Value) bool {
			return strings.Contains(args[0].Str, "Adventure")
		},
	})
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}

	rows := drainAll(t, sel)
	if len(rows) != 2 {
		t.Fatalf("expected 2 matching rows, got %d", len(rows))
	}
	if rows[0][0].U32 != 1 || rows[1][0].U32 != 3 {
		t.Fatalf("unexpected matching ids: %d, %d", rows[0][0].U32, rows[1][0].U32)
	}
}

func TestSelectionUnknownColumn(t *testing.T) {
	schema := dtype.Schema{{Name: "id", Type: dtype.UInt32}}
	values := NewValues(schema, [][]string{{"1"}})

	_, err := NewSelection(values, Filter{
		Columns:   []string{"nope"},
		Predicate: func([]dtype.Value) bool { return true },
	})
	if err == nil {
		t.Fatal("expected unknown column error")
	}
}
