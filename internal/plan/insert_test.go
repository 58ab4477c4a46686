package plan

import (
	"path/filepath"
	"testing"

	"toydb/internal/dtype"
	"toydb/internal/heap"
)

func TestInsertNodeYieldsCountThenEnds(t *testing.T) {
	schema := dtype.Schema{{Name: "id", Type: dtype.UInt32}}
	path := filepath.Join(t.TempDir(), "t.heap")
	if err := heap.CreateFile(path, heap.PageSize); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	table := dtype.NewTable(schema, path)

	values := NewValues(schema, [][]string{{"1"}, {"2"}, {"3"}})
	ins := NewInsert(values, table, heap.PageSize)

	row, err := ins.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if row[0].U32 != 3 {
		t.Fatalf("expected count 3, got %d", row[0].U32)
	}

	rest := drainAll(t, ins)
	if len(rest) != 0 {
		t.Fatalf("expected no further rows, got %d", len(rest))
	}
}

func TestInsertThenScanFaithfulness(t *testing.T) {
	schema := dtype.Schema{
		{Name: "id", Type: dtype.UInt32},
		{Name: "title", Type: dtype.Text},
	}
	path := filepath.Join(t.TempDir(), "t.heap")
	if err := heap.CreateFile(path, heap.PageSize); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	table := dtype.NewTable(schema, path)

	literalRows := [][]string{{"1", "a"}, {"2", "b"}, {"3", "c"}}
	values := NewValues(schema, literalRows)
	ins := NewInsert(values, table, heap.PageSize)
	if _, err := ins.Next(); err != nil {
		t.Fatalf("insert Next: %v", err)
	}

	scan, err := NewFileScan(table, heap.PageSize)
	if err != nil {
		t.Fatalf("NewFileScan: %v", err)
	}
	rows := drainAll(t, scan)

	if len(rows) != len(literalRows) {
		t.Fatalf("expected %d rows, got %d", len(literalRows), len(rows))
	}
	for i, lit := range literalRows {
		if rows[i][1].Str != lit[1] {
			t.Fatalf("row %d: expected title %q, got %q", i, lit[1], rows[i][1].Str)
		}
	}
}

func TestInsertAcrossPageRotation(t *testing.T) {
	schema := dtype.Schema{{Name: "blob", Type: dtype.Text}}
	path := filepath.Join(t.TempDir(), "t.heap")
	if err := heap.CreateFile(path, heap.PageSize); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	table := dtype.NewTable(schema, path)

	// 250-byte text values: a page holds 16 of these records, so the 20 rows
	// force at least one rotation before the rows are exhausted.
	text := make([]byte, 250)
	for i := range text {
		text[i] = 'q'
	}
	var literalRows [][]string
	for i := 0; i < 20; i++ {
		literalRows = append(literalRows, []string{string(text)})
	}

	values := NewValues(schema, literalRows)
	ins := NewInsert(values, table, heap.PageSize)
	row, err := ins.Next()
	if err != nil {
		t.Fatalf("insert Next: %v", err)
	}
	if int(row[0].U32) != len(literalRows) {
		t.Fatalf("expected count %d, got %d", len(literalRows), row[0].U32)
	}

	n, err := heap.NumPages(path, heap.PageSize)
	if err != nil {
		t.Fatalf("NumPages: %v", err)
	}
	if n < 2 {
		t.Fatalf("expected at least 2 pages after rotation, got %d", n)
	}

	scan, err := NewFileScan(table, heap.PageSize)
	if err != nil {
		t.Fatalf("NewFileScan: %v", err)
	}
	rows := drainAll(t, scan)
	if len(rows) != len(literalRows) {
		t.Fatalf("expected %d rows back from scan, got %d", len(literalRows), len(rows))
	}
}
