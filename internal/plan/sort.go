package plan

import (
	"errors"
	"fmt"
	"sort"

	"toydb/internal/dberrors"
	"toydb/internal/dtype"
)

// SortKey names one ORDER BY column and its direction.
type SortKey struct {
	Column string
	Desc   bool
}

// SortNode is a blocking operator: on first pull it drains its child fully,
// then applies a stable sort once per key in reverse specification order
// (least-significant key first, most-significant last), so the final pass
// over the most-significant key decides ties from every earlier pass and
// the result carries lexicographic precedence matching the key list.
type SortNode struct {
	child Node
	keys  []SortKey

	rows   []dtype.Row
	sorted bool
	next   int
}

// NewSort resolves keys against child's schema at construction time.
func NewSort(child Node, keys []SortKey) (*SortNode, error) {
	schema := child.Table().Schema
	for _, k := range keys {
		if _, err := schema.MustIndexOf(k.Column); err != nil {
			return nil, err
		}
	}
	return &SortNode{child: child, keys: keys}, nil
}

func (n *SortNode) Table() *dtype.Table { return n.child.Table() }

func (n *SortNode) Next() (dtype.Row, error) {
	if !n.sorted {
		if err := n.drainAndSort(); err != nil {
			return nil, err
		}
		n.sorted = true
	}
	if n.next >= len(n.rows) {
		return nil, dberrors.ErrEndOfStream
	}
	row := n.rows[n.next]
	n.next++
	return row, nil
}

func (n *SortNode) drainAndSort() error {
	for {
		row, err := n.child.Next()
		if errors.Is(err, dberrors.ErrEndOfStream) {
			break
		}
		if err != nil {
			return err
		}
		n.rows = append(n.rows, row)
	}

	schema := n.child.Table().Schema
	for i := len(n.keys) - 1; i >= 0; i-- {
		key := n.keys[i]
		idx, _ := schema.MustIndexOf(key.Column)
		sort.SliceStable(n.rows, func(a, b int) bool {
			cmp := compareValues(n.rows[a][idx], n.rows[b][idx])
			if key.Desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return nil
}

// compareValues orders two values of the same column type: -1, 0, or 1.
func compareValues(a, b dtype.Value) int {
	switch a.Type {
	case dtype.UInt32:
		switch {
		case a.U32 < b.U32:
			return -1
		case a.U32 > b.U32:
			return 1
		default:
			return 0
		}
	case dtype.Text:
		switch {
		case a.Str < b.Str:
			return -1
		case a.Str > b.Str:
			return 1
		default:
			return 0
		}
	default:
		panic(fmt.Sprintf("plan: compareValues: unsupported type %v", a.Type))
	}
}
