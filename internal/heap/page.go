// Package heap implements the slotted-page heap file format: a mutable
// in-memory page buffer with bit-exact on-disk layout, and the append-only
// record packing discipline every higher layer depends on.
package heap

import (
	"encoding/binary"
	"fmt"

	"toydb/internal/dberrors"
	"toydb/internal/dtype"
)

// PageSize is the default page size in bytes.
const PageSize = 4096

const headerSize = 2 // u16 num_records
const slotSize = 2   // u16 per slot

// Page is a mutable slotted-page buffer. A Page is owned exclusively by one
// operator at a time; concurrent iteration or mutation is unsupported.
//
// Layout:
//
//	offset 0:  u16 num_records
//	offset 2:  u16 slot[0]   (byte offset of record 0's first byte)
//	offset 4:  u16 slot[1]
//	...
//	           free space
//	...
//	           record n-1 ... record 0  (packed from the page tail downward)
//
// recordPointersEnd and recordsStart are cached bookkeeping, both
// recomputable from buf, kept for O(1) inserts.
type Page struct {
	schema            dtype.Schema
	buf               []byte
	recordPointersEnd int
	recordsStart      int
}

// New allocates an empty page of pageSize bytes.
func New(schema dtype.Schema, pageSize int) *Page {
	buf := make([]byte, pageSize)
	binary.LittleEndian.PutUint16(buf[0:2], 0)
	return &Page{
		schema:            schema,
		buf:               buf,
		recordPointersEnd: headerSize,
		recordsStart:      pageSize,
	}
}

// FromBuffer adopts an existing page image. buf's length must equal
// pageSize; bookkeeping is derived by reading num_records and the last slot.
func FromBuffer(schema dtype.Schema, buf []byte) (*Page, error) {
	n := binary.LittleEndian.Uint16(buf[0:2])
	recordsStart := len(buf)
	if n > 0 {
		pos := headerSize + 2*int(n-1)
		if pos+2 > len(buf) {
			return nil, fmt.Errorf("%w: slot array overruns page", dberrors.ErrCorruptedStorage)
		}
		recordsStart = int(binary.LittleEndian.Uint16(buf[pos : pos+2]))
	}
	return &Page{
		schema:            schema,
		buf:               buf,
		recordPointersEnd: headerSize + 2*int(n),
		recordsStart:      recordsStart,
	}, nil
}

// NumRecords reads the header word.
func (p *Page) NumRecords() uint16 {
	return binary.LittleEndian.Uint16(p.buf[0:2])
}

func (p *Page) setNumRecords(n uint16) {
	binary.LittleEndian.PutUint16(p.buf[0:2], n)
}

// FreeBytes returns the number of bytes available for a new record plus its
// slot entry together, i.e. page_size - 2 - 2*num_records - (page_size - records_start).
func (p *Page) FreeBytes() int {
	return len(p.buf) - headerSize - slotSize*int(p.NumRecords()) - (len(p.buf) - p.recordsStart)
}

func (p *Page) slotOffset(i int) int {
	return headerSize + slotSize*i
}

func (p *Page) slotAt(i int) int {
	pos := p.slotOffset(i)
	return int(binary.LittleEndian.Uint16(p.buf[pos : pos+2]))
}

// InsertRecord schema-directs the marshalling of row, then inserts it. It
// is a no-op on failure: no partial mutation occurs if there is not enough
// space.
func (p *Page) InsertRecord(row dtype.Row) error {
	recordBytes, err := dtype.MarshallRow(p.schema, row)
	if err != nil {
		return err
	}

	if slotSize+len(recordBytes) > p.FreeBytes() {
		return fmt.Errorf("%w: record of %d bytes does not fit in %d free bytes", dberrors.ErrInsufficientSpace, len(recordBytes), p.FreeBytes())
	}

	newStart := p.recordsStart - len(recordBytes)
	copy(p.buf[newStart:p.recordsStart], recordBytes)
	p.recordsStart = newStart

	binary.LittleEndian.PutUint16(p.buf[p.recordPointersEnd:p.recordPointersEnd+2], uint16(p.recordsStart))
	p.recordPointersEnd += slotSize

	p.setNumRecords(p.NumRecords() + 1)

	return nil
}

// Marshall returns a copy of the current buffer bytes.
func (p *Page) Marshall() []byte {
	out := make([]byte, len(p.buf))
	copy(out, p.buf)
	return out
}

// Size reports the page's fixed byte length.
func (p *Page) Size() int {
	return len(p.buf)
}

// RowIter is a lazy, finite, non-restartable iterator over a page's records
// in insertion order. A page supports at most one active iterator at a time.
type RowIter struct {
	page *Page
	next int
}

// Rows returns an iterator positioned at the first record.
func (p *Page) Rows() *RowIter {
	return &RowIter{page: p, next: 0}
}

// Next decodes the next row, or returns (nil, false) once exhausted.
func (it *RowIter) Next() (dtype.Row, bool, error) {
	p := it.page
	n := int(p.NumRecords())
	if it.next >= n {
		return nil, false, nil
	}
	i := it.next
	it.next++

	start := p.slotAt(i)
	end := p.Size()
	if i > 0 {
		end = p.slotAt(i - 1)
	}
	if start < 0 || end > len(p.buf) || start > end {
		return nil, false, fmt.Errorf("%w: slot %d has invalid bounds [%d,%d)", dberrors.ErrCorruptedStorage, i, start, end)
	}

	cur := dtype.NewCursor(p.buf[start:end])
	row, err := dtype.UnmarshallRow(p.schema, cur)
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}
