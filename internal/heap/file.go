package heap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"toydb/internal/dberrors"
	"toydb/internal/dtype"
)

// CreateFile creates a fresh heap file at path containing exactly one empty
// page, failing with ErrTableAlreadyExists if path is already present.
func CreateFile(path string, pageSize int) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", dberrors.ErrTableAlreadyExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", dberrors.ErrIOError, path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", dberrors.ErrIOError, path, err)
	}
	defer f.Close()

	empty := make([]byte, pageSize)
	if _, err := f.Write(empty); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: write initial page to %s: %v", dberrors.ErrIOError, path, err)
	}
	return nil
}

// NumPages reports how many full-size pages path currently holds, failing
// with ErrCorruptedStorage if the file length is not a positive multiple of
// pageSize.
func NumPages(path string, pageSize int) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: stat %s: %v", dberrors.ErrIOError, path, err)
	}
	size := info.Size()
	if size <= 0 || size%int64(pageSize) != 0 {
		return 0, fmt.Errorf("%w: file length %d is not a positive multiple of page size %d", dberrors.ErrCorruptedStorage, size, pageSize)
	}
	return int(size / int64(pageSize)), nil
}

// ReadPageAt reads and decodes the page at the given 0-based page index.
func ReadPageAt(f *os.File, schema dtype.Schema, pageSize, index int) (*Page, error) {
	buf := make([]byte, pageSize)
	n, err := f.ReadAt(buf, int64(index)*int64(pageSize))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: read page %d: %v", dberrors.ErrIOError, index, err)
	}
	if n != pageSize {
		return nil, fmt.Errorf("%w: partial page read (%d of %d bytes) at index %d", dberrors.ErrCorruptedStorage, n, pageSize, index)
	}
	return FromBuffer(schema, buf)
}

// WritePageAt writes page's current bytes to the given 0-based page index.
func WritePageAt(f *os.File, page *Page, index int) error {
	if _, err := f.WriteAt(page.Marshall(), int64(index)*int64(page.Size())); err != nil {
		return fmt.Errorf("%w: write page %d: %v", dberrors.ErrIOError, index, err)
	}
	return nil
}
