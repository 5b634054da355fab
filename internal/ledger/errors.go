package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrEditData reports an edit whose replacement line could not be parsed.
	ErrEditData = errors.New("invalid edit data")
	// ErrNeedsCategory reports a transaction added before its category was resolved.
	ErrNeedsCategory = errors.New("transaction needs a category")
)

// IndexError reports an index or option outside 1..Size.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("index %d is out of range, the list is empty", e.Index)
	}
	return fmt.Sprintf("index %d is out of range, valid range is 1 to %d", e.Index, e.Size)
}
