package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when removing a value the multiset doesn't hold.
	ErrNotFound = errors.New("value not found")
	// ErrStaleHandle is returned for a handle that was never issued, whose element
	// was removed, or whose element sits in a piece detached by Split.
	ErrStaleHandle = errors.New("handle doesn't name a live element")
	// ErrOverlap is returned by Merge when the lower piece holds a value above the upper piece's minimum.
	ErrOverlap = errors.New("pieces overlap")
	// ErrForeignPiece is returned by Merge for a piece that the last Split on the
	// treap didn't produce.
	ErrForeignPiece = errors.New("piece belongs to another treap")
	// ErrNotDetached is returned by Merge while the treap still has a root.
	ErrNotDetached = errors.New("treap isn't empty")
)

// InvariantError describes the first node found violating a property of the treap.
type InvariantError struct {
	Handle   uint64
	Property string
	Got      any
	Want     any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("node %d: %s is %v, want %v", e.Handle, e.Property, e.Got, e.Want)
}
