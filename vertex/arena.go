package vertex

import (
	"errors"
	"fmt"
)

// DefaultArenaCapacity is the default scratch capacity in bytes: the
// largest draw a 16-bit index can address, times the largest canonical
// record.
const DefaultArenaCapacity = 65536 * MaxStride

// ErrCapacityExceeded is returned when a decode window needs more scratch
// than the arena is allowed to hold.
var ErrCapacityExceeded = errors.New("vertex: arena capacity exceeded")

// Arena is a reusable scratch buffer for decoded vertex records. It grows
// lazily up to a hard capacity and is reused across draw calls, so large
// draws pay their allocation once.
//
// An Arena belongs to a single pipeline and is not safe for concurrent
// use.
type Arena struct {
	buf      []byte
	capacity int
}

// NewArena creates an arena with the given capacity in bytes.
// Non-positive capacities fall back to DefaultArenaCapacity.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultArenaCapacity
	}
	return &Arena{capacity: capacity}
}

// Capacity returns the hard capacity in bytes.
func (a *Arena) Capacity() int { return a.capacity }

// Alloc returns a scratch slice of n bytes with unspecified contents,
// growing the arena when needed. Requests beyond the capacity fail with
// ErrCapacityExceeded.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n > a.capacity {
		return nil, fmt.Errorf("%w: need %d bytes, capacity %d", ErrCapacityExceeded, n, a.capacity)
	}
	if cap(a.buf) < n {
		a.buf = make([]byte, n)
	}
	return a.buf[:n], nil
}
