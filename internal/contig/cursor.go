package contig

import (
	"fmt"
	"math"
)

// Range is a half-open interval of element indices within a buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Cursor carves disjoint index ranges from a single growing index
// space. It exists only while a layout is being built: take one range
// per part in declaration order, then call Finish for the total
// footprint. Ranges returned across successive calls are strictly
// increasing and non-overlapping by construction.
type Cursor struct {
	idx      int
	finished bool
}

// NewCursor returns a cursor positioned at index 0.
func NewCursor() *Cursor {
	return &Cursor{}
}

// TakeRange returns the next n-element range and advances the cursor.
// It fails with ErrOverflow if the end of the range would exceed the
// maximum representable index, and with ErrInvalidSize if n is
// negative. TakeRange panics if the cursor has been finished.
func (c *Cursor) TakeRange(n int) (Range, error) {
	if c.finished {
		panic("contig: TakeRange on a finished Cursor")
	}
	if n < 0 {
		return Range{}, fmt.Errorf("%w: negative range length %d", ErrInvalidSize, n)
	}
	if n > math.MaxInt-c.idx {
		return Range{}, fmt.Errorf("%w: range of %d elements starting at %d", ErrOverflow, n, c.idx)
	}
	start := c.idx
	c.idx = start + n
	return Range{Start: start, End: c.idx}, nil
}

// Finish consumes the cursor and returns the total number of elements
// allocated. The cursor cannot allocate afterward; further use panics.
func (c *Cursor) Finish() int {
	if c.finished {
		panic("contig: Finish on a finished Cursor")
	}
	c.finished = true
	return c.idx
}
