package contig

import (
	"fmt"
	"math"
)

// DynArray is the packable adapter for a runtime-sized homogeneous
// sequence of any packable element type. The element type may itself
// be a DynArray; footprint computation and offset math compose without
// special-casing depth.
//
// All elements share one configuration and therefore one layout. The
// element layout and its footprint are computed once by Layout and
// cached; indexed view access reuses the cached layout and never
// recomputes it, so every element is guaranteed homogeneous in shape.
type DynArray[F Element, C, L, V, M any] struct {
	elem Type[F, C, L, V, M]
}

// NewDynArray returns a dynamic-array adapter over the given element
// adapter.
func NewDynArray[F Element, C, L, V, M any](elem Type[F, C, L, V, M]) DynArray[F, C, L, V, M] {
	return DynArray[F, C, L, V, M]{elem: elem}
}

// DynArrayConfig sizes a dynamic array: an element count plus the one
// configuration shared by every element.
type DynArrayConfig[C any] struct {
	Count int
	Elem  C
}

// DynArrayLayout is the computed layout of a dynamic array. It caches
// the shared element layout and the per-element footprint.
type DynArrayLayout[L any] struct {
	count      int
	elemLayout L
	elemLen    int
}

// Count returns the number of elements.
func (l DynArrayLayout[L]) Count() int { return l.count }

// ElemLayout returns the cached element layout shared by all elements.
func (l DynArrayLayout[L]) ElemLayout() L { return l.elemLayout }

// ElemLen returns the cached footprint of one element.
func (l DynArrayLayout[L]) ElemLen() int { return l.elemLen }

// Layout implements Type. The element layout is computed exactly once
// from cfg.Elem. A zero Count still computes it, so element adapters
// that reject degenerate configurations fail deterministically
// regardless of the count.
func (d DynArray[F, C, L, V, M]) Layout(cfg DynArrayConfig[C]) (DynArrayLayout[L], error) {
	if cfg.Count < 0 {
		return DynArrayLayout[L]{}, fmt.Errorf("%w: negative element count %d", ErrInvalidSize, cfg.Count)
	}
	elemLayout, err := d.elem.Layout(cfg.Elem)
	if err != nil {
		return DynArrayLayout[L]{}, err
	}
	elemLen := d.elem.Len(elemLayout)
	if elemLen > 0 && cfg.Count > math.MaxInt/elemLen {
		return DynArrayLayout[L]{}, fmt.Errorf("%w: %d elements of %d elements each", ErrOverflow, cfg.Count, elemLen)
	}
	return DynArrayLayout[L]{
		count:      cfg.Count,
		elemLayout: elemLayout,
		elemLen:    elemLen,
	}, nil
}

// Len implements Type. The footprint is count*elemLen: elements are
// packed contiguously with no per-element gaps.
func (d DynArray[F, C, L, V, M]) Len(layout DynArrayLayout[L]) int {
	return layout.count * layout.elemLen
}

// View implements Type.
func (d DynArray[F, C, L, V, M]) View(layout DynArrayLayout[L], buf []F) DynArrayView[F, C, L, V, M] {
	checkViewLen(len(buf), d.Len(layout))
	return DynArrayView[F, C, L, V, M]{elem: d.elem, base: buf, layout: layout}
}

// ViewMut implements Type.
func (d DynArray[F, C, L, V, M]) ViewMut(layout DynArrayLayout[L], buf []F) DynArrayMutView[F, C, L, V, M] {
	checkViewLen(len(buf), d.Len(layout))
	return DynArrayMutView[F, C, L, V, M]{elem: d.elem, base: buf, layout: layout}
}

// DynArrayView is a read-only indexed view over a packed dynamic
// array.
type DynArrayView[F Element, C, L, V, M any] struct {
	elem   Type[F, C, L, V, M]
	base   []F
	layout DynArrayLayout[L]
}

// Len returns the number of elements.
func (v DynArrayView[F, C, L, V, M]) Len() int { return v.layout.count }

// At returns a read-only view of element i. Element i occupies the
// range [i*elemLen, (i+1)*elemLen); ranges of distinct indices are
// disjoint. At panics if i is out of bounds.
func (v DynArrayView[F, C, L, V, M]) At(i int) V {
	checkIndex(i, v.layout.count)
	start := i * v.layout.elemLen
	end := start + v.layout.elemLen
	return v.elem.View(v.layout.elemLayout, v.base[start:end:end])
}

// DynArrayMutView is a mutable indexed view over a packed dynamic
// array.
type DynArrayMutView[F Element, C, L, V, M any] struct {
	elem   Type[F, C, L, V, M]
	base   []F
	layout DynArrayLayout[L]
}

// Len returns the number of elements.
func (v DynArrayMutView[F, C, L, V, M]) Len() int { return v.layout.count }

// At returns a read-only view of element i. At panics if i is out of
// bounds.
func (v DynArrayMutView[F, C, L, V, M]) At(i int) V {
	checkIndex(i, v.layout.count)
	start := i * v.layout.elemLen
	end := start + v.layout.elemLen
	return v.elem.View(v.layout.elemLayout, v.base[start:end:end])
}

// AtMut returns a mutable view of element i. AtMut panics if i is out
// of bounds.
func (v DynArrayMutView[F, C, L, V, M]) AtMut(i int) M {
	checkIndex(i, v.layout.count)
	start := i * v.layout.elemLen
	end := start + v.layout.elemLen
	return v.elem.ViewMut(v.layout.elemLayout, v.base[start:end:end])
}
