// Copyright 2025 The Contig Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package contig

import (
	"github.com/contig-ml/contig/internal/contig"
)

// Type aliases for the public API

// Element is a constraint for the scalar types a packed buffer may
// hold: ~float32 or ~float64. All offsets and lengths are counted in
// elements, not bytes.
type Element = contig.Element

// Type describes how values of a packable type occupy and view a
// contiguous region of a flat []F buffer. C is the configuration
// type, L the layout type, V the read-only view type, M the mutable
// view type.
//
// Layout is the only fallible operation; View and ViewMut require a
// slice of exactly Len(layout) elements and panic otherwise.
type Type[F Element, C, L, V, M any] = contig.Type[F, C, L, V, M]

// Layout computation errors, matched with errors.Is.
var (
	// ErrOverflow reports a footprint exceeding the maximum
	// representable element index.
	ErrOverflow = contig.ErrOverflow

	// ErrInvalidSize reports a configuration that is structurally
	// invalid for its adapter.
	ErrInvalidSize = contig.ErrInvalidSize
)

// Range is a half-open interval of element indices within a buffer.
type Range = contig.Range

// Cursor carves disjoint, strictly increasing index ranges from one
// growing index space during layout construction. Finish consumes it.
type Cursor = contig.Cursor

// NewCursor returns a cursor positioned at index 0.
func NewCursor() *Cursor {
	return contig.NewCursor()
}

// Scalar is the packable adapter for a single buffer element.
type Scalar[F Element] = contig.Scalar[F]

// ScalarLayout is the stateless layout of a Scalar.
type ScalarLayout = contig.ScalarLayout

// ScalarView is a read-only view of one element.
type ScalarView[F Element] = contig.ScalarView[F]

// ScalarMutView is a mutable view of one element.
type ScalarMutView[F Element] = contig.ScalarMutView[F]

// Vec3 is the packable adapter for a fixed 3-component vector.
type Vec3[F Element] = contig.Vec3[F]

// Vec3Layout is the stateless layout of a Vec3.
type Vec3Layout = contig.Vec3Layout

// Vec3View is a read-only view exposing X, Y, Z accessors.
type Vec3View[F Element] = contig.Vec3View[F]

// Vec3MutView is a mutable view exposing component setters and a bulk
// Set.
type Vec3MutView[F Element] = contig.Vec3MutView[F]

// DynArray is the packable adapter for a runtime-sized homogeneous
// sequence of any packable element type, nested arrays included.
type DynArray[F Element, C, L, V, M any] = contig.DynArray[F, C, L, V, M]

// DynArrayConfig sizes a dynamic array: an element count plus one
// configuration shared by every element.
type DynArrayConfig[C any] = contig.DynArrayConfig[C]

// DynArrayLayout caches the shared element layout and per-element
// footprint; both are computed once and reused for every index.
type DynArrayLayout[L any] = contig.DynArrayLayout[L]

// DynArrayView is a read-only indexed view over a packed dynamic
// array.
type DynArrayView[F Element, C, L, V, M any] = contig.DynArrayView[F, C, L, V, M]

// DynArrayMutView is a mutable indexed view over a packed dynamic
// array.
type DynArrayMutView[F Element, C, L, V, M any] = contig.DynArrayMutView[F, C, L, V, M]

// NewDynArray returns a dynamic-array adapter over the given element
// adapter.
//
// Example:
//
//	scalars := contig.NewDynArray(contig.Scalar[float64]{})
//	nested := contig.NewDynArray(scalars) // array of arrays
func NewDynArray[F Element, C, L, V, M any](elem Type[F, C, L, V, M]) DynArray[F, C, L, V, M] {
	return contig.NewDynArray(elem)
}
