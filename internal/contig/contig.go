// Package contig computes dense packed layouts for hierarchically
// described values over a single flat buffer of numeric elements, and
// builds zero-copy read and write views over those layouts.
//
// Every packable type is described by an adapter implementing the Type
// interface: a configuration is turned into an immutable layout once,
// the layout reports its exact element footprint, and views bind the
// layout to a caller-owned buffer slice for the duration of an access
// scope. Packing is dense, order-preserving, and padding-free: the
// ranges assigned to a layout's parts are pairwise disjoint and their
// union is exactly [0, len).
package contig

import "fmt"

// Element is a constraint for the scalar types a packed buffer may hold.
// All offsets and lengths in this package are counted in elements, not
// bytes.
type Element interface {
	~float32 | ~float64
}

// Type describes how values of a packable type occupy and view a
// contiguous region of a flat []F buffer.
//
// C is the configuration type (runtime sizing input, consumed once by
// Layout), L the computed layout type, V the read-only view type, and
// M the mutable view type. Adapters are stateless values; the built-in
// implementations are Scalar, Vec3, and DynArray.
type Type[F Element, C, L, V, M any] interface {
	// Layout computes immutable layout metadata from a configuration.
	// It is pure and never touches a buffer. Layout is the only
	// fallible operation in the contract: it fails all-or-nothing with
	// an error wrapping ErrOverflow or ErrInvalidSize, and no partial
	// layout is ever returned.
	Layout(cfg C) (L, error)

	// Len reports the total element footprint of a layout.
	Len(layout L) int

	// View binds a read-only view over buf. The slice must hold
	// exactly Len(layout) elements; View panics otherwise.
	View(layout L, buf []F) V

	// ViewMut binds a mutable view over buf, under the same exact
	// length contract as View. At most one mutable view over a given
	// buffer region may be outstanding at a time.
	ViewMut(layout L, buf []F) M
}

// checkViewLen enforces the exact-length view contract. A buffer of the
// wrong size is a programmer error, not a recoverable condition.
func checkViewLen(got, want int) {
	if got != want {
		panic(fmt.Sprintf("contig: view buffer holds %d elements, layout needs exactly %d", got, want))
	}
}

// checkIndex enforces the view index bounds contract.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("contig: index %d out of range [0, %d)", i, n))
	}
}
