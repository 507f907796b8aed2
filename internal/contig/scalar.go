package contig

// Scalar is the packable adapter for a single buffer element.
type Scalar[F Element] struct{}

// ScalarLayout is the layout marker for Scalar. It carries no state.
type ScalarLayout struct{}

// ScalarView is a read-only view of one element.
type ScalarView[F Element] struct {
	s []F
}

// Get returns the element value.
func (v ScalarView[F]) Get() F { return v.s[0] }

// ScalarMutView is a mutable view of one element.
type ScalarMutView[F Element] struct {
	s []F
}

// Get returns the element value.
func (v ScalarMutView[F]) Get() F { return v.s[0] }

// Set overwrites the element value.
func (v ScalarMutView[F]) Set(x F) { v.s[0] = x }

// Layout implements Type. Scalars need no configuration.
func (Scalar[F]) Layout(struct{}) (ScalarLayout, error) {
	return ScalarLayout{}, nil
}

// Len implements Type. A scalar occupies exactly one element.
func (Scalar[F]) Len(ScalarLayout) int { return 1 }

// View implements Type.
func (Scalar[F]) View(_ ScalarLayout, buf []F) ScalarView[F] {
	checkViewLen(len(buf), 1)
	return ScalarView[F]{s: buf}
}

// ViewMut implements Type.
func (Scalar[F]) ViewMut(_ ScalarLayout, buf []F) ScalarMutView[F] {
	checkViewLen(len(buf), 1)
	return ScalarMutView[F]{s: buf}
}
