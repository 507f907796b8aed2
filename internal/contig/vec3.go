package contig

// Vec3 is the packable adapter for a fixed 3-component vector. Its
// views wrap the packed region with named component accessors rather
// than exposing a raw sub-slice.
type Vec3[F Element] struct{}

// Vec3Layout is the layout marker for Vec3. It carries no state.
type Vec3Layout struct{}

// vec3Len is the fixed footprint of a Vec3.
const vec3Len = 3

// Vec3View is a read-only view of a packed 3-component vector.
type Vec3View[F Element] struct {
	s []F
}

// X returns the first component.
func (v Vec3View[F]) X() F { return v.s[0] }

// Y returns the second component.
func (v Vec3View[F]) Y() F { return v.s[1] }

// Z returns the third component.
func (v Vec3View[F]) Z() F { return v.s[2] }

// Vec3MutView is a mutable view of a packed 3-component vector.
type Vec3MutView[F Element] struct {
	s []F
}

// X returns the first component.
func (v Vec3MutView[F]) X() F { return v.s[0] }

// Y returns the second component.
func (v Vec3MutView[F]) Y() F { return v.s[1] }

// Z returns the third component.
func (v Vec3MutView[F]) Z() F { return v.s[2] }

// SetX overwrites the first component.
func (v Vec3MutView[F]) SetX(x F) { v.s[0] = x }

// SetY overwrites the second component.
func (v Vec3MutView[F]) SetY(y F) { v.s[1] = y }

// SetZ overwrites the third component.
func (v Vec3MutView[F]) SetZ(z F) { v.s[2] = z }

// Set overwrites all three components.
func (v Vec3MutView[F]) Set(x, y, z F) {
	v.s[0] = x
	v.s[1] = y
	v.s[2] = z
}

// Layout implements Type. Vec3 needs no configuration; its size is
// fixed at declaration.
func (Vec3[F]) Layout(struct{}) (Vec3Layout, error) {
	return Vec3Layout{}, nil
}

// Len implements Type.
func (Vec3[F]) Len(Vec3Layout) int { return vec3Len }

// View implements Type.
func (Vec3[F]) View(_ Vec3Layout, buf []F) Vec3View[F] {
	checkViewLen(len(buf), vec3Len)
	return Vec3View[F]{s: buf}
}

// ViewMut implements Type.
func (Vec3[F]) ViewMut(_ Vec3Layout, buf []F) Vec3MutView[F] {
	checkViewLen(len(buf), vec3Len)
	return Vec3MutView[F]{s: buf}
}
