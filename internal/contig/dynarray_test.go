package contig

import (
	"errors"
	"math"
	"testing"
)

func TestDynArrayOfScalars(t *testing.T) {
	arr := NewDynArray(Scalar[float64]{})
	layout, err := arr.Layout(DynArrayConfig[struct{}]{Count: 4})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	if got := arr.Len(layout); got != 4 {
		t.Fatalf("Len = %d, want 4", got)
	}
	if got := layout.ElemLen(); got != 1 {
		t.Errorf("ElemLen = %d, want 1", got)
	}

	buf := make([]float64, 4)
	mut := arr.ViewMut(layout, buf)
	for i := 0; i < mut.Len(); i++ {
		mut.AtMut(i).Set(float64(i) + 1.0)
	}

	view := arr.View(layout, buf)
	for i := 0; i < view.Len(); i++ {
		assertEqualF64(t, float64(i)+1.0, view.At(i).Get(), "element")
	}
}

func TestDynArrayOfVec3(t *testing.T) {
	arr := NewDynArray(Vec3[float64]{})
	layout, err := arr.Layout(DynArrayConfig[struct{}]{Count: 2})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	if got := arr.Len(layout); got != 6 {
		t.Fatalf("Len = %d, want 6", got)
	}
	if got := layout.ElemLen(); got != 3 {
		t.Errorf("ElemLen = %d, want 3", got)
	}

	buf := make([]float64, 6)
	mut := arr.ViewMut(layout, buf)
	mut.AtMut(0).Set(1, 2, 3)
	mut.AtMut(1).Set(4, 5, 6)

	view := arr.View(layout, buf)
	first := view.At(0)
	assertEqualF64(t, 1, first.X(), "elem 0 x")
	assertEqualF64(t, 2, first.Y(), "elem 0 y")
	assertEqualF64(t, 3, first.Z(), "elem 0 z")

	second := view.At(1)
	assertEqualF64(t, 4, second.X(), "elem 1 x")
	assertEqualF64(t, 5, second.Y(), "elem 1 y")
	assertEqualF64(t, 6, second.Z(), "elem 1 z")

	// Elements are packed back to back with no gaps.
	want := []float64{1, 2, 3, 4, 5, 6}
	for i, w := range want {
		assertEqualF64(t, w, buf[i], "raw buffer")
	}
}

func TestNestedDynArray(t *testing.T) {
	rows := NewDynArray(NewDynArray(Scalar[float64]{}))
	cfg := DynArrayConfig[DynArrayConfig[struct{}]]{
		Count: 2,
		Elem:  DynArrayConfig[struct{}]{Count: 3},
	}
	layout, err := rows.Layout(cfg)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	if got := rows.Len(layout); got != 6 {
		t.Fatalf("Len = %d, want 6", got)
	}
	if got := layout.ElemLen(); got != 3 {
		t.Errorf("ElemLen = %d, want 3", got)
	}

	buf := make([]float64, 6)
	mut := rows.ViewMut(layout, buf)
	for r := 0; r < mut.Len(); r++ {
		row := mut.AtMut(r)
		// Each nested view reports its local length regardless of
		// position in the outer array.
		if row.Len() != 3 {
			t.Fatalf("row %d length = %d, want 3", r, row.Len())
		}
		for c := 0; c < row.Len(); c++ {
			row.AtMut(c).Set(float64(r*10 + c))
		}
	}

	view := rows.View(layout, buf)
	for r := 0; r < view.Len(); r++ {
		row := view.At(r)
		for c := 0; c < row.Len(); c++ {
			assertEqualF64(t, float64(r*10+c), row.At(c).Get(), "cell")
		}
	}
}

func TestTriplyNestedDynArray(t *testing.T) {
	cube := NewDynArray(NewDynArray(NewDynArray(Scalar[float64]{})))
	cfg := DynArrayConfig[DynArrayConfig[DynArrayConfig[struct{}]]]{
		Count: 2,
		Elem: DynArrayConfig[DynArrayConfig[struct{}]]{
			Count: 3,
			Elem:  DynArrayConfig[struct{}]{Count: 4},
		},
	}
	layout, err := cube.Layout(cfg)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if got := cube.Len(layout); got != 24 {
		t.Fatalf("Len = %d, want 24", got)
	}

	buf := make([]float64, 24)
	mut := cube.ViewMut(layout, buf)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				mut.AtMut(i).AtMut(j).AtMut(k).Set(float64(i*100 + j*10 + k))
			}
		}
	}

	view := cube.View(layout, buf)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				assertEqualF64(t, float64(i*100+j*10+k), view.At(i).At(j).At(k).Get(), "cell")
			}
		}
	}
}

func TestDynArrayZeroCount(t *testing.T) {
	arr := NewDynArray(Vec3[float64]{})
	layout, err := arr.Layout(DynArrayConfig[struct{}]{Count: 0})
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	if got := arr.Len(layout); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	// The element layout is still computed and cached.
	if got := layout.ElemLen(); got != 3 {
		t.Errorf("ElemLen = %d, want 3", got)
	}

	view := arr.View(layout, []float64{})
	if view.Len() != 0 {
		t.Errorf("view.Len() = %d, want 0", view.Len())
	}
	assertPanics(t, "index into empty array", func() { view.At(0) })
}

func TestDynArrayNegativeCount(t *testing.T) {
	arr := NewDynArray(Scalar[float64]{})
	_, err := arr.Layout(DynArrayConfig[struct{}]{Count: -1})
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative count: got %v, want ErrInvalidSize", err)
	}
}

func TestDynArrayOverflow(t *testing.T) {
	arr := NewDynArray(Vec3[float64]{})
	_, err := arr.Layout(DynArrayConfig[struct{}]{Count: math.MaxInt/3 + 1})
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("overflowing count: got %v, want ErrOverflow", err)
	}

	// Nested overflow: inner array fits, the product does not.
	nested := NewDynArray(NewDynArray(Scalar[float64]{}))
	cfg := DynArrayConfig[DynArrayConfig[struct{}]]{
		Count: math.MaxInt / 2,
		Elem:  DynArrayConfig[struct{}]{Count: 3},
	}
	_, err = nested.Layout(cfg)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("nested overflow: got %v, want ErrOverflow", err)
	}
}

func TestDynArrayBoundsContract(t *testing.T) {
	arr := NewDynArray(Scalar[float64]{})
	layout, _ := arr.Layout(DynArrayConfig[struct{}]{Count: 2})
	buf := make([]float64, 2)

	view := arr.View(layout, buf)
	assertPanics(t, "At past end", func() { view.At(2) })
	assertPanics(t, "At negative", func() { view.At(-1) })

	mut := arr.ViewMut(layout, buf)
	assertPanics(t, "AtMut past end", func() { mut.AtMut(2) })
}

func TestDynArrayViewLengthContract(t *testing.T) {
	arr := NewDynArray(Scalar[float64]{})
	layout, _ := arr.Layout(DynArrayConfig[struct{}]{Count: 4})

	assertPanics(t, "short buffer", func() { arr.View(layout, make([]float64, 3)) })
	assertPanics(t, "long buffer", func() { arr.ViewMut(layout, make([]float64, 5)) })
}
