package gonum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contig-ml/contig/contig"
)

func TestVectorRoundTrip(t *testing.T) {
	var vec Vector
	layout, err := vec.Layout(VectorConfig{Len: 5})
	require.NoError(t, err)
	require.Equal(t, 5, vec.Len(layout))

	buf := make([]float64, 5)
	mut := vec.ViewMut(layout, buf)
	for i := 0; i < mut.Len(); i++ {
		mut.SetVec(i, float64(i)+0.5)
	}

	view := vec.View(layout, buf)
	for i := 0; i < view.Len(); i++ {
		assert.Equal(t, float64(i)+0.5, view.AtVec(i))
	}

	// The view is zero-copy: mutations land in the caller's buffer.
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5, 4.5}, buf)
}

func TestMatrixRoundTrip(t *testing.T) {
	var m Matrix
	layout, err := m.Layout(MatrixConfig{Rows: 2, Cols: 3})
	require.NoError(t, err)
	require.Equal(t, 6, m.Len(layout))

	buf := make([]float64, 6)
	mut := m.ViewMut(layout, buf)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			mut.Set(i, j, float64(i*10+j))
		}
	}

	view := m.View(layout, buf)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, float64(i*10+j), view.At(i, j))
		}
	}

	// Row-major packing with no per-row gaps.
	assert.Equal(t, []float64{0, 1, 2, 10, 11, 12}, buf)
}

func TestDegenerateShapesRejected(t *testing.T) {
	var vec Vector
	_, err := vec.Layout(VectorConfig{Len: 0})
	assert.ErrorIs(t, err, contig.ErrInvalidSize)
	_, err = vec.Layout(VectorConfig{Len: -2})
	assert.ErrorIs(t, err, contig.ErrInvalidSize)

	var m Matrix
	_, err = m.Layout(MatrixConfig{Rows: 0, Cols: 3})
	assert.ErrorIs(t, err, contig.ErrInvalidSize)
	_, err = m.Layout(MatrixConfig{Rows: 2, Cols: 0})
	assert.ErrorIs(t, err, contig.ErrInvalidSize)
}

func TestDynArrayOfMatrices(t *testing.T) {
	arr := contig.NewDynArray(Matrix{})
	cfg := contig.DynArrayConfig[MatrixConfig]{
		Count: 2,
		Elem:  MatrixConfig{Rows: 2, Cols: 2},
	}
	layout, err := arr.Layout(cfg)
	require.NoError(t, err)
	require.Equal(t, 8, arr.Len(layout))

	buf := make([]float64, 8)
	mut := arr.ViewMut(layout, buf)
	for k := 0; k < mut.Len(); k++ {
		elem := mut.AtMut(k)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				elem.Set(i, j, float64(k*100+i*10+j))
			}
		}
	}

	view := arr.View(layout, buf)
	for k := 0; k < view.Len(); k++ {
		elem := view.At(k)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.Equal(t, float64(k*100+i*10+j), elem.At(i, j))
			}
		}
	}
}

// A zero-count array of vectors still computes the element layout, so
// a degenerate element configuration fails even when no element would
// ever be addressed.
func TestZeroCountArrayOfDegenerateVectors(t *testing.T) {
	arr := contig.NewDynArray(Vector{})
	_, err := arr.Layout(contig.DynArrayConfig[VectorConfig]{
		Count: 0,
		Elem:  VectorConfig{Len: 0},
	})
	assert.ErrorIs(t, err, contig.ErrInvalidSize)
}
