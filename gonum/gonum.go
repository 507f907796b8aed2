// Copyright 2025 The Contig Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/contig-ml/contig/internal/contig"
)

// Vector is the packable adapter for a runtime-length dense vector.
// Its read-only view is a mat.Vector and its mutable view a
// *mat.VecDense, both backed directly by the packed region.
type Vector struct{}

// VectorConfig sizes a Vector.
type VectorConfig struct {
	Len int
}

// VectorLayout is the computed layout of a Vector; it caches the
// length.
type VectorLayout struct {
	len int
}

// Len returns the vector length.
func (l VectorLayout) Len() int { return l.len }

// Layout implements contig.Type. gonum panics on zero-length vectors,
// so non-positive lengths are rejected here instead.
func (Vector) Layout(cfg VectorConfig) (VectorLayout, error) {
	if cfg.Len <= 0 {
		return VectorLayout{}, fmt.Errorf("%w: vector length %d must be positive", contig.ErrInvalidSize, cfg.Len)
	}
	return VectorLayout{len: cfg.Len}, nil
}

// Len implements contig.Type.
func (Vector) Len(layout VectorLayout) int { return layout.len }

// View implements contig.Type. The returned mat.Vector aliases buf;
// it must not outlive the buffer.
func (v Vector) View(layout VectorLayout, buf []float64) mat.Vector {
	return v.ViewMut(layout, buf)
}

// ViewMut implements contig.Type.
func (Vector) ViewMut(layout VectorLayout, buf []float64) *mat.VecDense {
	if len(buf) != layout.len {
		panic(fmt.Sprintf("gonum: view buffer holds %d elements, layout needs exactly %d", len(buf), layout.len))
	}
	return mat.NewVecDense(layout.len, buf)
}

// Matrix is the packable adapter for a runtime-shaped dense matrix,
// packed row-major. Its read-only view is a mat.Matrix and its
// mutable view a *mat.Dense, both backed directly by the packed
// region.
type Matrix struct{}

// MatrixConfig sizes a Matrix.
type MatrixConfig struct {
	Rows int
	Cols int
}

// MatrixLayout is the computed layout of a Matrix; it caches the
// shape.
type MatrixLayout struct {
	rows int
	cols int
}

// Dims returns the matrix shape.
func (l MatrixLayout) Dims() (rows, cols int) { return l.rows, l.cols }

// Layout implements contig.Type. gonum panics on zero-dimension
// matrices, so non-positive shapes are rejected here instead.
func (Matrix) Layout(cfg MatrixConfig) (MatrixLayout, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return MatrixLayout{}, fmt.Errorf("%w: matrix shape %dx%d must be positive", contig.ErrInvalidSize, cfg.Rows, cfg.Cols)
	}
	if cfg.Rows > math.MaxInt/cfg.Cols {
		return MatrixLayout{}, fmt.Errorf("%w: matrix shape %dx%d", contig.ErrOverflow, cfg.Rows, cfg.Cols)
	}
	return MatrixLayout{rows: cfg.Rows, cols: cfg.Cols}, nil
}

// Len implements contig.Type.
func (Matrix) Len(layout MatrixLayout) int { return layout.rows * layout.cols }

// View implements contig.Type. The returned mat.Matrix aliases buf;
// it must not outlive the buffer.
func (m Matrix) View(layout MatrixLayout, buf []float64) mat.Matrix {
	return m.ViewMut(layout, buf)
}

// ViewMut implements contig.Type.
func (m Matrix) ViewMut(layout MatrixLayout, buf []float64) *mat.Dense {
	if len(buf) != m.Len(layout) {
		panic(fmt.Sprintf("gonum: view buffer holds %d elements, layout needs exactly %d", len(buf), m.Len(layout)))
	}
	return mat.NewDense(layout.rows, layout.cols, buf)
}
