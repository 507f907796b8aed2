// Package example holds annotated record descriptions for contiggen
// and the generated packing code for them. It doubles as the
// integration surface for the layout engine: a robot with a dynamic
// number of links, nested dynamic arrays, and gonum-backed state.
package example

import (
	"github.com/contig-ml/contig/contig"
	"github.com/contig-ml/contig/gonum"
)

//go:generate go run github.com/contig-ml/contig/cmd/contiggen robot.go

// Link is one rigid body: a mass and a position.
//
//contig:record scalar=float64
type Link struct {
	Mass float64
	Pos  contig.Vec3[float64]
}

// Robot is a chain of links plus a free-form scalar block.
//
//contig:record scalar=float64
type Robot struct {
	Links   []Link    `contig:"dyn"`
	Scalars []float64 `contig:"dyn"`
}

// Nested exercises arrays of arrays.
//
//contig:record scalar=float64
type Nested struct {
	Rows [][]float64 `contig:"dyn,elem=dyn"`
}

// State packs a configuration vector and a set of per-link matrices.
//
//contig:record scalar=float64
type State struct {
	Q    gonum.Vector   `contig:"len"`
	Mats []gonum.Matrix `contig:"dyn,elem=shape"`
}
