// Copyright 2025 The Contig Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package contig packs hierarchically described records into a single
// flat buffer of numeric elements and exposes zero-copy, typed views
// over the packing.
//
// # Overview
//
// A record with scalar fields, fixed-size groupings, and runtime-sized
// nested arrays is laid out densely in one contiguous []float32 or
// []float64 buffer, ready to hand to a solver, GPU kernel, or
// serialization sink, while still being manipulated through named,
// typed accessors instead of raw offsets. This package provides:
//   - The Type[F, C, L, V, M] contract every packable type implements
//   - A write-once Cursor allocating disjoint, gapless index ranges
//   - Built-in adapters: Scalar, Vec3, and DynArray (including arrays
//     of arrays of arbitrary depth)
//
// The gonum package adds dense vector and matrix adapters, and
// cmd/contiggen generates the aggregate config/layout/view types for
// annotated record structs.
//
// # Basic Usage
//
//	import "github.com/contig-ml/contig/contig"
//
//	func main() {
//	    // An array of 4 scalars nested in nothing fancy.
//	    arr := contig.NewDynArray(contig.Scalar[float64]{})
//	    layout, err := arr.Layout(contig.DynArrayConfig[struct{}]{Count: 4})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    buf := make([]float64, arr.Len(layout)) // caller-owned
//	    mut := arr.ViewMut(layout, buf)
//	    for i := 0; i < mut.Len(); i++ {
//	        mut.AtMut(i).Set(float64(i))
//	    }
//	}
//
// # Ownership and Concurrency
//
// Buffers are caller-owned; the engine never allocates or frees them,
// and no component retains a buffer reference once its view is
// dropped. Layouts are immutable after construction and freely
// shareable across goroutines and across distinct buffers. Concurrent
// mutation of one buffer requires external synchronization: the
// contract assumes at most one mutable view over a given region at a
// time.
package contig
