// Copyright 2025 The Contig Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum provides packable adapters whose views are gonum
// dense vector and matrix types wrapping the packed region zero-copy.
//
// The adapters follow the same contract as every other packable type,
// so they compose freely: a contig.DynArray of Matrix elements packs
// count*rows*cols elements back to back, and each indexed view is a
// *mat.Dense over its own disjoint sub-range.
//
// gonum's element type is float64, so these adapters are fixed to
// float64 buffers. gonum rejects zero-dimension matrices, so zero or
// negative sizes fail at Layout time with contig.ErrInvalidSize.
package gonum
