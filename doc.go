// Package kspace provides a topology algebra for hierarchical Cartesian
// grid cells in Khalimsky coordinates.
//
// # Overview
//
// Along one axis, even Khalimsky coordinates are closed cells (vertices) and
// odd ones are open cells (edges in 1-D). Composing one such coordinate per
// axis addresses every entity of a Cartesian mesh: in 2-D a cell open along
// both axes is a face, open along x only an edge, closed along both a vertex.
// kspace describes cells relatively to a reference cell, so a stencil is
// built once and applied at any mesh location and refinement level with
// integer arithmetic only.
//
// kspace computes where things are, never what is stored there: mesh
// storage, interval sets and solvers are left to the caller.
//
// # Quick Start
//
//	import "github.com/gogpu/kspace"
//
//	face := kspace.MustMake(2, 0b11) // reference face of a 2-D mesh
//
//	edges := face.LowerIncident()      // the 4 edges bounding the face
//	star := face.ProperNeighborhood(1) // the 4 faces sharing an edge
//	children := face.Up(1)             // the 4 faces one level finer
//
//	// Indices of the children of face (i, j) at level l+1:
//	idx, err := children.Shift(i, j)
//
// # Types
//
//   - [Interval]: half-open strided range, shifted like an index.
//   - [Cell]: one axis, with parity, index shift and level shift.
//   - [Tuple]: ordered collection of cells, the base of the sets.
//   - [Cells], [CellsND]: 1-D and N-D cell sets with broadcast navigation.
//   - [CellND]: one Cell per axis; N-D navigation enumerates the Cartesian
//     product of the per-axis results.
//
// # Navigation
//
// Operators return new values and never fail, except for explicit shape and
// arity checks. Operators that yield one cell (Next, Prev, Incident) return
// it directly; the others return a set. Refinement is one-to-two per axis and
// coarsening many-to-one, so Down followed by Up contains the original cell
// without being equal to it.
//
// # Applying Stencils
//
// The Shift family applies a cell to concrete coordinates: an index, an
// [Interval], a [MeshCell] or [MeshInterval], or a callback receiving the
// shifted level and indices. A callback result is forwarded as is, so a
// callback returning a pointer into the caller's storage lets stencils
// write in place.
//
// # Concurrency
//
// All values are immutable and safe to share between goroutines.
// [ParallelShiftFuncEachND] runs the callbacks of a set concurrently, and
// [NeighborhoodCache] memoizes wide neighborhoods for concurrent readers.
//
// # Logging
//
// kspace is silent by default. See [SetLogger].
package kspace
