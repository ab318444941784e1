// Package trimesh is an in-memory toolkit for scattered-data fitting on the
// plane: build a Delaunay triangulation once, then use it as scaffolding for
// neighbor queries, gradient estimation, interpolation and smoothing.
//
// 🚀 What is trimesh?
//
//	A small, focused library that brings together:
//		• mesh:     incremental Delaunay triangulation with CCW neighbor rings
//		• trilist:  triangle / neighbor / arc extraction from a triangulation
//		• nearest:  nearest-node walk and ordered k-nearest graph expansion
//		• gradient: global (relaxation) and local (ring fit) gradient estimation
//		• surface:  piecewise-linear and C¹ cubic Hermite interpolation
//		• smooth:   least-curvature smoothing under a residual bound
//		• draw:     PNG rendering of a triangulation
//
// ✨ Why choose trimesh?
//
//   - One immutable structure - a Triangulation is built once and read forever,
//     so every derived query is safe to run from many goroutines
//   - Deterministic contracts - fixed sweep orders, fixed enumeration orders,
//     bit-reproducible results across runs
//   - Explicit failure modes - every error is a package sentinel carrying the
//     offending node or point
//
// Quick ASCII example:
//
//	    3───2
//	    │ ╲ │       four points, two triangles; the diagonal is the
//	    0───1       one that satisfies the in-circle test.
//
// Typical flow: mesh.New → {trilist, nearest, gradient} → surface / smooth.
//
//	go get github.com/katalvlaran/trimesh
package trimesh
