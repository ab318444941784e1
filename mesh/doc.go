// Package mesh builds and stores planar Delaunay triangulations.
//
// A Triangulation is constructed once from an ordered point set by
// incremental insertion and is strictly read-only afterwards. Every other
// package in this module (trilist, nearest, gradient, surface, smooth,
// draw) consumes the frozen structure through its accessors, so a built
// Triangulation may be shared across goroutines without synchronization.
//
// Algorithm outline (incremental insertion):
//
//  1. The first three points form the seed triangle (they must not be
//     collinear).
//  2. Each further point is located by an oriented walk over the current
//     triangles, stepping across any edge the point lies strictly right of.
//  3. A point inside a triangle is joined to its three vertices; a point
//     outside the hull is joined to every hull node visible from it,
//     extending the hull.
//  4. The Delaunay property is restored by in-circle tests on the edges
//     opposite the new node, swapping diagonals and re-stacking the newly
//     exposed edges until no swap applies. The cascade uses an explicit
//     work stack, never recursion.
//
// Guarantees for n ≥ 3 valid input points:
//
//   - No node lies strictly inside the circumcircle of any triangle.
//   - Adjacency is symmetric and every neighbor ring is CCW-ordered.
//   - Exactly one CCW boundary cycle (the convex hull) exists.
//   - Triangle count T = 2n − 2 − h, with h the number of hull nodes.
//
// Complexity:
//
//   - Build: O(n²) worst case; near O(n·√n) on well-distributed inputs.
//   - Locate: O(√n) expected per query.
//
// All public node indices are zero-based.
package mesh
