// Package nearest answers proximity queries over a built triangulation:
// the single node closest to an arbitrary point, and the ordered k closest
// nodes to a given node under graph-path distance.
//
// Node walks the adjacency graph greedily toward the query point; on a
// Delaunay structure the walk's local minimum is the global nearest node.
// KNearest expands outward from a seed node in non-decreasing path-distance
// order using a min-heap with lazy decrease-key, exactly the shortest-path
// expansion pattern - path distance here is the summed Euclidean length of
// the arcs walked, not the straight-line distance.
//
// Determinism: ties in distance are broken by ascending node index.
//
// Complexity:
//
//   - Node:     O(√n) expected steps, O(n) seed scan.
//   - KNearest: O((k + E_k) log n), E_k = arcs touched by the expansion.
//
// Errors (sentinel):
//
//   - ErrNilTriangulation if the triangulation is nil or unbuilt.
//   - ErrSeedIndex        if the seed node index is out of range.
//   - ErrBadCount         if the requested count is < 1 or leaves no
//     candidate nodes.
package nearest

import "errors"

// Sentinel errors returned by proximity queries.
var (
	// ErrNilTriangulation indicates a nil or unbuilt triangulation.
	ErrNilTriangulation = errors.New("nearest: triangulation is nil")

	// ErrSeedIndex indicates the seed node index is out of range.
	ErrSeedIndex = errors.New("nearest: seed node index out of range")

	// ErrBadCount indicates a non-positive or oversized neighbor count.
	ErrBadCount = errors.New("nearest: count must be in [1, n-1]")
)

// Hop is one entry of a KNearest result: a node id and its graph-path
// distance from the seed.
type Hop struct {
	// Node is the node index.
	Node int

	// Dist is the length of the shortest connecting path through the
	// triangulation arcs.
	Dist float64
}
