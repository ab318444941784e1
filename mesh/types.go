package mesh

// Point, Triangulation, Location and the sentinel errors.
//
//	ErrShapeMismatch      - coordinate slices differ in length.
//	ErrInsufficientPoints - fewer than three points supplied.
//	ErrCollinearSeed      - the first three points are collinear.
//	ErrDuplicateNode      - two points share identical coordinates.
//	ErrInternalSwap       - inconsistency during the Delaunay swap cascade
//	                        (an implementation bug, not bad input).
//	ErrNilTriangulation   - a nil or unbuilt Triangulation was handed to a
//	                        derived query.
//	ErrNodeIndex          - node index outside [0, Len).

import "errors"

// Sentinel errors for triangulation construction and access.
var (
	// ErrShapeMismatch indicates the x and y coordinate slices differ in length.
	ErrShapeMismatch = errors.New("mesh: coordinate slices must have equal length")

	// ErrInsufficientPoints indicates fewer than three input points.
	ErrInsufficientPoints = errors.New("mesh: at least three points are required")

	// ErrCollinearSeed indicates the first three points do not span a triangle.
	ErrCollinearSeed = errors.New("mesh: first three points are collinear")

	// ErrDuplicateNode indicates two input points with identical coordinates.
	// The wrapped message names both node indices.
	ErrDuplicateNode = errors.New("mesh: duplicate node coordinates")

	// ErrInternalSwap indicates the swap cascade observed an inconsistent
	// adjacency structure. It is fatal for the build and signals a logic
	// defect rather than invalid input.
	ErrInternalSwap = errors.New("mesh: internal inconsistency in swap cascade")

	// ErrNilTriangulation indicates a nil *Triangulation was passed to a
	// query that requires a built structure.
	ErrNilTriangulation = errors.New("mesh: triangulation is nil")

	// ErrNodeIndex indicates a node index outside the valid range [0, Len).
	ErrNodeIndex = errors.New("mesh: node index out of range")
)

// Point is a Cartesian coordinate pair. Points are immutable once a
// Triangulation has been built from them.
type Point struct {
	X float64
	Y float64
}

// Triangulation is a planar Delaunay triangulation over a fixed point set.
//
// The structure is built once by New / NewFromPoints and is strictly
// read-only afterwards: there is no node deletion or edge insertion. All
// exported accessors return defensive copies, so a built Triangulation may
// be shared freely across goroutines.
//
// Internally each node carries a neighbor ring: the node indices adjacent
// to it, ordered counter-clockwise. Interior rings are circular with an
// arbitrary start; boundary rings are linear, running from the node's hull
// successor to its hull predecessor, and the node is flagged as boundary.
// This is the ownership-safe equivalent of the classic sign-encoded
// circular adjacency list.
type Triangulation struct {
	pts  []Point // node coordinates, index == node id
	ring [][]int // CCW neighbor ring per node
	bnd  []bool  // true if the node lies on the convex hull
}

// Location is the result of Locate: either the CCW triangle containing the
// query point, or - for points outside the convex hull - the contiguous
// chain of hull nodes visible from the point, in CCW hull order.
type Location struct {
	// Inside reports whether the point lies inside the hull (or exactly on
	// its boundary).
	Inside bool

	// Tri holds the vertices of the containing triangle in CCW order.
	// Valid only when Inside is true.
	Tri [3]int

	// Chain holds the visible hull nodes v0..vm in CCW hull order; every
	// edge (Chain[i], Chain[i+1]) is visible from the query point.
	// Valid only when Inside is false; always contains at least two nodes.
	Chain []int
}
