package mesh_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/mesh"
)

// unitSquare is the canonical 4-node fixture: CCW corners of [0,1]².
func unitSquare(t *testing.T) *mesh.Triangulation {
	t.Helper()
	tr, err := mesh.New(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
	)
	require.NoError(t, err, "unit square must triangulate")

	return tr
}

// randomCloud builds a reproducible scattered point set.
func randomCloud(t *testing.T, n int, seed int64) *mesh.Triangulation {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64() * 10
		ys[i] = rng.Float64() * 10
	}
	tr, err := mesh.New(xs, ys)
	require.NoError(t, err, "random cloud must triangulate")

	return tr
}

// TestNew_ShapeMismatch verifies that unequal coordinate slices are rejected.
func TestNew_ShapeMismatch(t *testing.T) {
	_, err := mesh.New([]float64{0, 1}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, mesh.ErrShapeMismatch, "unequal slice lengths must error")
}

// TestNew_InsufficientPoints verifies the minimum node count.
func TestNew_InsufficientPoints(t *testing.T) {
	_, err := mesh.New([]float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, mesh.ErrInsufficientPoints, "two points cannot triangulate")
}

// TestNew_CollinearSeed verifies that a fully collinear input fails with
// the seed error: no triangle can be formed at all.
func TestNew_CollinearSeed(t *testing.T) {
	_, err := mesh.New([]float64{0, 1, 2}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, mesh.ErrCollinearSeed, "collinear first three points must error")
}

// TestNew_DuplicateNode verifies duplicate coordinates are rejected wherever
// they appear in the input.
func TestNew_DuplicateNode(t *testing.T) {
	// Duplicate inside the seed triple.
	_, err := mesh.New([]float64{0, 0, 1}, []float64{0, 0, 1})
	assert.ErrorIs(t, err, mesh.ErrDuplicateNode, "seed duplicate must error")

	// Duplicate of an earlier node during incremental insertion.
	_, err = mesh.New([]float64{0, 1, 0, 1}, []float64{0, 0, 1, 0})
	assert.ErrorIs(t, err, mesh.ErrDuplicateNode, "inserted duplicate must error")
}

// TestSquare_Structure checks the 4-node square: every node is on the hull,
// the two diagonal-split triangles are present, and neighbor rings are
// mutually consistent.
func TestSquare_Structure(t *testing.T) {
	tr := unitSquare(t)
	require.Equal(t, 4, tr.Len())

	for i := 0; i < 4; i++ {
		b, err := tr.IsBoundary(i)
		require.NoError(t, err)
		assert.True(t, b, "square corner %d must be a hull node", i)
	}

	hull, err := tr.Hull()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, hull, "hull must be the CCW corner cycle")

	// Exactly one diagonal: total degree 2E = 2*(2*4-3) = 10.
	deg := 0
	for i := 0; i < 4; i++ {
		ring, errN := tr.Neighbors(i)
		require.NoError(t, errN)
		deg += len(ring)
	}
	assert.Equal(t, 10, deg, "square must carry 5 edges")
}

// TestNeighbors_Symmetry verifies invariant: j ∈ ring(i) ⟺ i ∈ ring(j),
// on a scattered cloud.
func TestNeighbors_Symmetry(t *testing.T) {
	tr := randomCloud(t, 60, 7)

	for i := 0; i < tr.Len(); i++ {
		ring, err := tr.Neighbors(i)
		require.NoError(t, err)
		for _, j := range ring {
			back, errJ := tr.Neighbors(j)
			require.NoError(t, errJ)
			assert.Contains(t, back, i, "adjacency must be symmetric (%d,%d)", i, j)
		}
	}
}

// TestDelaunay_InCircleProperty samples triangles from the rings and checks
// that no other node lies strictly inside any circumcircle.
func TestDelaunay_InCircleProperty(t *testing.T) {
	tr := randomCloud(t, 40, 11)
	pts := tr.Points()

	for k := 0; k < tr.Len(); k++ {
		ring, err := tr.Neighbors(k)
		require.NoError(t, err)
		boundary, err := tr.IsBoundary(k)
		require.NoError(t, err)

		pairs := len(ring)
		if boundary {
			pairs--
		}
		for i := 0; i < pairs; i++ {
			a, b := ring[i], ring[(i+1)%len(ring)]
			for q := range pts {
				if q == k || q == a || q == b {
					continue
				}
				assert.LessOrEqual(t, inCircle(pts[k], pts[a], pts[b], pts[q]), 1e-9,
					"node %d inside circumcircle of (%d,%d,%d)", q, k, a, b)
			}
		}
	}
}

// TestEuler_TriangleCount verifies T = 2n − 2 − h on scattered clouds of
// several sizes.
func TestEuler_TriangleCount(t *testing.T) {
	for _, n := range []int{10, 25, 80} {
		tr := randomCloud(t, n, int64(n))

		h := 0
		for i := 0; i < tr.Len(); i++ {
			b, err := tr.IsBoundary(i)
			require.NoError(t, err)
			if b {
				h++
			}
		}

		tris := 0
		for k := 0; k < tr.Len(); k++ {
			ring, err := tr.Neighbors(k)
			require.NoError(t, err)
			boundary, err := tr.IsBoundary(k)
			require.NoError(t, err)
			pairs := len(ring)
			if boundary {
				pairs--
			}
			for i := 0; i < pairs; i++ {
				a, b := ring[i], ring[(i+1)%len(ring)]
				if k < a && k < b {
					tris++
				}
			}
		}

		assert.Equal(t, 2*n-2-h, tris, "triangle count for n=%d, h=%d", n, h)
	}
}

// TestLocate_InsideAndOutside checks both Locate outcomes on the square.
func TestLocate_InsideAndOutside(t *testing.T) {
	tr := unitSquare(t)

	loc, err := tr.Locate(0.25, 0.25)
	require.NoError(t, err)
	require.True(t, loc.Inside, "interior point must locate inside")
	for _, v := range loc.Tri {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}

	loc, err = tr.Locate(2, 0.5)
	require.NoError(t, err)
	require.False(t, loc.Inside, "exterior point must locate outside")
	require.GreaterOrEqual(t, len(loc.Chain), 2, "visible chain needs an edge")
	assert.Contains(t, loc.Chain, 1, "right edge endpoints must be visible")
	assert.Contains(t, loc.Chain, 2, "right edge endpoints must be visible")
}

// TestLocate_ChainEdgesVisible verifies every chain edge is strictly
// visible from a far exterior point of a scattered cloud.
func TestLocate_ChainEdgesVisible(t *testing.T) {
	tr := randomCloud(t, 50, 3)
	pts := tr.Points()

	qx, qy := 100.0, -40.0
	loc, err := tr.Locate(qx, qy)
	require.NoError(t, err)
	require.False(t, loc.Inside)

	for i := 0; i+1 < len(loc.Chain); i++ {
		a, b := pts[loc.Chain[i]], pts[loc.Chain[i+1]]
		o := (b.X-a.X)*(qy-a.Y) - (b.Y-a.Y)*(qx-a.X)
		assert.Negative(t, o, "chain edge (%d,%d) must face the query", loc.Chain[i], loc.Chain[i+1])
	}
}

// TestInsert_OnHullEdge inserts a point lying exactly on a hull edge: it
// must join the hull as a boundary node splitting that edge, with no
// zero-area triangle left behind.
func TestInsert_OnHullEdge(t *testing.T) {
	tr, err := mesh.New(
		[]float64{0, 1, 0, 0.5},
		[]float64{0, 0, 1, 0},
	)
	require.NoError(t, err, "a point on a hull edge is valid input")

	b, err := tr.IsBoundary(3)
	require.NoError(t, err)
	assert.True(t, b, "an on-hull-edge node must be a boundary node")

	hull, err := tr.Hull()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2}, hull, "the node splits the hull edge 0-1")

	// T = 2n − 2 − h = 2 triangles, both with strictly positive area.
	pts := tr.Points()
	tris := 0
	for k := 0; k < tr.Len(); k++ {
		ring, errN := tr.Neighbors(k)
		require.NoError(t, errN)
		boundary, errB := tr.IsBoundary(k)
		require.NoError(t, errB)
		pairs := len(ring)
		if boundary {
			pairs--
		}
		for i := 0; i < pairs; i++ {
			a, b := ring[i], ring[(i+1)%len(ring)]
			if k < a && k < b {
				tris++
				area := (pts[a].X-pts[k].X)*(pts[b].Y-pts[k].Y) -
					(pts[a].Y-pts[k].Y)*(pts[b].X-pts[k].X)
				assert.Positive(t, area, "triangle (%d,%d,%d)", k, a, b)
			}
		}
	}
	assert.Equal(t, 2, tris)
}

// TestInsert_OnInteriorEdge inserts a point lying exactly on an interior
// edge (the square's diagonal): the swap cascade must clear the degenerate
// split and leave the node interior with full degree.
func TestInsert_OnInteriorEdge(t *testing.T) {
	// The square keeps diagonal 0-2; (0.5, 0.5) sits exactly on it.
	tr, err := mesh.New(
		[]float64{0, 1, 1, 0, 0.5},
		[]float64{0, 0, 1, 1, 0.5},
	)
	require.NoError(t, err)

	b, err := tr.IsBoundary(4)
	require.NoError(t, err)
	assert.False(t, b, "an on-interior-edge node stays interior")

	ring, err := tr.Neighbors(4)
	require.NoError(t, err)
	assert.Len(t, ring, 4, "the center connects to all four corners")

	hull, err := tr.Hull()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, hull, "the hull is untouched")
}

// TestAccessors_CopySafety verifies that mutating returned slices does not
// affect the structure.
func TestAccessors_CopySafety(t *testing.T) {
	tr := unitSquare(t)

	ring, err := tr.Neighbors(0)
	require.NoError(t, err)
	original := append([]int(nil), ring...)
	for i := range ring {
		ring[i] = -99
	}

	again, err := tr.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, original, again, "Neighbors must return a defensive copy")

	pts := tr.Points()
	pts[0].X = math.Inf(1)
	x, _, err := tr.XY(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x, "Points must return a defensive copy")
}

// TestNodeIndex_Errors verifies out-of-range accessor behavior.
func TestNodeIndex_Errors(t *testing.T) {
	tr := unitSquare(t)

	_, _, err := tr.XY(-1)
	assert.ErrorIs(t, err, mesh.ErrNodeIndex)
	_, err = tr.Neighbors(4)
	assert.ErrorIs(t, err, mesh.ErrNodeIndex)
	_, err = tr.IsBoundary(99)
	assert.ErrorIs(t, err, mesh.ErrNodeIndex)
}

// TestInsertionOrder_Independence triangulates the same cloud in two
// different insertion orders and compares the resulting edge sets: the
// Delaunay triangulation of points in general position is unique.
func TestInsertionOrder_Independence(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	n := 30
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64() * 10
		ys[i] = rng.Float64() * 10
	}

	tr1, err := mesh.New(xs, ys)
	require.NoError(t, err)

	// Reverse order, then map edges back to original ids.
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i := range xs {
		rx[i] = xs[n-1-i]
		ry[i] = ys[n-1-i]
	}
	tr2, err := mesh.New(rx, ry)
	require.NoError(t, err)

	assert.Equal(t, edgeSet(t, tr1, func(i int) int { return i }),
		edgeSet(t, tr2, func(i int) int { return n - 1 - i }),
		"edge set must not depend on insertion order")
}

func edgeSet(t *testing.T, tr *mesh.Triangulation, remap func(int) int) map[[2]int]bool {
	t.Helper()
	set := make(map[[2]int]bool)
	for i := 0; i < tr.Len(); i++ {
		ring, err := tr.Neighbors(i)
		require.NoError(t, err)
		for _, j := range ring {
			u, v := remap(i), remap(j)
			if u > v {
				u, v = v, u
			}
			set[[2]int{u, v}] = true
		}
	}

	return set
}

// inCircle is the lifted determinant: positive when q is strictly inside
// the circumcircle of CCW (a, b, c).
func inCircle(a, b, c, q mesh.Point) float64 {
	ax, ay := a.X-q.X, a.Y-q.Y
	bx, by := b.X-q.X, b.Y-q.Y
	cx, cy := c.X-q.X, c.Y-q.Y

	return (ax*ax+ay*ay)*(bx*cy-by*cx) -
		(bx*bx+by*by)*(ax*cy-ay*cx) +
		(cx*cx+cy*cy)*(ax*by-ay*bx)
}
