package surface_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/gradient"
	"github.com/katalvlaran/trimesh/mesh"
	"github.com/katalvlaran/trimesh/surface"
)

func cloud(t *testing.T, n int, seed int64) *mesh.Triangulation {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64() * 4
		ys[i] = rng.Float64() * 4
	}
	tr, err := mesh.New(xs, ys)
	require.NoError(t, err)

	return tr
}

func sample(tr *mesh.Triangulation, fn func(x, y float64) float64) []float64 {
	pts := tr.Points()
	f := make([]float64, len(pts))
	for i, p := range pts {
		f[i] = fn(p.X, p.Y)
	}

	return f
}

func analyticGrads(tr *mesh.Triangulation, dx, dy func(x, y float64) float64) []gradient.Vec {
	pts := tr.Points()
	g := make([]gradient.Vec, len(pts))
	for i, p := range pts {
		g[i] = gradient.Vec{DX: dx(p.X, p.Y), DY: dy(p.X, p.Y)}
	}

	return g
}

// TestLinear_Validation exercises the input guards.
func TestLinear_Validation(t *testing.T) {
	tr := cloud(t, 10, 1)
	f := sample(tr, func(x, y float64) float64 { return x })

	_, err := surface.Linear(nil, f, 0, 0)
	assert.ErrorIs(t, err, surface.ErrNilTriangulation)
	_, err = surface.Linear(tr, f[:4], 0, 0)
	assert.ErrorIs(t, err, surface.ErrFieldSize)

	_, err = surface.LinearAll(tr, f, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, surface.ErrShapeMismatch)
}

// TestLinear_AffineExactInside verifies exact reproduction of an affine
// field at arbitrary interior points.
func TestLinear_AffineExactInside(t *testing.T) {
	tr := cloud(t, 60, 3)
	f := sample(tr, func(x, y float64) float64 { return 3*x - 2*y + 1 })

	rng := rand.New(rand.NewSource(4))
	for q := 0; q < 100; q++ {
		x := 1 + rng.Float64()*2 // well inside [0,4]²
		y := 1 + rng.Float64()*2
		v, err := surface.Linear(tr, f, x, y)
		require.NoError(t, err)
		assert.InDelta(t, 3*x-2*y+1, v, 1e-9, "query (%g,%g)", x, y)
	}
}

// TestLinear_NodeReproduction verifies evaluation at node coordinates
// returns the node samples.
func TestLinear_NodeReproduction(t *testing.T) {
	tr := cloud(t, 40, 5)
	f := sample(tr, func(x, y float64) float64 { return x*x + y })
	pts := tr.Points()

	for i, p := range pts {
		v, err := surface.Linear(tr, f, p.X, p.Y)
		require.NoError(t, err)
		assert.InDelta(t, f[i], v, 1e-9, "node %d", i)
	}
}

// TestLinear_OnHullEdgeNode verifies node reproduction for a node that was
// inserted exactly on a hull edge: the evaluation must return its sample,
// not a degenerate-triangle artifact.
func TestLinear_OnHullEdgeNode(t *testing.T) {
	tr, err := mesh.New(
		[]float64{0, 1, 0, 0.5},
		[]float64{0, 0, 1, 0},
	)
	require.NoError(t, err)
	f := []float64{1, 9, 4, 5}

	v, err := surface.Linear(tr, f, 0.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5, v, 1e-12, "node 3 sits at (0.5, 0)")
	assert.False(t, math.IsNaN(v))
}

// TestLinear_Extrapolation checks the square: a query straight out from
// the right edge blends the edge endpoint values at the projection.
func TestLinear_Extrapolation(t *testing.T) {
	tr, err := mesh.New(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
	)
	require.NoError(t, err)
	f := []float64{0, 10, 30, 20}

	// Projects onto the right edge (nodes 1 and 2) at s = 0.5.
	v, err := surface.Linear(tr, f, 3, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 20, v, 1e-9)

	// Beyond a corner the projection clamps to the node itself.
	v, err = surface.Linear(tr, f, 2, -1)
	require.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-9)
}

// TestCubic_Validation exercises the guards, including the gradient slice.
func TestCubic_Validation(t *testing.T) {
	tr := cloud(t, 10, 7)
	f := sample(tr, func(x, y float64) float64 { return x })
	g := analyticGrads(tr,
		func(x, y float64) float64 { return 1 },
		func(x, y float64) float64 { return 0 })

	_, _, _, err := surface.Cubic(nil, f, g, 0, 0)
	assert.ErrorIs(t, err, surface.ErrNilTriangulation)
	_, _, _, err = surface.Cubic(tr, f[:4], g, 0, 0)
	assert.ErrorIs(t, err, surface.ErrFieldSize)
	_, _, _, err = surface.Cubic(tr, f, g[:4], 0, 0)
	assert.ErrorIs(t, err, surface.ErrFieldSize)

	_, _, _, err = surface.CubicAll(tr, f, g, []float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, surface.ErrShapeMismatch)
}

// TestCubic_QuadraticExact verifies that a quadratic field with analytic
// nodal gradients is reproduced exactly, value and partials, anywhere
// inside the hull.
func TestCubic_QuadraticExact(t *testing.T) {
	tr := cloud(t, 60, 9)
	f := sample(tr, func(x, y float64) float64 { return x*x + x*y - y*y + 2*x })
	g := analyticGrads(tr,
		func(x, y float64) float64 { return 2*x + y + 2 },
		func(x, y float64) float64 { return x - 2*y })

	rng := rand.New(rand.NewSource(10))
	for q := 0; q < 100; q++ {
		x := 1 + rng.Float64()*2
		y := 1 + rng.Float64()*2

		v, dx, dy, err := surface.Cubic(tr, f, g, x, y)
		require.NoError(t, err)
		assert.InDelta(t, x*x+x*y-y*y+2*x, v, 1e-8, "value at (%g,%g)", x, y)
		assert.InDelta(t, 2*x+y+2, dx, 1e-7, "d/dx at (%g,%g)", x, y)
		assert.InDelta(t, x-2*y, dy, 1e-7, "d/dy at (%g,%g)", x, y)
	}
}

// TestCubic_NodeReproduction verifies node samples come back untouched,
// with the supplied nodal gradients.
func TestCubic_NodeReproduction(t *testing.T) {
	tr := cloud(t, 40, 11)
	f := sample(tr, func(x, y float64) float64 { return x * y })
	g := analyticGrads(tr,
		func(x, y float64) float64 { return y },
		func(x, y float64) float64 { return x })
	pts := tr.Points()

	for i, p := range pts {
		v, dx, dy, err := surface.Cubic(tr, f, g, p.X, p.Y)
		require.NoError(t, err)
		assert.InDelta(t, f[i], v, 1e-9, "node %d value", i)
		assert.InDelta(t, g[i].DX, dx, 1e-7, "node %d d/dx", i)
		assert.InDelta(t, g[i].DY, dy, 1e-7, "node %d d/dy", i)
	}
}

// TestCubic_ExtrapolationContinuity verifies the extrapolated value just
// outside a hull edge matches the interior surface just inside it.
func TestCubic_ExtrapolationContinuity(t *testing.T) {
	tr, err := mesh.New(
		[]float64{0, 1, 1, 0, 0.5},
		[]float64{0, 0, 1, 1, 0.5},
	)
	require.NoError(t, err)
	f := []float64{0, 1, 3, 2, 1.5}
	g, err := gradient.Estimate(tr, f, gradient.DefaultOptions())
	require.NoError(t, err)

	const eps = 1e-7
	inVal, _, _, err := surface.Cubic(tr, f, g, 0.5, eps)
	require.NoError(t, err)
	outVal, _, _, err := surface.Cubic(tr, f, g, 0.5, -eps)
	require.NoError(t, err)

	assert.InDelta(t, inVal, outVal, 1e-5, "surface must be continuous across the hull")
}

// TestBatch_MatchesScalar verifies LinearAll and CubicAll agree with the
// scalar routines pointwise.
func TestBatch_MatchesScalar(t *testing.T) {
	tr := cloud(t, 50, 13)
	f := sample(tr, func(x, y float64) float64 { return x + y*y })
	g := analyticGrads(tr,
		func(x, y float64) float64 { return 1 },
		func(x, y float64) float64 { return 2 * y })

	xs := []float64{0.5, 2, 3.5, -1, 5}
	ys := []float64{0.5, 2, 1.0, 2, 2}

	lin, err := surface.LinearAll(tr, f, xs, ys)
	require.NoError(t, err)
	vals, dxs, dys, err := surface.CubicAll(tr, f, g, xs, ys)
	require.NoError(t, err)

	for i := range xs {
		lv, errL := surface.Linear(tr, f, xs[i], ys[i])
		require.NoError(t, errL)
		assert.Equal(t, lv, lin[i], "linear point %d", i)

		cv, cdx, cdy, errC := surface.Cubic(tr, f, g, xs[i], ys[i])
		require.NoError(t, errC)
		assert.Equal(t, cv, vals[i], "cubic point %d", i)
		assert.Equal(t, cdx, dxs[i], "cubic ddx point %d", i)
		assert.Equal(t, cdy, dys[i], "cubic ddy point %d", i)
	}
}
