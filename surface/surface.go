package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/mesh"
)

// Linear interpolates f at (x, y) by the barycentric combination of the
// containing triangle's vertex values; outside the hull the value is the
// linear blend along the nearest visible hull edge (see the package doc).
func Linear(t *mesh.Triangulation, f []float64, x, y float64) (float64, error) {
	if t == nil || t.Len() < 3 {
		return 0, ErrNilTriangulation
	}
	if len(f) != t.Len() {
		return 0, fmt.Errorf("%w: field %d, nodes %d", ErrFieldSize, len(f), t.Len())
	}

	loc, err := t.Locate(x, y)
	if err != nil {
		return 0, err
	}

	if loc.Inside {
		w, err := baryWeights(t, loc.Tri, x, y)
		if err != nil {
			return 0, err
		}

		return w[0]*f[loc.Tri[0]] + w[1]*f[loc.Tri[1]] + w[2]*f[loc.Tri[2]], nil
	}

	a, b, s, err := nearestEdge(t, loc.Chain, x, y)
	if err != nil {
		return 0, err
	}

	return (1-s)*f[a] + s*f[b], nil
}

// LinearAll evaluates Linear over index-aligned coordinate slices. Queries
// are independent; a batch is just the scalar routine in a loop.
func LinearAll(t *mesh.Triangulation, f, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrShapeMismatch, len(xs), len(ys))
	}

	out := make([]float64, len(xs))
	for i := range xs {
		v, err := Linear(t, f, xs[i], ys[i])
		if err != nil {
			return nil, fmt.Errorf("surface: point %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// baryWeights returns the barycentric weights of (x, y) with respect to the
// CCW triangle tri.
func baryWeights(t *mesh.Triangulation, tri [3]int, x, y float64) ([3]float64, error) {
	var p [3]mesh.Point
	for i, v := range tri {
		pt, err := t.Point(v)
		if err != nil {
			return [3]float64{}, err
		}
		p[i] = pt
	}

	q := mesh.Point{X: x, Y: y}
	area := cross(p[0], p[1], p[2])

	return [3]float64{
		cross(p[1], p[2], q) / area,
		cross(p[2], p[0], q) / area,
		cross(p[0], p[1], q) / area,
	}, nil
}

// nearestEdge picks, among the visible hull edges of the chain, the one
// whose supporting line is nearest to (x, y), and returns its endpoints
// with the clamped projection parameter s ∈ [0, 1] along a→b.
func nearestEdge(t *mesh.Triangulation, chain []int, x, y float64) (a, b int, s float64, err error) {
	bestD2 := math.Inf(1)
	for i := 0; i+1 < len(chain); i++ {
		pa, errA := t.Point(chain[i])
		if errA != nil {
			return 0, 0, 0, errA
		}
		pb, errB := t.Point(chain[i+1])
		if errB != nil {
			return 0, 0, 0, errB
		}

		ex, ey := pb.X-pa.X, pb.Y-pa.Y
		si := ((x-pa.X)*ex + (y-pa.Y)*ey) / (ex*ex + ey*ey)
		si = math.Max(0, math.Min(1, si))
		qx, qy := pa.X+si*ex, pa.Y+si*ey
		d2 := (x-qx)*(x-qx) + (y-qy)*(y-qy)
		if d2 < bestD2 {
			bestD2 = d2
			a, b, s = chain[i], chain[i+1], si
		}
	}

	return a, b, s, nil
}

// cross returns the z-component of (b−a) × (c−a).
func cross(a, b, c mesh.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
