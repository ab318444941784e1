package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/gradient"
	"github.com/katalvlaran/trimesh/mesh"
)

// Cubic evaluates the C¹ cubic Hermite surface built from vertex values f
// and nodal gradients g at (x, y), returning the value and both partials.
// Queries outside the hull extrapolate along the nearest visible hull edge.
func Cubic(t *mesh.Triangulation, f []float64, g []gradient.Vec, x, y float64) (val, dvdx, dvdy float64, err error) {
	if t == nil || t.Len() < 3 {
		return 0, 0, 0, ErrNilTriangulation
	}
	n := t.Len()
	if len(f) != n {
		return 0, 0, 0, fmt.Errorf("%w: field %d, nodes %d", ErrFieldSize, len(f), n)
	}
	if len(g) != n {
		return 0, 0, 0, fmt.Errorf("%w: gradients %d, nodes %d", ErrFieldSize, len(g), n)
	}

	loc, err := t.Locate(x, y)
	if err != nil {
		return 0, 0, 0, err
	}

	if loc.Inside {
		return evalPatch(t, f, g, loc.Tri, x, y)
	}

	return extrapolateCubic(t, f, g, loc.Chain, x, y)
}

// CubicAll evaluates Cubic over index-aligned coordinate slices, returning
// the values and both partials for each query point.
func CubicAll(t *mesh.Triangulation, f []float64, g []gradient.Vec, xs, ys []float64) (vals, ddx, ddy []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, nil, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrShapeMismatch, len(xs), len(ys))
	}

	vals = make([]float64, len(xs))
	ddx = make([]float64, len(xs))
	ddy = make([]float64, len(xs))
	for i := range xs {
		v, dx, dy, errI := Cubic(t, f, g, xs[i], ys[i])
		if errI != nil {
			return nil, nil, nil, fmt.Errorf("surface: point %d: %w", i, errI)
		}
		vals[i], ddx[i], ddy[i] = v, dx, dy
	}

	return vals, ddx, ddy, nil
}

// ctPatch holds the Clough–Tocher control data of one macro triangle: the
// centroid split yields three cubic Bézier subpatches sharing the center
// ordinate c0 and the interior ring r.
type ctPatch struct {
	v  [3]mesh.Point // macro vertices, CCW
	c  mesh.Point    // centroid
	fv [3]float64    // vertex ordinates
	p  [3][2]float64 // p[i][0] = p(i→i+1), p[i][1] = p(i+1→i): outer edge tangent ordinates
	q  [3]float64    // ordinates toward the centroid
	bm [3]float64    // b111 of subpatch i (edge i→i+1 opposite the centroid)
	r  [3]float64    // interior ring ordinates r_i
	c0 float64       // center ordinate
}

// buildPatch assembles the Clough–Tocher data of the macro triangle tri.
// Outer-edge control ordinates are Hermite data; the interior ordinates are
// fixed by C¹ continuity across the three internal edges and across macro
// boundaries (linear cross-edge derivative along each outer edge).
func buildPatch(t *mesh.Triangulation, f []float64, g []gradient.Vec, tri [3]int) (ctPatch, error) {
	var pch ctPatch
	for i, vi := range tri {
		pt, err := t.Point(vi)
		if err != nil {
			return ctPatch{}, err
		}
		pch.v[i] = pt
		pch.fv[i] = f[vi]
	}
	pch.c = mesh.Point{
		X: (pch.v[0].X + pch.v[1].X + pch.v[2].X) / 3,
		Y: (pch.v[0].Y + pch.v[1].Y + pch.v[2].Y) / 3,
	}

	// 1) Hermite ordinates: one third of the directional derivative along
	//    each control leg.
	grads := [3]gradient.Vec{g[tri[0]], g[tri[1]], g[tri[2]]}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		pch.p[i][0] = pch.fv[i] + dirThird(grads[i], pch.v[i], pch.v[j])
		pch.p[i][1] = pch.fv[j] + dirThird(grads[j], pch.v[j], pch.v[i])
		pch.q[i] = pch.fv[i] + dirThird(grads[i], pch.v[i], pch.c)
	}

	// 2) b111 of each subpatch from the linear cross-edge derivative
	//    condition on the outer edge i→i+1.
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		va, vb := pch.v[i], pch.v[j]
		ex, ey := vb.X-va.X, vb.Y-va.Y
		nx, ny := ey, -ex // outward-ish normal; any non-tangent direction works

		du, dv := solveDir(va, vb, pch.c, nx, ny)
		dw := -du - dv

		q0 := du*pch.fv[i] + dv*pch.p[i][0] + dw*pch.q[i]
		q2 := du*pch.p[i][1] + dv*pch.fv[j] + dw*pch.q[j]
		pch.bm[i] = ((q0+q2)/2 - du*pch.p[i][0] - dv*pch.p[i][1]) / dw
	}

	// 3) Interior ring and center from C¹ across the internal edges.
	for i := 0; i < 3; i++ {
		pch.r[i] = (pch.bm[i] + pch.bm[(i+2)%3] + pch.q[i]) / 3
	}
	pch.c0 = (pch.r[0] + pch.r[1] + pch.r[2]) / 3

	return pch, nil
}

// evalPatch evaluates the macro triangle's surface at (x, y): pick the
// subpatch whose sector contains the point (smallest macro barycentric
// coordinate names the opposite sector) and evaluate its cubic Bézier form.
func evalPatch(t *mesh.Triangulation, f []float64, g []gradient.Vec, tri [3]int, x, y float64) (val, dvdx, dvdy float64, err error) {
	pch, err := buildPatch(t, f, g, tri)
	if err != nil {
		return 0, 0, 0, err
	}

	w, err := baryWeights(t, tri, x, y)
	if err != nil {
		return 0, 0, 0, err
	}
	m := 0
	if w[1] < w[m] {
		m = 1
	}
	if w[2] < w[m] {
		m = 2
	}
	i := (m + 1) % 3 // subpatch (V_i, V_j, centroid) spans the sector opposite V_m
	j := (i + 1) % 3

	// Control net of subpatch i in Bézier indices (u over V_i, v over V_j,
	// w over the centroid).
	b := [10]float64{
		pch.fv[i],   // b300
		pch.p[i][0], // b210
		pch.p[i][1], // b120
		pch.fv[j],   // b030
		pch.q[i],    // b201
		pch.bm[i],   // b111
		pch.q[j],    // b021
		pch.r[i],    // b102
		pch.r[j],    // b012
		pch.c0,      // b003
	}

	return evalBezier(pch.v[i], pch.v[j], pch.c, b, x, y)
}

// evalBezier evaluates the cubic Bézier triangle with corners (va, vb, vc)
// and control ordinates b at (x, y), returning value and Cartesian partials.
func evalBezier(va, vb, vc mesh.Point, b [10]float64, x, y float64) (val, dvdx, dvdy float64, err error) {
	// Barycentric coordinates and their Cartesian derivatives.
	m11, m12 := va.X-vc.X, vb.X-vc.X
	m21, m22 := va.Y-vc.Y, vb.Y-vc.Y
	det := m11*m22 - m12*m21

	u := (m22*(x-vc.X) - m12*(y-vc.Y)) / det
	v := (-m21*(x-vc.X) + m11*(y-vc.Y)) / det
	w := 1 - u - v

	ux, uy := m22/det, -m12/det
	vx, vy := -m21/det, m11/det
	wx, wy := -(ux + vx), -(uy + vy)

	b300, b210, b120, b030 := b[0], b[1], b[2], b[3]
	b201, b111, b021 := b[4], b[5], b[6]
	b102, b012, b003 := b[7], b[8], b[9]

	val = b300*u*u*u + 3*b210*u*u*v + 3*b201*u*u*w +
		3*b120*u*v*v + 6*b111*u*v*w + 3*b102*u*w*w +
		b030*v*v*v + 3*b021*v*v*w + 3*b012*v*w*w + b003*w*w*w

	fu := 3 * (b300*u*u + 2*b210*u*v + 2*b201*u*w + b120*v*v + 2*b111*v*w + b102*w*w)
	fv := 3 * (b210*u*u + 2*b120*u*v + 2*b111*u*w + b030*v*v + 2*b021*v*w + b012*w*w)
	fw := 3 * (b201*u*u + 2*b111*u*v + 2*b102*u*w + b021*v*v + 2*b012*v*w + b003*w*w)

	return val, fu*ux + fv*vx + fw*wx, fu*uy + fv*vy + fw*wy, nil
}

// extrapolateCubic evaluates the surface at the clamped projection of
// (x, y) onto the nearest visible hull edge: the edge Hermite cubic gives
// the tangential behavior and the normal derivative interpolates linearly
// between the endpoint gradients, matching the interior patch it borders.
func extrapolateCubic(t *mesh.Triangulation, f []float64, g []gradient.Vec, chain []int, x, y float64) (val, dvdx, dvdy float64, err error) {
	a, b, s, err := nearestEdge(t, chain, x, y)
	if err != nil {
		return 0, 0, 0, err
	}

	pa, err := t.Point(a)
	if err != nil {
		return 0, 0, 0, err
	}
	pb, err := t.Point(b)
	if err != nil {
		return 0, 0, 0, err
	}

	h := math.Hypot(pb.X-pa.X, pb.Y-pa.Y)
	tx, ty := (pb.X-pa.X)/h, (pb.Y-pa.Y)/h
	nx, ny := ty, -tx

	ma := g[a].DX*tx + g[a].DY*ty
	mb := g[b].DX*tx + g[b].DY*ty

	// Hermite basis on [0, 1].
	phi0 := 2*s*s*s - 3*s*s + 1
	phi1 := -2*s*s*s + 3*s*s
	psi0 := s*s*s - 2*s*s + s
	psi1 := s*s*s - s*s

	val = f[a]*phi0 + f[b]*phi1 + h*ma*psi0 + h*mb*psi1

	dphi0 := 6*s*s - 6*s
	dpsi0 := 3*s*s - 4*s + 1
	dpsi1 := 3*s*s - 2*s
	dt := (f[a]*dphi0 - f[b]*dphi0 + h*ma*dpsi0 + h*mb*dpsi1) / h
	dn := (1-s)*(g[a].DX*nx+g[a].DY*ny) + s*(g[b].DX*nx+g[b].DY*ny)

	return val, dt*tx + dn*nx, dt*ty + dn*ny, nil
}

// dirThird returns (g · (to − from)) / 3, the Hermite ordinate offset along
// a cubic control leg.
func dirThird(g gradient.Vec, from, to mesh.Point) float64 {
	return (g.DX*(to.X-from.X) + g.DY*(to.Y-from.Y)) / 3
}

// solveDir expresses the Cartesian direction (dx, dy) in the barycentric
// frame of the triangle (va, vb, vc): the returned (du, dv) satisfy
// du·(va−vc) + dv·(vb−vc) = (dx, dy) in derivative space.
func solveDir(va, vb, vc mesh.Point, dx, dy float64) (du, dv float64) {
	m11, m12 := va.X-vc.X, vb.X-vc.X
	m21, m22 := va.Y-vc.Y, vb.Y-vc.Y
	det := m11*m22 - m12*m21

	return (m22*dx - m12*dy) / det, (-m21*dx + m11*dy) / det
}
