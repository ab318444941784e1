package gradient

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/mesh"
)

// Estimate computes the gradient of f at every node by global curvature
// minimization (see the package doc for the functional and the sweep
// contract). The returned slice is index-aligned with f.
//
// In best-effort mode the result after MaxSweeps sweeps is returned without
// error even if the tolerance was not reached; in guarantee-convergence
// mode the relaxation continues in doubling batches and fails with
// ErrNoConvergence once SweepBudget sweeps have elapsed.
func Estimate(t *mesh.Triangulation, f []float64, opts Options) ([]Vec, error) {
	// 1) Validate the structure, the field, and the options.
	if t == nil || t.Len() < 3 {
		return nil, ErrNilTriangulation
	}
	n := t.Len()
	if len(f) != n {
		return nil, fmt.Errorf("%w: field %d, nodes %d", ErrFieldSize, len(f), n)
	}
	if opts.MaxSweeps < 1 || opts.Tol < 0 {
		return nil, fmt.Errorf("%w: MaxSweeps=%d Tol=%g", ErrBadOptions, opts.MaxSweeps, opts.Tol)
	}
	budget := opts.SweepBudget
	if budget < opts.MaxSweeps {
		budget = opts.MaxSweeps
	}

	pts := t.Points()
	rings := make([][]int, n)
	for k := 0; k < n; k++ {
		ring, err := t.Neighbors(k)
		if err != nil {
			return nil, fmt.Errorf("gradient: node %d: %w", k, err)
		}
		rings[k] = ring
	}

	// 2) Initialize every gradient from the local ring fit. This makes any
	//    affine field a fixed point of the relaxation from sweep zero.
	g := make([]Vec, n)
	for k := 0; k < n; k++ {
		g[k] = localFit(pts, rings[k], f, k)
	}

	// 3) Gauss–Seidel sweeps in ascending node order, batched: best-effort
	//    mode runs one batch of MaxSweeps; guarantee mode doubles the batch
	//    until convergence or budget exhaustion.
	batch := opts.MaxSweeps
	total := 0
	for {
		for s := 0; s < batch && total < budget; s++ {
			total++
			if sweep(pts, rings, f, g) <= opts.Tol {
				return g, nil
			}
		}
		if !opts.GuaranteeConvergence {
			return g, nil // best effort: unconverged state is still useful
		}
		if total >= budget {
			return g, fmt.Errorf("%w: %d sweeps, tol %g", ErrNoConvergence, total, opts.Tol)
		}
		batch *= 2
	}
}

// At computes the gradient of f at a single node from its immediate
// neighbor ring only: a weighted least-squares plane through the node and
// its neighbors, weights 1/d². Exact for affine fields.
func At(t *mesh.Triangulation, f []float64, node int) (Vec, error) {
	if t == nil || t.Len() < 3 {
		return Vec{}, ErrNilTriangulation
	}
	if len(f) != t.Len() {
		return Vec{}, fmt.Errorf("%w: field %d, nodes %d", ErrFieldSize, len(f), t.Len())
	}
	if node < 0 || node >= t.Len() {
		return Vec{}, fmt.Errorf("%w: %d (have %d nodes)", ErrNodeIndex, node, t.Len())
	}

	ring, err := t.Neighbors(node)
	if err != nil {
		return Vec{}, fmt.Errorf("gradient: node %d: %w", node, err)
	}

	return localFit(t.Points(), ring, f, node), nil
}

// sweep performs one full Gauss–Seidel pass and returns the largest
// per-node gradient-component change. Nodes are visited in ascending index
// order; updates within a sweep are visible to later nodes (documented,
// fixed, reproducible).
func sweep(pts []mesh.Point, rings [][]int, f []float64, g []Vec) float64 {
	dgmax := 0.0
	for k := range pts {
		ng := relaxNode(pts, rings[k], f, g, k)
		if d := math.Abs(ng.DX - g[k].DX); d > dgmax {
			dgmax = d
		}
		if d := math.Abs(ng.DY - g[k].DY); d > dgmax {
			dgmax = d
		}
		g[k] = ng
	}

	return dgmax
}

// relaxNode solves node k's 2×2 normal equations with all neighbor state
// fixed. For each arc k→n of length h and unit direction t, the σ = 0
// Hermite curvature contributes
//
//	∂Q/∂Gk = Σ (8/h)(Gk·t)t − Σ ((12/h²)Δf − (4/h)(Gn·t))t = 0.
func relaxNode(pts []mesh.Point, ring []int, f []float64, g []Vec, k int) Vec {
	var a11, a12, a22, b1, b2 float64
	for _, nb := range ring {
		dx := pts[nb].X - pts[k].X
		dy := pts[nb].Y - pts[k].Y
		h := math.Hypot(dx, dy)
		tx, ty := dx/h, dy/h

		m1 := g[nb].DX*tx + g[nb].DY*ty
		rhs := 12*(f[nb]-f[k])/(h*h) - 4*m1/h

		a11 += 8 * tx * tx / h
		a12 += 8 * tx * ty / h
		a22 += 8 * ty * ty / h
		b1 += rhs * tx
		b2 += rhs * ty
	}

	// The system is SPD whenever k has two non-collinear neighbors, which
	// every triangulation node has.
	det := a11*a22 - a12*a12

	return Vec{
		DX: (b1*a22 - b2*a12) / det,
		DY: (b2*a11 - b1*a12) / det,
	}
}

// localFit solves the weighted least-squares plane
//
//	min Σ w_n (f_n − f_k − u·Δx_n − v·Δy_n)²,  w_n = 1/d²_n
//
// over the neighbor ring of k and returns (u, v).
func localFit(pts []mesh.Point, ring []int, f []float64, k int) Vec {
	var a11, a12, a22, b1, b2 float64
	for _, nb := range ring {
		dx := pts[nb].X - pts[k].X
		dy := pts[nb].Y - pts[k].Y
		w := 1 / (dx*dx + dy*dy)
		df := f[nb] - f[k]

		a11 += w * dx * dx
		a12 += w * dx * dy
		a22 += w * dy * dy
		b1 += w * df * dx
		b2 += w * df * dy
	}

	det := a11*a22 - a12*a12

	return Vec{
		DX: (b1*a22 - b2*a12) / det,
		DY: (b2*a11 - b1*a12) / det,
	}
}
