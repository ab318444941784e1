package smooth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/gradient"
	"github.com/katalvlaran/trimesh/mesh"
)

// Surface fits the minimum-curvature surface whose weighted residual Q₂
// lands in the band Bound·(1 ± BoundTol). See the package doc for the
// functional and the penalty search.
//
// On ErrConstraintInactive and ErrNoConvergence the returned Result is
// still valid (the plane, respectively the best surface found).
func Surface(t *mesh.Triangulation, f, w []float64, opts Options) (*Result, error) {
	// 1) Validation.
	if t == nil || t.Len() < 3 {
		return nil, ErrNilTriangulation
	}
	n := t.Len()
	if len(f) != n {
		return nil, fmt.Errorf("%w: field %d, nodes %d", ErrFieldSize, len(f), n)
	}
	if len(w) != n {
		return nil, fmt.Errorf("%w: weights %d, nodes %d", ErrFieldSize, len(w), n)
	}
	for i, wi := range w {
		if wi <= 0 || math.IsNaN(wi) {
			return nil, fmt.Errorf("%w: w[%d]=%g", ErrBadWeight, i, wi)
		}
	}
	if opts.Bound <= 0 || opts.BoundTol <= 0 || opts.BoundTol >= 1 ||
		opts.GradTol < 0 || opts.MaxSweeps < 1 || opts.MaxOuter < 1 {
		return nil, fmt.Errorf("%w: %+v", ErrBadOptions, opts)
	}

	pts := t.Points()
	rings := make([][]int, n)
	for k := 0; k < n; k++ {
		ring, err := t.Neighbors(k)
		if err != nil {
			return nil, fmt.Errorf("smooth: node %d: %w", k, err)
		}
		rings[k] = ring
	}

	// 2) Inactive-constraint check: the weighted least-squares plane is the
	//    zero-curvature minimizer of Q₂. If it already meets the bound, the
	//    constrained problem degenerates to it.
	if res, ok := planeFit(pts, f, w, opts.Bound); ok {
		return res, ErrConstraintInactive
	}

	// 3) Penalized solves, warm-started across penalty values. Start from
	//    the data itself with locally fitted gradients.
	st := &state{
		vals:  append([]float64(nil), f...),
		grads: make([]gradient.Vec, n),
	}
	for k := 0; k < n; k++ {
		g, err := gradient.At(t, f, k)
		if err != nil {
			return nil, fmt.Errorf("smooth: node %d: %w", k, err)
		}
		st.grads[k] = g
	}

	lo, hi := opts.Bound*(1-opts.BoundTol), opts.Bound*(1+opts.BoundTol)
	p := 1.0
	q2 := solve(pts, rings, f, w, st, p, opts)
	outer := 1

	// 4) Bracket: Q₂ decreases as p grows. Scale p by 4 toward the band.
	var pLow, pHigh float64 // q2(pLow) > hi, q2(pHigh) < lo
	for q2 > hi || q2 < lo {
		if outer >= opts.MaxOuter {
			return st.result(q2, p), fmt.Errorf("%w: %d solves, Q2=%g, bound=%g",
				ErrNoConvergence, outer, q2, opts.Bound)
		}
		if q2 > hi {
			pLow = p
			if pHigh > 0 {
				break // bracketed
			}
			p *= 4
		} else {
			pHigh = p
			if pLow > 0 {
				break
			}
			p /= 4
		}
		q2 = solve(pts, rings, f, w, st, p, opts)
		outer++
	}

	// 5) Bisect on log p inside the bracket.
	for q2 > hi || q2 < lo {
		if outer >= opts.MaxOuter {
			return st.result(q2, p), fmt.Errorf("%w: %d solves, Q2=%g, bound=%g",
				ErrNoConvergence, outer, q2, opts.Bound)
		}
		p = math.Sqrt(pLow * pHigh)
		q2 = solve(pts, rings, f, w, st, p, opts)
		outer++
		if q2 > hi {
			pLow = p
		} else {
			pHigh = p
		}
	}

	return st.result(q2, p), nil
}

type state struct {
	vals  []float64
	grads []gradient.Vec
}

func (s *state) result(q2, p float64) *Result {
	return &Result{
		Values:   append([]float64(nil), s.vals...),
		Grads:    append([]gradient.Vec(nil), s.grads...),
		Residual: q2,
		Penalty:  p,
	}
}

// solve relaxes the penalized functional Q₁ + p·Q₂ at fixed p via
// Gauss–Seidel sweeps over ascending node index and returns the achieved
// Q₂. The state is updated in place, warm-starting the next penalty.
func solve(pts []mesh.Point, rings [][]int, f, w []float64, st *state, p float64, opts Options) float64 {
	for s := 0; s < opts.MaxSweeps; s++ {
		dmax := 0.0
		for k := range pts {
			dmax = math.Max(dmax, relaxNode(pts, rings[k], f, w, st, p, k))
		}
		if dmax <= opts.GradTol {
			break
		}
	}

	q2 := 0.0
	for k := range f {
		d := st.vals[k] - f[k]
		q2 += w[k] * d * d
	}

	return q2
}

// relaxNode solves node k's 3×3 normal equations in (F, Gx, Gy) with all
// neighbor state fixed and returns the largest component change. Per arc
// k→n of length h and unit direction t the σ = 0 Hermite curvature is
//
//	12Δf²/h³ − 12Δf(m₀+m₁)/h² + 4(m₀²+m₀m₁+m₁²)/h,
//
// Δf = Fₙ−Fₖ, m₀ = Gₖ·t, m₁ = Gₙ·t; the data term adds p·wₖ(Fₖ−fₖ)².
func relaxNode(pts []mesh.Point, ring []int, f, w []float64, st *state, p float64, k int) float64 {
	var aff, afu, afv, auu, auv, avv float64
	var bf, bu, bv float64

	for _, nb := range ring {
		dx := pts[nb].X - pts[k].X
		dy := pts[nb].Y - pts[k].Y
		h := math.Hypot(dx, dy)
		tx, ty := dx/h, dy/h

		fn := st.vals[nb]
		m1 := st.grads[nb].DX*tx + st.grads[nb].DY*ty

		aff += 24 / (h * h * h)
		afu += 12 * tx / (h * h)
		afv += 12 * ty / (h * h)
		auu += 8 * tx * tx / h
		auv += 8 * tx * ty / h
		avv += 8 * ty * ty / h

		bf += 24*fn/(h*h*h) - 12*m1/(h*h)
		bu += tx * (12*fn/(h*h) - 4*m1/h)
		bv += ty * (12*fn/(h*h) - 4*m1/h)
	}

	aff += 2 * p * w[k]
	bf += 2 * p * w[k] * f[k]

	// Cramer on the symmetric 3×3 system.
	det := aff*(auu*avv-auv*auv) - afu*(afu*avv-auv*afv) + afv*(afu*auv-auu*afv)
	nf := bf*(auu*avv-auv*auv) - afu*(bu*avv-auv*bv) + afv*(bu*auv-auu*bv)
	nu := aff*(bu*avv-bv*auv) - bf*(afu*avv-auv*afv) + afv*(afu*bv-bu*afv)
	nv := aff*(auu*bv-auv*bu) - afu*(afu*bv-bu*afv) + bf*(afu*auv-auu*afv)

	newF, newU, newV := nf/det, nu/det, nv/det
	d := math.Max(math.Abs(newF-st.vals[k]),
		math.Max(math.Abs(newU-st.grads[k].DX), math.Abs(newV-st.grads[k].DY)))

	st.vals[k] = newF
	st.grads[k] = gradient.Vec{DX: newU, DY: newV}

	return d
}

// planeFit solves the weighted least-squares plane a + bx + cy through the
// data and, when its residual meets the bound, packages it as the Result.
func planeFit(pts []mesh.Point, f, w []float64, bound float64) (*Result, bool) {
	var s, sx, sy, sxx, sxy, syy, sf, sfx, sfy float64
	for k := range pts {
		x, y := pts[k].X, pts[k].Y
		s += w[k]
		sx += w[k] * x
		sy += w[k] * y
		sxx += w[k] * x * x
		sxy += w[k] * x * y
		syy += w[k] * y * y
		sf += w[k] * f[k]
		sfx += w[k] * f[k] * x
		sfy += w[k] * f[k] * y
	}

	det := s*(sxx*syy-sxy*sxy) - sx*(sx*syy-sxy*sy) + sy*(sx*sxy-sxx*sy)
	a := (sf*(sxx*syy-sxy*sxy) - sx*(sfx*syy-sxy*sfy) + sy*(sfx*sxy-sxx*sfy)) / det
	b := (s*(sfx*syy-sfy*sxy) - sf*(sx*syy-sxy*sy) + sy*(sx*sfy-sfx*sy)) / det
	c := (s*(sxx*sfy-sxy*sfx) - sx*(sx*sfy-sfx*sy) + sf*(sx*sxy-sxx*sy)) / det

	q2 := 0.0
	vals := make([]float64, len(pts))
	for k := range pts {
		vals[k] = a + b*pts[k].X + c*pts[k].Y
		d := vals[k] - f[k]
		q2 += w[k] * d * d
	}
	if q2 > bound {
		return nil, false
	}

	grads := make([]gradient.Vec, len(pts))
	for k := range grads {
		grads[k] = gradient.Vec{DX: b, DY: c}
	}

	return &Result{Values: vals, Grads: grads, Residual: q2, Penalty: 0}, true
}
