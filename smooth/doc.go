// Package smooth fits a smooth surface to noisy node data on a
// triangulation.
//
// Surface minimizes the σ = 0 Hermite curvature functional Q₁(F) over all
// piecewise-cubic surfaces whose weighted residual
//
//	Q₂(F) = Σ wᵢ (Fᵢ − fᵢ)²
//
// does not exceed a caller-supplied bound. The constrained problem is
// solved through its penalized form Q₁ + p·Q₂: for a fixed penalty p the
// minimizer comes from Gauss–Seidel sweeps that relax each node's value
// and gradient together (a 3×3 linear solve per node), and an outer
// bracket-and-bisect search on p drives Q₂ into the band
// Bound·(1 ± BoundTol). Larger p pulls the surface toward the data and
// shrinks Q₂, so the map p → Q₂ is monotone and the bisection is safe.
//
// When the weighted least-squares plane through the data already satisfies
// the bound, no curvature at all is needed: Surface returns that plane
// together with ErrConstraintInactive. The error is informational; the
// result is fully valid. Callers typically loosen the bound or accept the
// plane.
//
// The result carries the smoothed values and the first partial derivatives
// of the fitted surface at every node, ready for surface.Cubic.
package smooth
