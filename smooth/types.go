package smooth

import (
	"errors"

	"github.com/katalvlaran/trimesh/gradient"
)

// Sentinel errors returned by Surface.
var (
	// ErrNilTriangulation indicates a nil or unbuilt triangulation.
	ErrNilTriangulation = errors.New("smooth: triangulation is nil")

	// ErrFieldSize indicates a field or weight slice whose length differs
	// from the node count.
	ErrFieldSize = errors.New("smooth: field length does not match node count")

	// ErrBadWeight indicates a non-positive weight; every node needs a
	// positive residual weight.
	ErrBadWeight = errors.New("smooth: weights must be positive")

	// ErrBadOptions indicates a non-positive bound, a tolerance outside
	// (0, 1), or a non-positive iteration limit.
	ErrBadOptions = errors.New("smooth: invalid options")

	// ErrNoConvergence indicates the outer penalty search exhausted
	// MaxOuter solves without landing Q₂ in the target band. Recoverable:
	// the best surface found is still returned.
	ErrNoConvergence = errors.New("smooth: penalty search did not converge")

	// ErrConstraintInactive indicates the residual bound holds already for
	// the weighted least-squares plane, so the curvature-free minimizer is
	// that plane. Returned alongside a fully valid Result.
	ErrConstraintInactive = errors.New("smooth: residual bound is inactive, returning the least-squares plane")
)

// Options configures the constrained fit.
type Options struct {
	// Bound is the target value of the weighted residual Q₂. A common
	// choice is the node count when weights are inverse error variances.
	Bound float64

	// BoundTol is the relative half-width of the acceptance band around
	// Bound. Must lie in (0, 1).
	BoundTol float64

	// GradTol is the inner convergence threshold on the largest per-node
	// change of value or gradient component in one sweep.
	GradTol float64

	// MaxSweeps caps the inner Gauss–Seidel sweeps per penalty value.
	MaxSweeps int

	// MaxOuter caps the outer penalty solves (bracketing and bisection).
	MaxOuter int
}

// DefaultOptions returns defaults for the given residual bound: a 1%
// acceptance band, inner tolerance 1e-3, and generous iteration caps.
func DefaultOptions(bound float64) Options {
	return Options{
		Bound:     bound,
		BoundTol:  0.01,
		GradTol:   1e-3,
		MaxSweeps: 64,
		MaxOuter:  32,
	}
}

// Result is a fitted surface: node values, nodal first partials, the
// achieved residual Q₂, and the final penalty parameter.
type Result struct {
	Values   []float64
	Grads    []gradient.Vec
	Residual float64
	Penalty  float64
}
