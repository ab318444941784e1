package gradient

import "errors"

// Sentinel errors returned by gradient estimation.
var (
	// ErrNilTriangulation indicates a nil or unbuilt triangulation.
	ErrNilTriangulation = errors.New("gradient: triangulation is nil")

	// ErrFieldSize indicates the field slice length differs from the node
	// count; rejected before any iteration starts.
	ErrFieldSize = errors.New("gradient: field length does not match node count")

	// ErrNodeIndex indicates a node index outside [0, n).
	ErrNodeIndex = errors.New("gradient: node index out of range")

	// ErrBadOptions indicates a non-positive sweep count or negative
	// tolerance in Options.
	ErrBadOptions = errors.New("gradient: MaxSweeps must be ≥ 1 and Tol ≥ 0")

	// ErrNoConvergence indicates the sweep budget ran out before the
	// tolerance was met in guarantee-convergence mode. Recoverable: retry
	// with a larger budget or a looser tolerance.
	ErrNoConvergence = errors.New("gradient: relaxation did not converge within the sweep budget")
)

// Vec is a gradient vector: the partial derivatives of the field at a node.
type Vec struct {
	DX float64
	DY float64
}

// Options configures the global relaxation.
type Options struct {
	// MaxSweeps is the number of sweeps per attempt. Must be ≥ 1.
	MaxSweeps int

	// Tol is the convergence threshold on the largest per-node
	// gradient-component change in one sweep. Must be ≥ 0; zero forces the
	// full MaxSweeps.
	Tol float64

	// GuaranteeConvergence keeps sweeping in doubling batches until Tol is
	// met (up to SweepBudget) instead of returning best effort.
	GuaranteeConvergence bool

	// SweepBudget caps the total sweep count in guarantee mode.
	SweepBudget int
}

// DefaultOptions returns the defaults matching the historical tuning for
// σ = 0: three sweeps, tolerance 1e-3, best effort, budget 1024.
func DefaultOptions() Options {
	return Options{
		MaxSweeps:            3,
		Tol:                  1e-3,
		GuaranteeConvergence: false,
		SweepBudget:          1024,
	}
}
