// Package gradient estimates nodal gradients of a scalar field sampled at
// the nodes of a triangulation.
//
// Global mode (Estimate) models the field as the C¹ surface assembled from
// cubic Hermite patches along every triangulation arc (a tension spline
// with tension σ = 0) and picks the nodal gradients minimizing the
// linearized curvature functional
//
//	Q(G) = Σ over arcs of ∫ (d²F/dT²)² dT
//
// subject to interpolating the nodal values. The minimization runs as
// Gauss–Seidel relaxation: full sweeps over all nodes in ascending index
// order (fixed, so results are bit-reproducible), each node solving its
// 2×2 normal equations against the current neighbor state, until the
// largest per-node change falls below Tol or the sweep budget is spent.
//
// Gradients are initialized from the local ring fit, which reproduces any
// affine field exactly; relaxation preserves that fixed point, so affine
// fields are recovered exactly for every sweep count.
//
// Two operating modes:
//
//   - best effort (default): return the current state after MaxSweeps
//     sweeps, converged or not;
//   - guarantee convergence: keep sweeping in doubling batches until Tol is
//     met, failing with ErrNoConvergence once SweepBudget is exhausted.
//
// Local mode (At) fits a weighted least-squares plane through one node and
// its immediate neighbor ring (inverse-square-distance weights) and returns
// the plane's slope: cheaper when only a handful of gradients are needed,
// comparable accuracy at that node, no global curvature minimization.
//
// Complexity: Estimate O(sweeps·E), At O(deg(node)); E = arc count.
package gradient
