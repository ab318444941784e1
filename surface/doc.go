// Package surface evaluates scalar fields over a triangulation at
// arbitrary points.
//
// Linear locates the triangle containing the query point and returns the
// barycentric combination of its vertex values: fast, C⁰ only (the value
// is continuous but its gradient jumps across edges).
//
// Cubic evaluates a C¹ cubic Hermite patch (the σ = 0 member of the
// tension-spline family) built from vertex values and precomputed nodal
// gradients: each macro triangle is split at its centroid into three cubic
// Bézier subpatches whose value along every outer edge is the Hermite
// cubic of the edge data and whose cross-edge derivative varies linearly,
// so adjacent macro triangles join with continuous value and gradient.
// Cubic returns the value and both first partials.
//
// Points outside the convex hull extrapolate: the visible hull edge whose
// supporting line is nearest serves as a degenerate "triangle", and the
// field is evaluated at the projection of the query onto that edge
// (linear blend for Linear, edge Hermite cubic plus linearly interpolated
// normal derivative for Cubic - which matches the interior patches, so
// extrapolated values join the surface continuously).
//
// Evaluating at an exact node coordinate reproduces that node's sample
// value. Batch forms (LinearAll, CubicAll) repeat the single-point
// procedure; queries are independent and may be issued concurrently
// against the same read-only triangulation.
package surface
