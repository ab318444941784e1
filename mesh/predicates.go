package mesh

// Geometric predicates shared by the builder, the locator and the derived
// packages. Plain float64 determinant arithmetic: the contract assumes
// inputs in general position, and cocircular quadrilaterals are accepted
// as-is (no swap on an exact tie).

// orient returns twice the signed area of triangle (a, b, c):
// positive if c lies strictly left of the directed line a→b, negative if
// strictly right, zero if collinear.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircle returns a positive value if d lies strictly inside the
// circumcircle of the CCW-ordered triangle (a, b, c), negative if strictly
// outside, and zero if the four points are cocircular.
func inCircle(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return alift*(bdx*cdy-bdy*cdx) +
		blift*(cdx*ady-cdy*adx) +
		clift*(adx*bdy-ady*bdx)
}
