package mesh

import "fmt"

// Locate finds the CCW triangle containing the point (x, y), or - for a
// point outside the convex hull - the contiguous chain of visible hull
// nodes, which extrapolating callers treat as a set of degenerate
// "triangles". Points exactly on an edge or node count as inside.
//
// Complexity: O(√n) expected per query on well-distributed points.
func (t *Triangulation) Locate(x, y float64) (Location, error) {
	if t == nil || len(t.pts) < 3 {
		return Location{}, ErrNilTriangulation
	}

	return t.walk(x, y, 0), nil
}

// walk is the oriented triangle walk: starting from a triangle incident to
// `start`, repeatedly step across the edge the query point lies strictly
// right of, until the point is contained or a hull edge is crossed.
// A step counter guards against cycling on degenerate data; the exhaustive
// scan fallback keeps the result well defined in that case.
func (t *Triangulation) walk(x, y float64, start int) Location {
	p := Point{X: x, Y: y}

	// First triangle incident to the start node: consecutive ring pair.
	a := start
	b := t.ring[a][0]
	c := t.ring[a][1]

	maxSteps := 4 * len(t.pts)
	for step := 0; step < maxSteps; step++ {
		// Find an edge the point lies strictly right of; prefer the most
		// violated edge for a shorter path.
		eu, ev := -1, -1
		worst := 0.0
		for _, e := range [3][2]int{{a, b}, {b, c}, {c, a}} {
			if o := orient(t.pts[e[0]], t.pts[e[1]], p); o < worst {
				worst = o
				eu, ev = e[0], e[1]
			}
		}
		if eu < 0 {
			return Location{Inside: true, Tri: [3]int{a, b, c}}
		}

		w := t.apexRight(eu, ev)
		if w < 0 {
			// Crossed a hull edge: the point is outside, and eu→ev is a
			// visible hull edge (hull runs CCW through it).
			return Location{Inside: false, Chain: t.visibleChain(eu, ev, p)}
		}

		// Step into the CCW triangle on the far side of eu→ev.
		a, b, c = ev, eu, w
	}

	return t.scan(p)
}

// visibleChain grows the hull edge u→v into the maximal contiguous run of
// hull edges visible from p, returned as nodes in CCW hull order.
func (t *Triangulation) visibleChain(u, v int, p Point) []int {
	chain := []int{u, v}

	// Extend forward from v.
	for {
		nxt := t.hullNext(chain[len(chain)-1])
		if nxt == chain[0] || orient(t.pts[chain[len(chain)-1]], t.pts[nxt], p) >= 0 {
			break
		}
		chain = append(chain, nxt)
	}
	// Extend backward from u.
	for {
		prv := t.hullPrev(chain[0])
		if prv == chain[len(chain)-1] || orient(t.pts[prv], t.pts[chain[0]], p) >= 0 {
			break
		}
		chain = append([]int{prv}, chain...)
	}

	return chain
}

// scan is the exhaustive fallback locator: test every triangle, then fall
// back to the visible hull scan. Only reachable when the oriented walk
// cycles on degenerate geometry.
func (t *Triangulation) scan(p Point) Location {
	for k := range t.pts {
		r := t.ring[k]
		last := len(r) - 1
		if !t.bnd[k] {
			last = len(r)
		}
		for i := 0; i < last; i++ {
			a, b := r[i], r[(i+1)%len(r)]
			if orient(t.pts[k], t.pts[a], p) >= 0 &&
				orient(t.pts[a], t.pts[b], p) >= 0 &&
				orient(t.pts[b], t.pts[k], p) >= 0 {
				return Location{Inside: true, Tri: [3]int{k, a, b}}
			}
		}
	}

	// Outside: find any visible hull edge and grow it.
	for k := range t.pts {
		if !t.bnd[k] {
			continue
		}
		nxt := t.hullNext(k)
		if orient(t.pts[k], t.pts[nxt], p) < 0 {
			return Location{Inside: false, Chain: t.visibleChain(k, nxt, p)}
		}
	}

	// Unreachable for a consistent structure; return the first hull edge so
	// callers always receive a usable chain.
	for k := range t.pts {
		if t.bnd[k] {
			return Location{Inside: false, Chain: []int{k, t.hullNext(k)}}
		}
	}

	return Location{}
}

// String implements fmt.Stringer for debugging convenience.
func (l Location) String() string {
	if l.Inside {
		return fmt.Sprintf("inside triangle (%d %d %d)", l.Tri[0], l.Tri[1], l.Tri[2])
	}

	return fmt.Sprintf("outside hull, visible chain %v", l.Chain)
}
