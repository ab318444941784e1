package mesh

import "fmt"

// New builds a Delaunay triangulation from two equal-length coordinate
// slices. It is the slice-oriented form of NewFromPoints.
//
// Preconditions and validation (in order):
//  1. len(xs) must equal len(ys) (ErrShapeMismatch).
//  2. At least three points (ErrInsufficientPoints).
//  3. The first three points must not be collinear (ErrCollinearSeed).
//  4. No two points may coincide exactly (ErrDuplicateNode).
//
// Complexity: O(n²) worst case, near O(n·√n) for typical inputs (each
// insertion walks from the previously inserted node).
func New(xs, ys []float64) (*Triangulation, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrShapeMismatch, len(xs), len(ys))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}

	return NewFromPoints(pts)
}

// NewFromPoints builds a Delaunay triangulation from the given points, in
// input order. The returned structure is read-only; see the Triangulation
// doc for the adjacency representation.
//
// Algorithm: the first three points form the seed triangle; every further
// point is located by walking the current triangulation, connected to the
// vertices of its containing triangle (or to the visible hull chain when
// outside), and the Delaunay property is restored by an explicit work-stack
// of in-circle tests and diagonal swaps. The cascade terminates because each
// swap strictly improves the local in-circle criterion and the triangle
// count is finite; an inconsistency during a swap is fatal (ErrInternalSwap).
func NewFromPoints(pts []Point) (*Triangulation, error) {
	n := len(pts)
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, n)
	}

	t := &Triangulation{
		pts:  append([]Point(nil), pts...),
		ring: make([][]int, n),
		bnd:  make([]bool, n),
	}

	if err := t.seed(); err != nil {
		return nil, err
	}

	for k := 3; k < n; k++ {
		if err := t.insert(k); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// seed initializes the triangulation with the first three points as one
// CCW triangle. All three nodes are boundary nodes.
func (t *Triangulation) seed() error {
	// Exact coordinate coincidence is a duplicate, not merely a collinearity.
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if t.pts[i] == t.pts[j] {
				return fmt.Errorf("%w: nodes %d and %d", ErrDuplicateNode, i, j)
			}
		}
	}

	o := orient(t.pts[0], t.pts[1], t.pts[2])
	if o == 0 {
		return fmt.Errorf("%w: nodes 0, 1, 2", ErrCollinearSeed)
	}

	// Hull cycle 0→1→2 when already CCW, 0→2→1 otherwise. Each boundary
	// ring runs from hull successor to hull predecessor.
	if o > 0 {
		t.ring[0] = []int{1, 2}
		t.ring[1] = []int{2, 0}
		t.ring[2] = []int{0, 1}
	} else {
		t.ring[0] = []int{2, 1}
		t.ring[2] = []int{1, 0}
		t.ring[1] = []int{0, 2}
	}
	t.bnd[0], t.bnd[1], t.bnd[2] = true, true, true

	return nil
}

// insert adds node k to the triangulation built over nodes [0, k).
func (t *Triangulation) insert(k int) error {
	p := t.pts[k]

	// 1) Locate the containing triangle or the visible hull chain, walking
	//    from the previously inserted node for locality.
	loc := t.walk(p.X, p.Y, k-1)

	// 2) Reject exact coordinate coincidence with an existing node.
	var near []int
	if loc.Inside {
		near = loc.Tri[:]
	} else {
		near = loc.Chain
	}
	for _, v := range near {
		if t.pts[v] == p {
			return fmt.Errorf("%w: nodes %d and %d", ErrDuplicateNode, v, k)
		}
	}

	// 3) Connect k and collect the edges opposite it. Every stacked edge
	//    (u, v) keeps k on the left of u→v.
	var stack [][2]int
	switch u, v, onHull := t.hullEdgeUnder(loc, p); {
	case onHull:
		// k lies exactly on the hull edge u→v: it joins the hull between u
		// and v as a boundary node. The old edge u-v survives the connection
		// as a zero-area triangle with k; the first in-circle test of the
		// cascade always swaps it for k-apex, restoring positive areas.
		t.connectHull(k, []int{u, v})
		stack = append(stack, [2]int{v, u})
	case loc.Inside:
		a, b, c := loc.Tri[0], loc.Tri[1], loc.Tri[2]
		t.connectInterior(k, a, b, c)
		stack = append(stack, [2]int{a, b}, [2]int{b, c}, [2]int{c, a})
	default:
		t.connectHull(k, loc.Chain)
		for i := 0; i+1 < len(loc.Chain); i++ {
			// Hull edges run CCW with k outside (to their right), so the
			// reversed edge keeps k on the left.
			stack = append(stack, [2]int{loc.Chain[i+1], loc.Chain[i]})
		}
	}

	// 4) Restore the Delaunay property around k with an explicit work
	//    stack (no recursion, bounded memory).
	return t.restoreDelaunay(k, stack)
}

// hullEdgeUnder reports the hull edge of the located triangle that p lies
// exactly on, if any. A point inside the hull can sit on at most one hull
// edge (a point on two would be a hull vertex, rejected as a duplicate
// before this runs). For the CCW triangle (a, b, c) an edge a→b with no
// apex on its right is a CCW hull edge.
func (t *Triangulation) hullEdgeUnder(loc Location, p Point) (u, v int, ok bool) {
	if !loc.Inside {
		return 0, 0, false
	}
	for i := 0; i < 3; i++ {
		a, b := loc.Tri[i], loc.Tri[(i+1)%3]
		if orient(t.pts[a], t.pts[b], p) == 0 && t.apexRight(a, b) < 0 {
			return a, b, true
		}
	}

	return 0, 0, false
}

// connectInterior joins k, lying inside the CCW triangle (a, b, c), to all
// three of its vertices.
func (t *Triangulation) connectInterior(k, a, b, c int) {
	// In each vertex ring the new node slots between the other two
	// triangle vertices; around k the three vertices keep their CCW order.
	t.ringInsertAfter(a, b, k)
	t.ringInsertAfter(b, c, k)
	t.ringInsertAfter(c, a, k)
	t.ring[k] = []int{a, b, c}
	t.bnd[k] = false
}

// connectHull joins node k to the hull chain v0..vm (CCW hull order):
// either the chain visible from an exterior point, or the two endpoints of
// a hull edge k splits. k becomes a boundary node with hull successor vm
// and predecessor v0; the interior chain nodes leave the hull.
func (t *Triangulation) connectHull(k int, chain []int) {
	m := len(chain) - 1
	v0, vm := chain[0], chain[m]

	// k's ring spans CCW from its hull successor vm back to v0.
	rk := make([]int, 0, m+1)
	for i := m; i >= 0; i-- {
		rk = append(rk, chain[i])
	}
	t.ring[k] = rk
	t.bnd[k] = true

	// Chain endpoints stay on the hull: k is v0's new successor and vm's
	// new predecessor.
	t.ringPrepend(v0, k)
	t.ringAppend(vm, k)

	// Interior chain nodes become interior: k closes their wedge.
	for i := 1; i < m; i++ {
		t.ringAppend(chain[i], k)
		t.bnd[chain[i]] = false
	}
}

// restoreDelaunay runs the swap cascade around the freshly inserted node k.
// Each stacked edge (u, v) has k as its left apex; if the right apex w
// violates the in-circle criterion the diagonal u-v is replaced by k-w and
// the two newly exposed edges are stacked in turn.
func (t *Triangulation) restoreDelaunay(k int, stack [][2]int) error {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		u, v := e[0], e[1]

		if got := t.apexLeft(u, v); got != k {
			return fmt.Errorf("%w: edge %d-%d has left apex %d, want %d", ErrInternalSwap, u, v, got, k)
		}
		w := t.apexRight(u, v)
		if w < 0 {
			continue // hull edge, nothing opposite
		}

		// Quadrilateral (u, v, k | w): swap unless w is outside or exactly
		// on the circumcircle of (u, v, k).
		if inCircle(t.pts[u], t.pts[v], t.pts[k], t.pts[w]) <= 0 {
			continue
		}

		if !t.ringRemove(u, v) || !t.ringRemove(v, u) {
			return fmt.Errorf("%w: edge %d-%d vanished mid-swap", ErrInternalSwap, u, v)
		}
		if !t.ringInsertAfter(k, u, w) || !t.ringInsertAfter(w, v, k) {
			return fmt.Errorf("%w: cannot link %d-%d after swapping %d-%d", ErrInternalSwap, k, w, u, v)
		}

		stack = append(stack, [2]int{u, w}, [2]int{w, v})
	}

	return nil
}
