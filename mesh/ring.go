package mesh

// Neighbor-ring bookkeeping. A ring is the CCW-ordered neighbor list of one
// node. Interior rings are circular (wrap-around pairs are valid); boundary
// rings are linear from hull successor to hull predecessor. Consecutive
// ring entries (a, b) of node k always name the CCW triangle (k, a, b).

// ringIndex returns the position of v in k's ring, or -1.
func (t *Triangulation) ringIndex(k, v int) int {
	for i, nb := range t.ring[k] {
		if nb == v {
			return i
		}
	}

	return -1
}

// ringNext returns the neighbor following v in k's CCW ring, or -1 when v
// is the last neighbor of a boundary ring (no triangle on that side).
func (t *Triangulation) ringNext(k, v int) int {
	i := t.ringIndex(k, v)
	if i < 0 {
		return -1
	}
	if i == len(t.ring[k])-1 {
		if t.bnd[k] {
			return -1
		}

		return t.ring[k][0]
	}

	return t.ring[k][i+1]
}

// ringPrev returns the neighbor preceding v in k's CCW ring, or -1 when v
// is the first neighbor of a boundary ring.
func (t *Triangulation) ringPrev(k, v int) int {
	i := t.ringIndex(k, v)
	if i < 0 {
		return -1
	}
	if i == 0 {
		if t.bnd[k] {
			return -1
		}

		return t.ring[k][len(t.ring[k])-1]
	}

	return t.ring[k][i-1]
}

// apexLeft returns the node completing the triangle on the left side of the
// directed edge u→v, or -1 if that side is outside the hull.
func (t *Triangulation) apexLeft(u, v int) int {
	return t.ringNext(u, v)
}

// apexRight returns the node completing the triangle on the right side of
// the directed edge u→v, or -1 if that side is outside the hull.
func (t *Triangulation) apexRight(u, v int) int {
	return t.ringPrev(u, v)
}

// ringInsertAfter inserts nb into k's ring immediately after the neighbor
// `after`. Reports false if `after` is not present.
func (t *Triangulation) ringInsertAfter(k, after, nb int) bool {
	i := t.ringIndex(k, after)
	if i < 0 {
		return false
	}
	r := t.ring[k]
	r = append(r, 0)
	copy(r[i+2:], r[i+1:])
	r[i+1] = nb
	t.ring[k] = r

	return true
}

// ringRemove deletes nb from k's ring. Reports false if nb is not present.
func (t *Triangulation) ringRemove(k, nb int) bool {
	i := t.ringIndex(k, nb)
	if i < 0 {
		return false
	}
	t.ring[k] = append(t.ring[k][:i], t.ring[k][i+1:]...)

	return true
}

// ringPrepend puts nb at the front of k's ring (new hull successor).
func (t *Triangulation) ringPrepend(k, nb int) {
	t.ring[k] = append([]int{nb}, t.ring[k]...)
}

// ringAppend puts nb at the end of k's ring (new hull predecessor, or the
// wedge-closing neighbor when a boundary node becomes interior).
func (t *Triangulation) ringAppend(k, nb int) {
	t.ring[k] = append(t.ring[k], nb)
}

// hullNext returns the hull successor of boundary node k (first ring entry).
func (t *Triangulation) hullNext(k int) int {
	return t.ring[k][0]
}

// hullPrev returns the hull predecessor of boundary node k (last ring entry).
func (t *Triangulation) hullPrev(k int) int {
	return t.ring[k][len(t.ring[k])-1]
}
