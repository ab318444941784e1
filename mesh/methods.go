package mesh

import "fmt"

// Len returns the number of nodes.
func (t *Triangulation) Len() int {
	if t == nil {
		return 0
	}

	return len(t.pts)
}

// XY returns the coordinates of node i.
func (t *Triangulation) XY(i int) (float64, float64, error) {
	if t == nil {
		return 0, 0, ErrNilTriangulation
	}
	if i < 0 || i >= len(t.pts) {
		return 0, 0, fmt.Errorf("%w: %d (have %d nodes)", ErrNodeIndex, i, len(t.pts))
	}

	return t.pts[i].X, t.pts[i].Y, nil
}

// Point returns the coordinates of node i as a Point.
func (t *Triangulation) Point(i int) (Point, error) {
	x, y, err := t.XY(i)

	return Point{X: x, Y: y}, err
}

// Points returns a copy of all node coordinates, index-aligned with node ids.
func (t *Triangulation) Points() []Point {
	if t == nil {
		return nil
	}

	return append([]Point(nil), t.pts...)
}

// Neighbors returns a copy of node i's neighbor ring in CCW order. For a
// boundary node the first and last neighbors are its hull successor and
// predecessor; for an interior node the starting neighbor is arbitrary but
// fixed for the lifetime of the structure.
func (t *Triangulation) Neighbors(i int) ([]int, error) {
	if t == nil {
		return nil, ErrNilTriangulation
	}
	if i < 0 || i >= len(t.pts) {
		return nil, fmt.Errorf("%w: %d (have %d nodes)", ErrNodeIndex, i, len(t.pts))
	}

	return append([]int(nil), t.ring[i]...), nil
}

// IsBoundary reports whether node i lies on the convex hull.
func (t *Triangulation) IsBoundary(i int) (bool, error) {
	if t == nil {
		return false, ErrNilTriangulation
	}
	if i < 0 || i >= len(t.pts) {
		return false, fmt.Errorf("%w: %d (have %d nodes)", ErrNodeIndex, i, len(t.pts))
	}

	return t.bnd[i], nil
}

// Hull returns the convex hull as a CCW cycle of node indices, starting
// from the lowest-indexed hull node. There is always exactly one such cycle.
func (t *Triangulation) Hull() ([]int, error) {
	if t == nil || len(t.pts) < 3 {
		return nil, ErrNilTriangulation
	}

	start := -1
	for i := range t.pts {
		if t.bnd[i] {
			start = i

			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: no boundary nodes", ErrNilTriangulation)
	}

	cycle := []int{start}
	for v := t.hullNext(start); v != start; v = t.hullNext(v) {
		cycle = append(cycle, v)
		if len(cycle) > len(t.pts) {
			return nil, fmt.Errorf("%w: boundary cycle does not close", ErrNilTriangulation)
		}
	}

	return cycle, nil
}
