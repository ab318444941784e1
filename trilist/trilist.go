// Package trilist extracts read-only triangle views from a built
// triangulation: the plain triangle list, per-triangle neighbor ids, and
// unique arc (edge) identifiers.
//
// Enumeration is a pure function of the adjacency structure: triangles are
// emitted in ascending order of their least vertex, and for equal least
// vertices in that vertex's CCW ring order. Every triangle appears exactly
// once with its vertices counter-clockwise.
//
// Complexity: O(T) time and space for all three views, T = triangle count.
package trilist

import (
	"fmt"

	"github.com/katalvlaran/trimesh/mesh"
)

// NoNeighbor is the sentinel neighbor id for a hull-adjacent edge.
const NoNeighbor = -1

// Triangle is an ordered CCW triple of node indices.
type Triangle [3]int

// Triangles returns every triangle of the triangulation exactly once,
// vertices CCW, in the deterministic order documented on the package.
func Triangles(t *mesh.Triangulation) ([]Triangle, error) {
	if t == nil || t.Len() < 3 {
		return nil, mesh.ErrNilTriangulation
	}

	var tris []Triangle
	for k := 0; k < t.Len(); k++ {
		ring, err := t.Neighbors(k)
		if err != nil {
			return nil, fmt.Errorf("trilist: node %d: %w", k, err)
		}
		boundary, err := t.IsBoundary(k)
		if err != nil {
			return nil, fmt.Errorf("trilist: node %d: %w", k, err)
		}

		// Consecutive ring entries (a, b) name the CCW triangle (k, a, b);
		// interior rings wrap around, boundary rings do not. Emitting only
		// from the least vertex keeps every triangle unique.
		pairs := len(ring)
		if boundary {
			pairs--
		}
		for i := 0; i < pairs; i++ {
			a, b := ring[i], ring[(i+1)%len(ring)]
			if k < a && k < b {
				tris = append(tris, Triangle{k, a, b})
			}
		}
	}

	return tris, nil
}

// WithNeighbors returns the triangle list together with, per triangle, the
// ids of the three adjacent triangles. Slot j holds the neighbor across the
// edge opposite vertex j, or NoNeighbor when that edge lies on the hull.
func WithNeighbors(t *mesh.Triangulation) ([]Triangle, [][3]int, error) {
	tris, err := Triangles(t)
	if err != nil {
		return nil, nil, err
	}

	nbr := neighborTable(tris)

	return tris, nbr, nil
}

// WithArcs returns the triangle list, the neighbor table, and per triangle
// the identifiers of its three arcs. Slot j names the arc opposite vertex
// j. An arc id is shared by the two triangles bordering the edge (or held
// by one triangle alone on the hull); ids are assigned in first-seen order
// over the deterministic triangle enumeration, starting at zero.
func WithArcs(t *mesh.Triangulation) ([]Triangle, [][3]int, [][3]int, error) {
	tris, err := Triangles(t)
	if err != nil {
		return nil, nil, nil, err
	}

	nbr := neighborTable(tris)

	arcs := make([][3]int, len(tris))
	ids := make(map[[2]int]int, 3*len(tris)/2)
	for i, tr := range tris {
		for j := 0; j < 3; j++ {
			e := edgeKey(tr[(j+1)%3], tr[(j+2)%3])
			id, ok := ids[e]
			if !ok {
				id = len(ids)
				ids[e] = id
			}
			arcs[i][j] = id
		}
	}

	return tris, nbr, arcs, nil
}

// neighborTable matches triangles over shared edges. Each undirected edge
// borders at most two triangles; the third slot of a missing partner is
// the hull sentinel.
func neighborTable(tris []Triangle) [][3]int {
	type side struct {
		tri  int
		slot int
	}
	byEdge := make(map[[2]int][]side, 3*len(tris)/2)
	for i, tr := range tris {
		for j := 0; j < 3; j++ {
			e := edgeKey(tr[(j+1)%3], tr[(j+2)%3])
			byEdge[e] = append(byEdge[e], side{tri: i, slot: j})
		}
	}

	nbr := make([][3]int, len(tris))
	for i := range nbr {
		nbr[i] = [3]int{NoNeighbor, NoNeighbor, NoNeighbor}
	}
	for _, sides := range byEdge {
		if len(sides) == 2 {
			nbr[sides[0].tri][sides[0].slot] = sides[1].tri
			nbr[sides[1].tri][sides[1].slot] = sides[0].tri
		}
	}

	return nbr
}

// edgeKey normalizes an undirected edge to (low, high).
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
