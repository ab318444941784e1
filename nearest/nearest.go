package nearest

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/mesh"
)

// Node returns the index of the node closest to (x, y) and the squared
// Euclidean distance between them.
//
// The search seeds at the node with the smallest |X−x| coordinate bound,
// then repeatedly moves to whichever neighbor strictly decreases the
// squared distance (lowest index on a tie). On a Delaunay triangulation
// the terminating local minimum is the global nearest node.
func Node(t *mesh.Triangulation, x, y float64) (int, float64, error) {
	if t == nil || t.Len() < 3 {
		return 0, 0, ErrNilTriangulation
	}

	pts := t.Points()

	// 1) Coarse candidate: minimal coordinate-wise bound on the distance.
	cur := 0
	best := math.Abs(pts[0].X - x)
	for i := 1; i < len(pts); i++ {
		if b := math.Abs(pts[i].X - x); b < best {
			best, cur = b, i
		}
	}

	// 2) Greedy descent over the adjacency graph.
	d2 := sqDist(pts[cur], x, y)
	for {
		ring, err := t.Neighbors(cur)
		if err != nil {
			return 0, 0, fmt.Errorf("nearest: node %d: %w", cur, err)
		}
		next, nextD2 := -1, d2
		for _, nb := range ring {
			nd := sqDist(pts[nb], x, y)
			if nd < nextD2 || (nd == nextD2 && next >= 0 && nb < next) {
				next, nextD2 = nb, nd
			}
		}
		if next < 0 {
			return cur, d2, nil
		}
		cur, d2 = next, nextD2
	}
}

// KNearest returns the count nodes closest to the seed node, ordered by
// increasing graph-path distance (ties by ascending node index). The seed
// itself is excluded. The distance of each hop is the summed Euclidean
// length of the arcs on the shortest connecting path.
func KNearest(t *mesh.Triangulation, seed, count int) ([]Hop, error) {
	// 1) Validate inputs before touching any state.
	if t == nil || t.Len() < 3 {
		return nil, ErrNilTriangulation
	}
	n := t.Len()
	if seed < 0 || seed >= n {
		return nil, fmt.Errorf("%w: %d (have %d nodes)", ErrSeedIndex, seed, n)
	}
	if count < 1 || count > n-1 {
		return nil, fmt.Errorf("%w: got %d with n=%d", ErrBadCount, count, n)
	}

	pts := t.Points()

	// 2) Dijkstra-style expansion with a lazy-decrease-key min-heap:
	//    shorter distance wins, equal distances fall back to node index.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[seed] = 0
	visited := make([]bool, n)

	pq := make(hopPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, Hop{Node: seed, Dist: 0})

	result := make([]Hop, 0, count)
	for pq.Len() > 0 && len(result) < count {
		h := heap.Pop(&pq).(Hop)
		if visited[h.Node] {
			continue // stale heap entry
		}
		visited[h.Node] = true
		if h.Node != seed {
			result = append(result, h)
		}

		ring, err := t.Neighbors(h.Node)
		if err != nil {
			return nil, fmt.Errorf("nearest: node %d: %w", h.Node, err)
		}
		for _, nb := range ring {
			if visited[nb] {
				continue
			}
			nd := h.Dist + math.Sqrt(sqDist(pts[nb], pts[h.Node].X, pts[h.Node].Y))
			if nd < dist[nb] {
				dist[nb] = nd
				heap.Push(&pq, Hop{Node: nb, Dist: nd})
			}
		}
	}

	return result, nil
}

// sqDist returns the squared distance from p to (x, y).
func sqDist(p mesh.Point, x, y float64) float64 {
	dx, dy := p.X-x, p.Y-y

	return dx*dx + dy*dy
}

// hopPQ is a min-heap of Hop ordered by (Dist, Node) ascending; duplicates
// from the lazy decrease-key strategy are skipped via the visited set.
type hopPQ []Hop

// Len returns the number of items in the heap.
func (pq hopPQ) Len() int { return len(pq) }

// Less orders by distance, then node index for deterministic ties.
func (pq hopPQ) Less(i, j int) bool {
	if pq[i].Dist != pq[j].Dist {
		return pq[i].Dist < pq[j].Dist
	}

	return pq[i].Node < pq[j].Node
}

// Swap swaps two heap elements.
func (pq hopPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new element; called by heap.Push.
func (pq *hopPQ) Push(x interface{}) { *pq = append(*pq, x.(Hop)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *hopPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
