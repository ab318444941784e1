package nearest_test

import (
	"fmt"

	"github.com/katalvlaran/trimesh/mesh"
	"github.com/katalvlaran/trimesh/nearest"
)

// ExampleNode finds the closest survey station to a query point on the
// unit square.
func ExampleNode() {
	tr, _ := mesh.New(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
	)

	id, d2, _ := nearest.Node(tr, 0.1, 0.1)
	fmt.Printf("node %d, squared distance %.2f\n", id, d2)

	// Output:
	// node 0, squared distance 0.02
}

// ExampleKNearest lists the two nodes closest to corner 0 by path
// distance; the two adjacent corners tie and resolve by index.
func ExampleKNearest() {
	tr, _ := mesh.New(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
	)

	hops, _ := nearest.KNearest(tr, 0, 2)
	for _, h := range hops {
		fmt.Printf("node %d at %.2f\n", h.Node, h.Dist)
	}

	// Output:
	// node 1 at 1.00
	// node 3 at 1.00
}
