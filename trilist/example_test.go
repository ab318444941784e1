package trilist_test

import (
	"fmt"

	"github.com/katalvlaran/trimesh/mesh"
	"github.com/katalvlaran/trimesh/trilist"
)

// ExampleWithArcs extracts the triangle fan of a square with a center
// node: four triangles sharing eight unique arcs.
func ExampleWithArcs() {
	tr, _ := mesh.New(
		[]float64{0, 1, 1, 0, 0.5},
		[]float64{0, 0, 1, 1, 0.5},
	)

	tris, _, arcs, _ := trilist.WithArcs(tr)

	unique := map[int]bool{}
	for _, a := range arcs {
		for _, id := range a {
			unique[id] = true
		}
	}
	fmt.Printf("%d triangles, %d arcs\n", len(tris), len(unique))

	// Output:
	// 4 triangles, 8 arcs
}
