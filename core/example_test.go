package core_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/core"
)

// ExampleGraph builds a four-cell pipe ring and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0,0", "0,1")
	_, _ = g.AddEdge("0,1", "1,1")
	_, _ = g.AddEdge("1,1", "1,0")
	_, _ = g.AddEdge("1,0", "0,0")

	nbrs, _ := g.NeighborIDs("0,0")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbors of 0,0:", nbrs)
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [0,0 0,1 1,0 1,1]
	// Neighbors of 0,0: [0,1 1,0]
	// Edges: 4
}
