package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/bfs"
	"github.com/katalvlaran/pipeloop/core"
)

// ExampleBFS_ring shows that the farthest vertex of an 8-ring sits 4 hops away.
func ExampleBFS_ring() {
	g := core.NewGraph()
	for i := 0; i < 8; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%8))
	}
	res, err := bfs.BFS(g, "v0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	id, depth := res.Farthest()
	fmt.Println(id, depth)
	// Output:
	// v4 4
}
