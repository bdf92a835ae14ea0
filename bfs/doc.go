// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing Order, Depth and Parent, plus Farthest()
//     for the deepest vertex reached (the far side of a ring).
//   - OnVisit hook may abort traversal with an error.
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//   - WithContext allows cancellation.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues them in that order,
//	so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbour lookup fails.
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
