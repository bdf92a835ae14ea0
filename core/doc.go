// Package core provides a small, thread-safe in-memory Graph used as the
// adjacency structure of a pipe network.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops); rejected by default
//   - At most one edge per ordered vertex pair
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted IDs
//   - Arbitrary per-vertex Metadata (e.g. grid row/col)
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	Vertex(id string) (*Vertex, error)            // O(1)
//	AddEdge(from, to string) (edgeID string, err) // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	NeighborIDs(id string) ([]string, error)      // O(d·log d)
//	Degree(id string) (int, error)                // O(1)
//	Vertices() []string                           // O(V·log V)
//	VertexCount() int / EdgeCount() int           // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//
// A single sync.RWMutex guards vertices, edges and adjacency; queries take the
// read lock, so a built graph can be shared across goroutines.
package core
