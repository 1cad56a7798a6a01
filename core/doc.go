// Package core provides a compact, thread-safe in-memory multigraph
// implementation tailored to edge-traversal algorithms.
//
// The Graph G = (V,E) is unweighted by design and supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges — the same endpoint pair may repeat freely
//   - Self-loops — an edge (v,v) contributes 2 to v's undirected degree
//   - Insertion-ordered edge storage, one Edge value per occurrence
//   - A single sync.RWMutex guarding vertices and edges together
//
// Why use core.Graph?
//
//   - Multigraphs are first-class — no flags to enable parallel edges or loops.
//   - Deterministic iteration — Vertices() returns sorted IDs, Edges() returns
//     insertion order, so every derived computation is reproducible.
//   - Permissive edge insertion — AddEdge auto-inserts endpoints that were
//     never declared via AddVertex, mirroring how edge lists arrive in practice.
//   - Clone support — deep copy for callers that need an untouched original.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets the orientation of all edges.
//	    • Directed graphs treat Edge.From→Edge.To as a one-way arc.
//	    • Undirected graphs treat each Edge as a symmetric connection.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) error      // O(1) amortized
//	HasEdge(from, to string) bool       // O(E)
//
//	// Inspection
//	Vertices() []string                 // O(V·logV), sorted
//	Edges() []Edge                      // O(E), insertion order
//	VertexCount(), EdgeCount() int      // O(1)
//	Degree(id string) (int, error)      // O(E), undirected degree
//	InOutDegree(id string) (in, out int, err error) // O(E)
//	Directed() bool
//
//	// Lifecycle
//	Clone() *Graph                      // O(V+E) deep copy
//	Clear()                             // O(1), preserves flags
//
// Errors:
//
//	ErrEmptyVertexID  – vertex ID is the empty string.
//	ErrVertexNotFound – requested vertex does not exist.
package core
