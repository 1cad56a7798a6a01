// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying unweighted multigraphs.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge represents one occurrence of a connection between two vertices.
//
// For undirected graphs the (From, To) order records how the edge was
// declared and carries no traversal meaning. For directed graphs the edge
// is the arc From→To. Parallel edges are stored as separate Edge values.
type Edge struct {
	// From is the declared tail vertex ID.
	From string

	// To is the declared head vertex ID.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed arcs, false = symmetric edges).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory multigraph data structure.
//
// Parallel edges and self-loops are always permitted; weights are not
// supported. A single mutex guards both the vertex set and the edge list,
// which keeps the invariant "every edge endpoint is a known vertex" atomic.
type Graph struct {
	mu sync.RWMutex

	// directed fixes the orientation of every edge in this graph.
	directed bool

	// vertices is the declared vertex set.
	vertices map[string]struct{}

	// edges holds one entry per edge occurrence, in insertion order.
	edges []Edge
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
