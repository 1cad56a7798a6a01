// Package core: Graph method implementations.
//
// This file provides thread-safe operations for vertex and edge management
// on the Graph type defined in types.go. Edge storage is a flat slice in
// insertion order; degree queries scan it, which keeps the write path O(1)
// and the structure trivially correct for multigraphs.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge appends one edge occurrence from 'from' to 'to'.
// Endpoints absent from the vertex set are inserted automatically — an edge
// list may legitimately mention vertices never declared up front.
// Parallel edges and self-loops are always accepted.
// Returns ErrEmptyVertexID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.edges = append(g.edges, Edge{From: from, To: to})

	return nil
}

// HasEdge reports whether at least one edge occurrence connects 'from' and
// 'to'. For undirected graphs the endpoint order is ignored.
// Complexity: O(E).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return true
		}
		if !g.directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a copy of all edge occurrences in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edge occurrences. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are one-way arcs.
func (g *Graph) Directed() bool {
	return g.directed
}

// Degree returns the undirected degree of id: the number of edge-endpoint
// occurrences at id, counting a self-loop as 2.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(E).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for _, e := range g.edges {
		if e.From == id {
			deg++
		}
		if e.To == id {
			deg++
		}
	}

	return deg, nil
}

// InOutDegree returns the in-degree and out-degree of id, treating every
// edge as the arc From→To. Meaningful for directed graphs; for undirected
// graphs the split merely reflects declaration order.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(E).
func (g *Graph) InOutDegree(id string) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	for _, e := range g.edges {
		if e.To == id {
			in++
		}
		if e.From == id {
			out++
		}
	}

	return in, out, nil
}

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)

	return clone
}

// Clear resets the graph to empty state (vertices, edges) but preserves flags.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[string]struct{})
	g.edges = nil
}
