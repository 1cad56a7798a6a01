package euler

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/eulertour/core"
)

// multigraph is the per-call mutable adjacency structure every strategy
// traverses destructively. It is built fresh from a core.Graph snapshot at
// each entry call and discarded on return, so the input graph is never
// touched and concurrent invocations never share state.
//
// adj maps each vertex to an ordered multiset of neighbor labels, one entry
// per edge-endpoint occurrence: undirected edges are mirrored into both
// endpoint lists (a self-loop appears twice in its own list), directed arcs
// appear only in the tail's list. Pairing invariant for the undirected case:
// v occurs in adj[u] exactly as often as u occurs in adj[v], across every
// erase/restore pair.
type multigraph struct {
	directed bool
	adj      map[string][]string
	edges    int // remaining edge occurrences

	// in/out tallies, populated for directed graphs only and frozen at
	// construction time (validation reads them before any mutation).
	in  map[string]int
	out map[string]int
}

// newMultigraph snapshots g into a fresh multigraph.
// Complexity: O(V + E).
func newMultigraph(g *core.Graph) *multigraph {
	m := &multigraph{
		directed: g.Directed(),
		adj:      make(map[string][]string, g.VertexCount()),
	}
	// Every declared vertex gets an entry, even with no edges.
	for _, id := range g.Vertices() {
		m.adj[id] = nil
	}
	if m.directed {
		m.in = make(map[string]int, g.VertexCount())
		m.out = make(map[string]int, g.VertexCount())
	}
	for _, e := range g.Edges() {
		m.adj[e.From] = append(m.adj[e.From], e.To)
		if m.directed {
			m.out[e.From]++
			m.in[e.To]++
		} else {
			m.adj[e.To] = append(m.adj[e.To], e.From)
		}
		m.edges++
	}

	return m
}

// vertexIDs returns all vertex labels in ascending order.
func (m *multigraph) vertexIDs() []string {
	ids := make([]string, 0, len(m.adj))
	for id := range m.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// degree reports the current undirected degree of u: the number of
// edge-endpoint occurrences remaining in adj[u].
func (m *multigraph) degree(u string) int {
	return len(m.adj[u])
}

// totalDegree reports in+out for directed graphs and the plain degree
// otherwise; used to detect isolated vertices.
func (m *multigraph) totalDegree(u string) int {
	if m.directed {
		return m.in[u] + m.out[u]
	}

	return len(m.adj[u])
}

// balance reports out-degree minus in-degree of u (directed graphs).
func (m *multigraph) balance(u string) int {
	return m.out[u] - m.in[u]
}

// neighborsSorted returns a copy of adj[u] in ascending order, preserving
// duplicate occurrences, for deterministic candidate examination.
func (m *multigraph) neighborsSorted(u string) []string {
	nbrs := append([]string(nil), m.adj[u]...)
	sort.Strings(nbrs)

	return nbrs
}

// eraseEdge consumes one occurrence of edge/arc u→v.
// Undirected: removes one v from adj[u] and one u from adj[v] (a self-loop
// removes two occurrences from the same list). Directed: removes one v from
// adj[u] only. Returns ErrInternal if an expected occurrence is missing,
// which means the pairing invariant was already broken.
func (m *multigraph) eraseEdge(u, v string) error {
	if !m.removeOccurrence(u, v) {
		return fmt.Errorf("%w: no occurrence of %q in adjacency of %q", ErrInternal, v, u)
	}
	if !m.directed {
		if !m.removeOccurrence(v, u) {
			return fmt.Errorf("%w: no occurrence of %q in adjacency of %q", ErrInternal, u, v)
		}
	}
	m.edges--

	return nil
}

// restoreEdge re-inserts one occurrence of edge/arc u→v, the exact inverse
// of eraseEdge. Occurrence counts are restored precisely; list positions may
// differ, which no caller observes since examination always sorts.
func (m *multigraph) restoreEdge(u, v string) {
	m.adj[u] = append(m.adj[u], v)
	if !m.directed {
		m.adj[v] = append(m.adj[v], u)
	}
	m.edges++
}

// removeOccurrence deletes the first occurrence of v in adj[u], reporting
// whether one was found.
func (m *multigraph) removeOccurrence(u, v string) bool {
	list := m.adj[u]
	for i, x := range list {
		if x == v {
			m.adj[u] = append(list[:i], list[i+1:]...)
			return true
		}
	}

	return false
}

// view returns the adjacency to use for undirected reachability: the live
// adjacency for undirected graphs, or a symmetric doubling of the current
// arcs for directed graphs (weak-connectivity view).
func (m *multigraph) view() map[string][]string {
	if !m.directed {
		return m.adj
	}
	view := make(map[string][]string, len(m.adj))
	for u := range m.adj {
		view[u] = nil
	}
	for u, nbrs := range m.adj {
		for _, v := range nbrs {
			view[u] = append(view[u], v)
			view[v] = append(view[v], u)
		}
	}

	return view
}
