package euler_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulertour/core"
)

// edgeKey normalizes one edge occurrence for multiset comparison:
// directed arcs keep their orientation, undirected edges are canonicalized
// with the smaller endpoint first.
func edgeKey(u, v string, directed bool) string {
	if !directed && v < u {
		u, v = v, u
	}

	return u + "→" + v
}

// assertEdgesConsumed verifies the core walk contract: the consecutive
// pairs of path form exactly the edge multiset of g — every edge used, none
// used twice, none invented.
func assertEdgesConsumed(t *testing.T, g *core.Graph, path []string) {
	t.Helper()
	want := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		want = append(want, edgeKey(e.From, e.To, g.Directed()))
	}
	got := make([]string, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		got = append(got, edgeKey(path[i], path[i+1], g.Directed()))
	}
	sort.Strings(want)
	sort.Strings(got)
	require.Equal(t, want, got, "walk must consume the exact edge multiset")
}

// randomTrail produces the edge list of a random walk over at most n vertex
// labels. A closed trail returns to its first vertex, which makes every
// vertex degree even (undirected) and every balance zero (directed), so an
// Eulerian circuit is guaranteed by construction. An open trail guarantees
// an Eulerian path with endpoints first/last.
func randomTrail(r *rand.Rand, n, steps int, closed bool) (edges [][2]string, first, last string) {
	label := func(i int) string { return fmt.Sprintf("v%02d", i) }
	first = label(r.Intn(n))
	cur := first
	for i := 0; i < steps; i++ {
		next := label(r.Intn(n))
		edges = append(edges, [2]string{cur, next})
		cur = next
	}
	if closed && cur != first {
		edges = append(edges, [2]string{cur, first})
		cur = first
	}

	return edges, first, cur
}

// trailGraph loads a trail edge list into a fresh graph.
func trailGraph(t *testing.T, edges [][2]string, directed bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}
