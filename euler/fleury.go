package euler

import (
	"github.com/katalvlaran/eulertour/core"
)

// Fleury finds an Eulerian path or circuit in g using Fleury's algorithm:
// walk greedily, never crossing a bridge (undirected) or cut-arc (directed)
// while a safe alternative remains. Dispatches on g.Directed().
//
// Admission is strict: every listed vertex must carry at least one edge and
// the graph must be connected (weakly, for directed graphs); degree parity
// or in/out balance must admit an Eulerian walk. Violations return
// ErrNotFound. The walk is fully deterministic: the start vertex is the
// minimum-labeled qualifying one and neighbors are examined in ascending
// order.
//
// Each step with more than one candidate runs an O(V+E) bridge/cut-arc
// probe, giving O(E·(V+E)) overall — the classical cost of Fleury's
// strategy; use Hierholzer for near-linear behavior.
func Fleury(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	m := newMultigraph(g)

	// Initializing: strict connectivity, Eulerian condition, start pick.
	if !m.connectedStrict() {
		return nil, ErrNotFound
	}
	start, err := m.startVertex()
	if err != nil {
		return nil, err
	}

	return m.fleuryTraverse(start, o)
}

// fleuryTraverse consumes every edge from start, one greedy step at a time.
func (m *multigraph) fleuryTraverse(start string, o Options) (*Result, error) {
	path := make([]string, 0, m.edges+1)
	path = append(path, start)
	o.OnVisit(start)

	cur := start
	for m.edges > 0 {
		nbrs := m.neighborsSorted(cur)
		if len(nbrs) == 0 {
			// Dead end while edges remain elsewhere: disconnection emerged
			// during traversal. Admission should prevent this; report the
			// business outcome rather than fault.
			return nil, ErrNotFound
		}

		next, err := m.chooseStep(cur, nbrs)
		if err != nil {
			return nil, err
		}
		if err = m.eraseEdge(cur, next); err != nil {
			return nil, err
		}
		path = append(path, next)
		o.OnVisit(next)
		cur = next
	}

	return &Result{Path: path, Circuit: len(path) > 1 && path[0] == cur}, nil
}

// chooseStep picks the next vertex from cur given its ascending candidate
// list. A single remaining neighbor is taken unconditionally: the move is
// forced, and skipping the probe also guarantees termination when consuming
// a vertex's last edge trivially disconnects it. With several candidates the
// first safe (non-bridge / non-cut-arc) one wins; if every candidate is
// unsafe the smallest is taken anyway.
func (m *multigraph) chooseStep(cur string, nbrs []string) (string, error) {
	if len(nbrs) == 1 {
		return nbrs[0], nil
	}
	for _, cand := range nbrs {
		blocked, err := m.probe(cur, cand)
		if err != nil {
			return "", err
		}
		if !blocked {
			return cand, nil
		}
	}

	return nbrs[0], nil
}

// probe runs the directedness-appropriate safety test for edge cur→cand.
func (m *multigraph) probe(cur, cand string) (bool, error) {
	if m.directed {
		return m.isCutArc(cur, cand)
	}

	return m.isBridge(cur, cand)
}
