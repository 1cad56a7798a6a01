package euler

// oddVertices returns, in ascending order, the vertices whose current
// undirected degree is odd.
func (m *multigraph) oddVertices() []string {
	var odd []string
	for _, u := range m.vertexIDs() {
		if m.degree(u)%2 != 0 {
			odd = append(odd, u)
		}
	}

	return odd
}

// startUndirected validates the undirected Eulerian condition and picks the
// start vertex:
//   - 0 odd vertices → circuit; start at the minimum-labeled vertex that
//     carries an edge.
//   - 2 odd vertices → open path; start at the minimum-labeled odd vertex.
//   - any other odd count → ErrNotFound.
//
// The minimum-label choice is a deliberate determinism guarantee: any odd
// vertex would do mathematically, but output must be reproducible.
func (m *multigraph) startUndirected() (string, error) {
	odd := m.oddVertices()
	switch len(odd) {
	case 0:
		for _, u := range m.vertexIDs() {
			if m.degree(u) > 0 {
				return u, nil
			}
		}
		return "", ErrNotFound // no edges at all
	case 2:
		return odd[0], nil
	default:
		return "", ErrNotFound
	}
}

// startDirected validates the directed Eulerian condition and picks the
// start vertex. With balance(v) = out(v) − in(v):
//   - all balances zero → circuit; start at the minimum-labeled vertex with
//     nonzero total degree.
//   - exactly one vertex at +1 and exactly one at −1, all others zero →
//     open path; start at the +1 vertex.
//   - any balance outside {−1, 0, +1}, or surplus ±1 vertices → ErrNotFound.
//
// The three balance classes must exactly partition the vertex set: a single
// ±2 vertex invalidates the graph even if a +1/−1 pair also exists.
func (m *multigraph) startDirected() (string, error) {
	var plus, minus []string
	for _, u := range m.vertexIDs() {
		switch m.balance(u) {
		case 0:
			// balanced
		case 1:
			plus = append(plus, u)
		case -1:
			minus = append(minus, u)
		default:
			return "", ErrNotFound
		}
	}
	switch {
	case len(plus) == 0 && len(minus) == 0:
		for _, u := range m.vertexIDs() {
			if m.totalDegree(u) > 0 {
				return u, nil
			}
		}
		return "", ErrNotFound // no arcs at all
	case len(plus) == 1 && len(minus) == 1:
		return plus[0], nil
	default:
		return "", ErrNotFound
	}
}

// startVertex dispatches on directedness.
func (m *multigraph) startVertex() (string, error) {
	if m.directed {
		return m.startDirected()
	}

	return m.startUndirected()
}
