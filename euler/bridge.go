package euler

// isBridge reports whether consuming one occurrence of undirected edge (u,v)
// would strictly shrink the set of vertices reachable from u. The test is
// transactional: the occurrence is erased, measured, and unconditionally
// restored, leaving occurrence counts exactly as found.
// Complexity: O(V + E) per call.
func (m *multigraph) isBridge(u, v string) (bool, error) {
	before := reachableCount(m.adj, u)
	if err := m.eraseEdge(u, v); err != nil {
		return false, err
	}
	after := reachableCount(m.adj, u)
	m.restoreEdge(u, v)

	return after < before, nil
}

// isCutArc reports whether consuming arc u→v would eliminate every path
// from u to v. Unlike the undirected case this is an existence check, not a
// reachable-count comparison: directed reachability is not symmetric, so a
// count from u says nothing about getting back to v. Transactional like
// isBridge.
// Complexity: O(V + E) per call.
func (m *multigraph) isCutArc(u, v string) (bool, error) {
	if err := m.eraseEdge(u, v); err != nil {
		return false, err
	}
	ok := pathExists(m.adj, u, v)
	m.restoreEdge(u, v)

	return !ok, nil
}
